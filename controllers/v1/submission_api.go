package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"onboarding-checklist-backend/controllers"
	"onboarding-checklist-backend/lib/checklist"
	apimodels "onboarding-checklist-backend/models/api"
	checklistapimodels "onboarding-checklist-backend/models/api/checklist"
)

type submissionApiController struct {
	controllers.BaseAPIController
}

func InitSubmissionApiRouters(app *fiber.App) {
	controller := submissionApiController{}
	app.Route("submissions", func(router fiber.Router) {
		router.Put("list", controller.list)
		router.Put("export", controller.exportXls)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getByID)
			idRoute.Get("export", controller.exportPDF)
		})
	})
}

// @Summary Submission list
// @Tags Submissions
// @Description Filtered submission list, newest first
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 checklistapimodels.SubmissionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]checklistapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions/list [put]
func (c *submissionApiController) list(ctx *fiber.Ctx) error {
	var payload checklistapimodels.SubmissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := checklist.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the submission list")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Submission details
// @Tags Submissions
// @Description One submission with the mapped per-topic responses
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true	"submission id"
// @Success 200 {object} apimodels.Response{data=checklistapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions/{id} [get]
func (c *submissionApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := checklist.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the submission")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("submission not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Export a submission as PDF
// @Tags Submissions
// @Description Generates the paginated checklist document
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string  true	"submission id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions/{id}/export [get]
func (c *submissionApiController) exportPDF(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	fileName, body, err := checklist.Instance.ExportPDF(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to generate the checklist document")
	}
	if body == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("submission not found"))
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return ctx.Send(body)
}

// @Summary Export submissions to Excel
// @Tags Submissions
// @Description Filtered submission list as an xlsx file
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 checklistapimodels.SubmissionFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions/export [put]
func (c *submissionApiController) exportXls(ctx *fiber.Ctx) error {
	var payload checklistapimodels.SubmissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, err := checklist.Instance.ExportXls(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export submissions to Excel")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=\"submissions.xlsx\"")
	return ctx.SendStream(data)
}
