package publicapi

import (
	"github.com/gofiber/fiber/v2"

	"onboarding-checklist-backend/controllers"
	"onboarding-checklist-backend/lib/checklist"
	apimodels "onboarding-checklist-backend/models/api"
	checklistapimodels "onboarding-checklist-backend/models/api/checklist"
)

type publicChecklistApiController struct {
	controllers.BaseAPIController
}

func InitPublicChecklistApiRouters(app *fiber.App) {
	controller := publicChecklistApiController{}
	app.Route("checklist", func(router fiber.Router) {
		router.Get("questions", controller.getQuestions)
		router.Post("", controller.submit)
	})
}

// @Summary Checklist form definition
// @Tags Checklist
// @Description Question texts, allowed answers and departments for the public form
// @Success 200 {object} apimodels.Response{data=checklistapimodels.QuestionsView}
// @router /api/v1/public/checklist/questions [get]
func (c *publicChecklistApiController) getQuestions(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(checklist.Instance.Questions()))
}

// @Summary Submit a completed checklist
// @Tags Checklist
// @Description Validates the draft and stores it as a single insert
// @Param	body body	 checklistapimodels.SubmissionDraft	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response{data=checklistapimodels.ValidationErrors}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/checklist [post]
func (c *publicChecklistApiController) submit(ctx *fiber.Ctx) error {
	var payload checklistapimodels.SubmissionDraft
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, validationErrs, err := checklist.Instance.Submit(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to store the submission")
	}
	if !validationErrs.IsValid() {
		resp := apimodels.NewError("the submission is incomplete")
		resp.Data = validationErrs
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(resp)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"id": id}))
}
