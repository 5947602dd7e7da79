package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"onboarding-checklist-backend/controllers"
	appsettings "onboarding-checklist-backend/lib/app-settings"
	apimodels "onboarding-checklist-backend/models/api"
	settingsapimodels "onboarding-checklist-backend/models/api/settings"
)

type settingsApiController struct {
	controllers.BaseAPIController
}

func InitSettingsApiRouters(app *fiber.App) {
	controller := settingsApiController{}
	app.Route("settings", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", controller.update)
	})
}

// @Summary App settings
// @Tags Settings
// @Description Admin UI preferences
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=settingsapimodels.AppSettingsView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/settings [get]
func (c *settingsApiController) get(ctx *fiber.Ctx) error {
	view, err := appsettings.Instance.Get()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load app settings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update app settings
// @Tags Settings
// @Description Partial update, omitted fields keep their value
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 settingsapimodels.AppSettingsUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/settings [put]
func (c *settingsApiController) update(ctx *fiber.Ctx) error {
	var payload settingsapimodels.AppSettingsUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := appsettings.Instance.Update(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update app settings")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
