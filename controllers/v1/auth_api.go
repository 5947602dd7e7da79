package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"onboarding-checklist-backend/controllers"
	adminpanelauthhandler "onboarding-checklist-backend/lib/admin-panel/auth"
	apimodels "onboarding-checklist-backend/models/api"
	authapimodels "onboarding-checklist-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("admin_panel", func(router fiber.Router) {
		router.Post("login", controller.login)
	})
}

// @Summary Admin panel login
// @Tags Auth
// @Description Issues a JWT for the admin dashboard
// @Param	body body	 authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/admin_panel/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := adminpanelauthhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
