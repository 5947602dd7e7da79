package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"onboarding-checklist-backend/controllers"
	"onboarding-checklist-backend/lib/analytics"
	apimodels "onboarding-checklist-backend/models/api"
	analyticsapimodels "onboarding-checklist-backend/models/api/analytics"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Get("stats", controller.stats)
		router.Get("departments", controller.departments)
		router.Get("questions", controller.questions)
		router.Get("trend", controller.trend)
	})
}

// @Summary Dashboard stats
// @Tags Analytics
// @Description Headline numbers for the admin dashboard
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.DashboardStats}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/analytics/stats [get]
func (c *analyticsApiController) stats(ctx *fiber.Ctx) error {
	stats, err := analytics.Instance.DashboardStats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load dashboard stats")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stats))
}

// @Summary Department breakdown
// @Tags Analytics
// @Description Submission counts per department
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.DepartmentBreakdown}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/analytics/departments [get]
func (c *analyticsApiController) departments(ctx *fiber.Ctx) error {
	breakdown, err := analytics.Instance.DepartmentBreakdown()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the department breakdown")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(breakdown))
}

// @Summary Question analysis
// @Tags Analytics
// @Description Yes/no answer counts per question
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.QuestionAnalysis}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/analytics/questions [get]
func (c *analyticsApiController) questions(ctx *fiber.Ctx) error {
	analysis, err := analytics.Instance.QuestionAnalysis()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the question analysis")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(analysis))
}

// @Summary Submission trend
// @Tags Analytics
// @Description Daily submission counts over the selected period
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   period      		query	string	false	"week, month, quarter or year"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.TrendPoint}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/analytics/trend [get]
func (c *analyticsApiController) trend(ctx *fiber.Ctx) error {
	period := analyticsapimodels.TrendPeriod(ctx.Query("period", string(analyticsapimodels.TrendPeriodMonth)))
	if err := period.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	points, err := analytics.Instance.Trend(period)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load the submission trend")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(points))
}
