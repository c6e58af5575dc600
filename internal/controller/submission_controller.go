package controller

import (
	"insights-console-be/internal/pkg/serverutils"
	"insights-console-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubmissionController interface {
	RegisterRoutes(r fiber.Router)
	Recent(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ForWizard(ctx *fiber.Ctx) error
}

type submissionController struct {
	service service.ISubmissionService
}

func NewSubmissionController(service service.ISubmissionService) ISubmissionController {
	return &submissionController{service: service}
}

func (c *submissionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/submissions")
	h.Get("", c.Recent)
	h.Get("/:id", c.Show)

	r.Get("/wizard/:id/submissions", c.ForWizard)
}

func (c *submissionController) Recent(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", service.DefaultSubmissionLimit)

	res, err := c.service.Recent(ctx.UserContext(), limit)
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list submissions", res))
}

func (c *submissionController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show submission", res))
}

func (c *submissionController) ForWizard(ctx *fiber.Ctx) error {
	res, err := c.service.ForWizard(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list wizard submissions", res))
}
