package controller

import (
	"errors"

	"insights-console-be/internal/dto"
	"insights-console-be/internal/pkg/serverutils"
	"insights-console-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWizardController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	SetValues(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
}

type wizardController struct {
	service service.IWizardService
}

func NewWizardController(service service.IWizardService) IWizardController {
	return &wizardController{service: service}
}

func (c *wizardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard")
	h.Post("", c.Start)
	h.Get("/:id", c.Show)
	h.Put("/:id/values", c.SetValues)
	h.Post("/:id/uploads/:field", c.Upload)
	h.Post("/:id/submit", c.Submit)
}

func (c *wizardController) Start(ctx *fiber.Ctx) error {
	var req dto.StartWizardRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Start(ctx.UserContext(), req.Selection)
	if err != nil {
		return toAppError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success start wizard", res))
}

func (c *wizardController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.View(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show wizard", res))
}

func (c *wizardController) SetValues(ctx *fiber.Ctx) error {
	var req dto.SetValuesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	res, err := c.service.SetValues(ctx.UserContext(), ctx.Params("id"), req)
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update values", res))
}

func (c *wizardController) Upload(ctx *fiber.Ctx) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.BadRequest("missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return serverutils.BadRequest("unreadable file")
	}
	defer f.Close()

	res, err := c.service.AttachUpload(ctx.UserContext(), ctx.Params("id"), ctx.Params("field"), fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload file", res))
}

func (c *wizardController) Submit(ctx *fiber.Ctx) error {
	res, err := c.service.Submit(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		var subErr *service.SubmissionError
		if errors.As(err, &subErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(
				serverutils.ErrorResponseWithData(fiber.StatusBadGateway, subErr.Message, subErr.Wizard),
			)
		}
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit wizard", res))
}
