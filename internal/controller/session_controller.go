package controller

import (
	"bytes"
	"strconv"

	"insights-console-be/internal/dto"
	"insights-console-be/internal/pkg/serverutils"
	"insights-console-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	Insights(ctx *fiber.Ctx) error
	SetChartKind(ctx *fiber.Ctx) error
	ExportChart(ctx *fiber.Ctx) error
}

type sessionController struct {
	chat     service.IChatService
	insights service.IInsightService
}

func NewSessionController(chat service.IChatService, insights service.IInsightService) ISessionController {
	return &sessionController{chat: chat, insights: insights}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Get("", c.List)
	h.Get("/:id/chat", c.Chat)
	h.Post("/:id/chat", c.SendChat)
	h.Get("/:id/insights", c.Insights)
	h.Put("/:id/insights/chart-kind", c.SetChartKind)
	h.Get("/:id/insights/:index/chart.png", c.ExportChart)
}

func (c *sessionController) List(ctx *fiber.Ctx) error {
	res, err := c.insights.List(ctx.UserContext())
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadGateway, "failed to list sessions", err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *sessionController) Chat(ctx *fiber.Ctx) error {
	res, err := c.chat.Mount(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat", res))
}

func (c *sessionController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	res, err := c.chat.Send(ctx.UserContext(), ctx.Params("id"), req.Message)
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *sessionController) Insights(ctx *fiber.Ctx) error {
	res, err := c.insights.Mount(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get insights", res))
}

func (c *sessionController) SetChartKind(ctx *fiber.Ctx) error {
	var req dto.SetChartKindRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insights.SetChartKind(ctx.UserContext(), ctx.Params("id"), req.Kind)
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set chart kind", res))
}

func (c *sessionController) ExportChart(ctx *fiber.Ctx) error {
	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return serverutils.BadRequest("index must be a number")
	}

	var buf bytes.Buffer
	if err := c.insights.ExportChart(ctx.UserContext(), ctx.Params("id"), index, &buf); err != nil {
		return toAppError(err)
	}

	ctx.Set(fiber.HeaderContentType, "image/png")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="insight-`+strconv.Itoa(index)+`.png"`)
	return ctx.Send(buf.Bytes())
}
