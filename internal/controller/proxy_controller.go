package controller

import (
	"context"

	"insights-console-be/internal/service"
	"insights-console-be/pkg/backend"

	"github.com/gofiber/fiber/v2"
)

type IProxyController interface {
	RegisterRoutes(r fiber.Router)
	SaveConfig(ctx *fiber.Ctx) error
	Invoke(ctx *fiber.Ctx) error
}

type proxyController struct {
	service service.IProxyService
}

func NewProxyController(service service.IProxyService) IProxyController {
	return &proxyController{service: service}
}

func (c *proxyController) RegisterRoutes(r fiber.Router) {
	r.Post("/save-config", c.SaveConfig)
	r.Post("/invoke", c.Invoke)
}

func (c *proxyController) SaveConfig(ctx *fiber.Ctx) error {
	return relay(ctx, c.service.SaveConfig)
}

func (c *proxyController) Invoke(ctx *fiber.Ctx) error {
	return relay(ctx, c.service.Invoke)
}

type forwardFunc func(ctx context.Context, contentType string, body []byte) (*backend.RawResponse, error)

// relay answers with the backend's status and body untouched. Only a
// failure to reach the backend produces a response of our own.
func relay(ctx *fiber.Ctx, forward forwardFunc) error {
	body := append([]byte(nil), ctx.Body()...)

	res, err := forward(ctx.UserContext(), ctx.Get(fiber.HeaderContentType), body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	contentType := res.ContentType
	if contentType == "" {
		contentType = fiber.MIMETextPlainCharsetUTF8
		if res.OK() {
			contentType = fiber.MIMEApplicationJSON
		}
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Status(res.StatusCode).Send(res.Body)
}
