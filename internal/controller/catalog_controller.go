package controller

import (
	"insights-console-be/internal/catalog"
	"insights-console-be/internal/dto"
	"insights-console-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Field(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) ICatalogController {
	return &catalogController{catalog: cat}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("", c.List)
	h.Get("/fields/:provider", c.Field)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	res := dto.CatalogResponse{Categories: c.catalog.Categories()}
	return ctx.JSON(serverutils.SuccessResponse("Success get catalog", res))
}

func (c *catalogController) Field(ctx *fiber.Ctx) error {
	provider, err := paramUnescaped(ctx, "provider")
	if err != nil {
		return serverutils.BadRequest("invalid provider name")
	}

	field, ok := c.catalog.Field(provider)
	if !ok {
		return serverutils.NotFound("no field for provider " + provider)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get field", catalog.ProviderField{Provider: provider, Field: field}))
}
