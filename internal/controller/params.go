package controller

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// paramUnescaped decodes a path parameter; provider names contain spaces.
func paramUnescaped(ctx *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(ctx.Params(name))
}
