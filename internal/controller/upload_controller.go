package controller

import (
	"insights-console-be/internal/pkg/serverutils"
	"insights-console-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploaderHeader names the client-side uploader instance of a standalone
// upload. Requests without it never contend with each other.
const UploaderHeader = "X-Uploader-Id"

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
}

type uploadController struct {
	uploads  service.IUploadService
	previews service.IPreviewService
}

func NewUploadController(uploads service.IUploadService, previews service.IPreviewService) IUploadController {
	return &uploadController{uploads: uploads, previews: previews}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/uploads", c.Upload)
	r.Get("/preview", c.Preview)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.BadRequest("missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return serverutils.BadRequest("unreadable file")
	}
	defer f.Close()

	uploader := ctx.Get(UploaderHeader)
	if uploader == "" {
		uploader = uuid.NewString()
	}

	res, err := c.uploads.Upload(ctx.UserContext(), "standalone:"+uploader, fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload file", res))
}

func (c *uploadController) Preview(ctx *fiber.Ctx) error {
	path := ctx.Query("path")
	if path == "" {
		return serverutils.BadRequest("path is required")
	}

	res, err := c.previews.Fetch(ctx.UserContext(), path)
	if err != nil {
		return toAppError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success preview file", res))
}
