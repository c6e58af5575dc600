package controller

import (
	"errors"

	"insights-console-be/internal/pkg/serverutils"
	"insights-console-be/internal/service"
	"insights-console-be/pkg/chart"
	"insights-console-be/pkg/spreadsheet"
	"insights-console-be/pkg/storage"
	"insights-console-be/pkg/wizard"

	"github.com/gofiber/fiber/v2"
)

var statusBySentinel = []struct {
	err  error
	code int
}{
	{wizard.ErrEmptySelection, fiber.StatusBadRequest},
	{service.ErrUnknownField, fiber.StatusBadRequest},
	{service.ErrFileField, fiber.StatusBadRequest},
	{service.ErrNotFileField, fiber.StatusBadRequest},
	{service.ErrInvalidEmail, fiber.StatusBadRequest},
	{chart.ErrUnknownKind, fiber.StatusBadRequest},
	{storage.ErrInvalidName, fiber.StatusBadRequest},
	{service.ErrWizardNotFound, fiber.StatusNotFound},
	{service.ErrInsightNotFound, fiber.StatusNotFound},
	{service.ErrSubmissionNotFound, fiber.StatusNotFound},
	{wizard.ErrSubmitting, fiber.StatusConflict},
	{service.ErrUploadInProgress, fiber.StatusConflict},
	{spreadsheet.ErrUnsupportedFileType, fiber.StatusUnsupportedMediaType},
	{spreadsheet.ErrNoSheetFound, fiber.StatusUnprocessableEntity},
	{chart.ErrNoData, fiber.StatusUnprocessableEntity},
	{service.ErrUploadFailed, fiber.StatusBadGateway},
	{service.ErrDownloadFailed, fiber.StatusBadGateway},
}

// toAppError attaches an HTTP status to known service errors. Unknown
// errors pass through and end up as 500.
func toAppError(err error) error {
	if err == nil {
		return nil
	}
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return serverutils.NewAppError(s.code, err.Error(), nil)
		}
	}
	return err
}
