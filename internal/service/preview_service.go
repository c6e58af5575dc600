package service

import (
	"context"
	"errors"
	"fmt"

	"insights-console-be/internal/dto"
	"insights-console-be/internal/pkg/logger"
	"insights-console-be/pkg/spreadsheet"
	"insights-console-be/pkg/storage"
)

var ErrDownloadFailed = errors.New("failed to download file")

type IPreviewService interface {
	Fetch(ctx context.Context, reference string) (*dto.PreviewResponse, error)
}

type previewService struct {
	store    storage.BlobStore
	rowLimit int
	logger   logger.ILogger
}

func NewPreviewService(store storage.BlobStore, rowLimit int, log logger.ILogger) IPreviewService {
	if rowLimit <= 0 {
		rowLimit = spreadsheet.DefaultRowLimit
	}
	return &previewService{store: store, rowLimit: rowLimit, logger: log}
}

func (s *previewService) Fetch(ctx context.Context, reference string) (*dto.PreviewResponse, error) {
	key := storage.KeyFromReference(reference)

	// No point downloading a file we cannot parse.
	if _, err := spreadsheet.DetectFormat(key); err != nil {
		return nil, err
	}

	data, err := s.store.Download(ctx, key)
	if err != nil {
		s.logger.Error("PREVIEW", "Download failed", map[string]interface{}{
			"path":  reference,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	table, err := spreadsheet.Preview(key, data, s.rowLimit)
	if err != nil {
		return nil, err
	}

	return &dto.PreviewResponse{
		Path:    reference,
		Columns: table.Columns,
		Rows:    table.Rows,
		Count:   len(table.Rows),
	}, nil
}
