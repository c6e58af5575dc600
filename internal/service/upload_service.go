package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"insights-console-be/internal/dto"
	"insights-console-be/internal/pkg/logger"
	"insights-console-be/pkg/events"
	"insights-console-be/pkg/storage"
)

var (
	ErrUploadInProgress = errors.New("upload already in progress")
	ErrUploadFailed     = errors.New("upload failed")
)

type IUploadService interface {
	// Upload stores one file and returns its reference. uploaderID names
	// the uploader instance; at most one upload per instance runs at once.
	Upload(ctx context.Context, uploaderID, filename, contentType string, body io.Reader) (*dto.UploadResponse, error)
}

type uploadService struct {
	store     storage.BlobStore
	publisher IPublisherService
	logger    logger.ILogger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewUploadService(store storage.BlobStore, publisher IPublisherService, log logger.ILogger) IUploadService {
	return &uploadService{
		store:     store,
		publisher: publisher,
		logger:    log,
		inFlight:  make(map[string]struct{}),
	}
}

func (s *uploadService) acquire(uploaderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[uploaderID]; busy {
		return false
	}
	s.inFlight[uploaderID] = struct{}{}
	return true
}

func (s *uploadService) release(uploaderID string) {
	s.mu.Lock()
	delete(s.inFlight, uploaderID)
	s.mu.Unlock()
}

func (s *uploadService) Upload(ctx context.Context, uploaderID, filename, contentType string, body io.Reader) (*dto.UploadResponse, error) {
	if !s.acquire(uploaderID) {
		return nil, ErrUploadInProgress
	}
	defer s.release(uploaderID)

	ref, err := storage.ReferenceFor(filename)
	if err != nil {
		return nil, err
	}

	if err := s.store.Upload(ctx, storage.KeyFromReference(ref), body, contentType); err != nil {
		s.logger.Error("UPLOAD", "Failed to store file", map[string]interface{}{
			"filename": filename,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	s.logger.Info("UPLOAD", "File stored", map[string]interface{}{"path": ref})
	publishQuietly(ctx, s.publisher, events.New(events.TypeFileUploaded, map[string]interface{}{
		"path": ref,
	}), func(err error) {
		s.logger.Warn("UPLOAD", "Failed to publish upload event", map[string]interface{}{"error": err.Error()})
	})

	return &dto.UploadResponse{Path: ref}, nil
}
