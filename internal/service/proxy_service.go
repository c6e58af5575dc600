package service

import (
	"context"

	"insights-console-be/internal/config"
	"insights-console-be/pkg/backend"
)

// IProxyService forwards client requests to the analysis backend without
// touching the body in either direction.
type IProxyService interface {
	SaveConfig(ctx context.Context, contentType string, body []byte) (*backend.RawResponse, error)
	Invoke(ctx context.Context, contentType string, body []byte) (*backend.RawResponse, error)
}

type proxyService struct {
	client         *backend.Client
	saveConfigPath string
	invokePath     string
}

func NewProxyService(client *backend.Client, cfg config.BackendConfig) IProxyService {
	return &proxyService{
		client:         client,
		saveConfigPath: cfg.SaveConfigPath,
		invokePath:     cfg.InvokePath,
	}
}

func (s *proxyService) SaveConfig(ctx context.Context, contentType string, body []byte) (*backend.RawResponse, error) {
	return s.client.Forward(ctx, s.saveConfigPath, contentType, body)
}

func (s *proxyService) Invoke(ctx context.Context, contentType string, body []byte) (*backend.RawResponse, error) {
	return s.client.Forward(ctx, s.invokePath, contentType, body)
}
