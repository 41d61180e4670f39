package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"taskward/config"
	deliverymiddleware "taskward/internal/delivery/http/middleware"
	"taskward/internal/delivery/http/router"
	"taskward/internal/delivery/http/router/handler"
	"taskward/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewServer_AppliesHTTPTimeouts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 2 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 60 * time.Second

	params := HTTPParams{
		Lifecycle:           fxtest.NewLifecycle(t),
		Config:              cfg,
		Logger:              logger,
		RequestIDMiddleware: deliverymiddleware.NewRequestIDMiddleware(logger),
		ErrorMiddleware:     deliverymiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(mocks.NewMockAuthUsecase(t), logger),
			TaskHandler:    handler.NewTaskHandler(mocks.NewMockTaskUsecase(t), logger),
			AuthMiddleware: deliverymiddleware.NewAuthMiddleware(mocks.NewMockTokenService(t)),
		},
	}

	d, err := NewServer(params)
	require.NoError(t, err)

	srv, ok := d.(*httpServer)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, srv.server.Server.IdleTimeout)
}
