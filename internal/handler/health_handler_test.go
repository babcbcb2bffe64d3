package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendou-ink/sendou-pages/internal/handler"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{name: "database reachable", expectedStatus: http.StatusOK, expectedBody: "ok"},
		{name: "database down", pingErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable, expectedBody: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hadDeadline bool
			h := handler.NewHealthHandler(pingerFunc(func(ctx context.Context) error {
				_, hadDeadline = ctx.Deadline()
				return tt.pingErr
			}))
			r := newTestEngine(t)
			r.GET("/healthz", h.Health)

			w := serve(r, testRequest{target: "/healthz"})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, hadDeadline)

			var response handler.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedBody, response.Status)
		})
	}
}
