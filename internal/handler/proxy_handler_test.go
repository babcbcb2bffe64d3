package handler_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sendou-ink/sendou-pages/internal/handler"
	handlermocks "github.com/sendou-ink/sendou-pages/internal/handler/mocks"
	"github.com/sendou-ink/sendou-pages/internal/proxy"
)

func TestProxyHandler_GetDiscordAvatar(t *testing.T) {
	tests := []struct {
		name             string
		request          testRequest
		mockSetup        func(*handlermocks.MockAvatarProxyInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:    "success - streams avatar",
			request: testRequest{target: "/proxy/discord-pfp/79237403620945920/a_1f2e3d.webp"},
			mockSetup: func(m *handlermocks.MockAvatarProxyInterface) {
				m.EXPECT().Fetch(mock.Anything, "79237403620945920", "a_1f2e3d.webp").Return(&proxy.Avatar{
					StatusCode: http.StatusOK,
					Header: http.Header{
						"Content-Type":   []string{"image/webp"},
						"Content-Length": []string{"5"},
						"Cache-Control":  []string{"max-age=86400"},
					},
					Body: io.NopCloser(strings.NewReader("image")),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "image", w.Body.String())
				assert.Equal(t, "image/webp", w.Header().Get("Content-Type"))
				assert.Equal(t, "5", w.Header().Get("Content-Length"))
				assert.Equal(t, "max-age=86400", w.Header().Get("Cache-Control"))
			},
		},
		{
			name:    "success - upstream status is passed through",
			request: testRequest{target: "/proxy/discord-pfp/1/missing"},
			mockSetup: func(m *handlermocks.MockAvatarProxyInterface) {
				m.EXPECT().Fetch(mock.Anything, "1", "missing").Return(&proxy.Avatar{
					StatusCode: http.StatusNotFound,
					Header:     http.Header{"Content-Type": []string{"text/plain"}},
					Body:       io.NopCloser(strings.NewReader("404: Not Found")),
				}, nil)
			},
			expectedStatus: http.StatusNotFound,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "404: Not Found", w.Body.String())
			},
		},
		{
			name:           "error - invalid avatar hash",
			request:        testRequest{target: "/proxy/discord-pfp/1/bad!avatar", json: true},
			mockSetup:      func(m *handlermocks.MockAvatarProxyInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, handler.ErrorBadRequest, decodeError(t, w).Error.Code)
			},
		},
		{
			name:           "error - non numeric discord id",
			request:        testRequest{target: "/proxy/discord-pfp/abc/hash"},
			mockSetup:      func(m *handlermocks.MockAvatarProxyInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "error - rate limited",
			request: testRequest{target: "/proxy/discord-pfp/1/hash", json: true},
			mockSetup: func(m *handlermocks.MockAvatarProxyInterface) {
				m.EXPECT().Fetch(mock.Anything, "1", "hash").Return(nil, fmt.Errorf("fetch avatar: %w", proxy.ErrRateLimited))
			},
			expectedStatus: http.StatusTooManyRequests,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, handler.ErrorRateLimited, decodeError(t, w).Error.Code)
			},
		},
		{
			name:    "error - upstream failure",
			request: testRequest{target: "/proxy/discord-pfp/1/hash", json: true},
			mockSetup: func(m *handlermocks.MockAvatarProxyInterface) {
				m.EXPECT().Fetch(mock.Anything, "1", "hash").Return(nil, fmt.Errorf("%w: connection refused", proxy.ErrUpstream))
			},
			expectedStatus: http.StatusBadGateway,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, handler.ErrorUpstream, decodeError(t, w).Error.Code)
			},
		},
		{
			name:    "error - unexpected failure",
			request: testRequest{target: "/proxy/discord-pfp/1/hash", json: true},
			mockSetup: func(m *handlermocks.MockAvatarProxyInterface) {
				m.EXPECT().Fetch(mock.Anything, "1", "hash").Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			avatars := handlermocks.NewMockAvatarProxyInterface(t)
			tt.mockSetup(avatars)

			h := handler.NewProxyHandler(avatars)
			r := newTestEngine(t)
			r.GET("/proxy/discord-pfp/:discordId/:discordAvatar", h.GetDiscordAvatar)

			w := serve(r, tt.request)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}
