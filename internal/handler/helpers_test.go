package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/handler"
	"github.com/sendou-ink/sendou-pages/internal/i18n"
	"github.com/sendou-ink/sendou-pages/internal/meta"
	"github.com/sendou-ink/sendou-pages/internal/middleware"
	"github.com/sendou-ink/sendou-pages/internal/permissions"
	"github.com/sendou-ink/sendou-pages/internal/view"
)

const (
	viewerToken = "viewer-session"
	adminToken  = "admin-session"
)

var (
	testSite   = meta.Site{BaseURL: "https://sendou.ink", Name: "sendou.ink"}
	testPolicy = permissions.NewPolicy("admin-id")
	testViewer = &domain.Viewer{ID: 1, DiscordID: "79237403620945920"}
	testAdmin  = &domain.Viewer{ID: 99, DiscordID: "admin-id"}
)

type viewerResolver map[string]*domain.Viewer

func (r viewerResolver) ViewerBySession(_ context.Context, token string) (*domain.Viewer, error) {
	return r[token], nil
}

// newTestEngine returns an engine with templates, language and viewer
// middleware but no routes.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, handler.RegisterValidators())

	tmpl, err := view.Templates()
	require.NoError(t, err)
	bundle, err := i18n.Load("en")
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.Language(bundle),
		middleware.Viewer(viewerResolver{viewerToken: testViewer, adminToken: testAdmin}, zap.NewNop()),
	)
	return r
}

type testRequest struct {
	method string
	target string
	token  string
	json   bool
	form   url.Values
}

func serve(r *gin.Engine, tr testRequest) *httptest.ResponseRecorder {
	method := tr.method
	if method == "" {
		method = http.MethodGet
	}

	var req *http.Request
	if tr.form != nil {
		req = httptest.NewRequest(method, tr.target, strings.NewReader(tr.form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, tr.target, nil)
	}
	if tr.json {
		req.Header.Set("Accept", "application/json")
	}
	if tr.token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: tr.token})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var response handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func strPtr(s string) *string { return &s }
