package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/format"
	"github.com/sendou-ink/sendou-pages/internal/meta"
	"github.com/sendou-ink/sendou-pages/internal/middleware"
	"github.com/sendou-ink/sendou-pages/internal/service"
	"github.com/sendou-ink/sendou-pages/internal/view"
)

// ErrorCode identifies the kind of error in JSON error bodies.
type ErrorCode string

const (
	ErrorNotFound      ErrorCode = "NOT_FOUND"
	ErrorBadRequest    ErrorCode = "BAD_REQUEST"
	ErrorUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrorForbidden     ErrorCode = "FORBIDDEN"
	ErrorGroupFull     ErrorCode = "GROUP_FULL"
	ErrorNotTrusted    ErrorCode = "NOT_TRUSTED"
	ErrorRateLimited   ErrorCode = "RATE_LIMITED"
	ErrorUpstream      ErrorCode = "UPSTREAM_ERROR"
	ErrorInternal      ErrorCode = "INTERNAL_ERROR"
	ErrorNotAcceptable ErrorCode = "NOT_ACCEPTABLE"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// ErrorPage is the data of the HTML error page.
type ErrorPage struct {
	Status  int
	Message string
}

// SearchResponse is the loader data of the user search page.
type SearchResponse struct {
	Query string               `json:"query"`
	Users []domain.UserSummary `json:"users"`
}

// BadgeResponse is the loader data of a badge details page.
type BadgeResponse struct {
	*service.BadgeDetails
	Explanation  string `json:"explanation"`
	ManagerNames string `json:"-"`
	CanEdit      bool   `json:"canEdit"`
}

// VodResponse is the loader data of a VOD page.
type VodResponse struct {
	Vod     *domain.Vod `json:"vod"`
	Start   int         `json:"start"`
	CanEdit bool        `json:"canEdit"`
	EditURL string      `json:"-"`
}

// PreparingResponse is the loader data of the SendouQ preparing page.
type PreparingResponse struct {
	Group          domain.Group           `json:"group"`
	TrustedPlayers []domain.TrustedPlayer `json:"trustedPlayers"`
	InviteLink     string                 `json:"inviteLink"`
	Full           bool                   `json:"full"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

var offered = []string{gin.MIMEHTML, gin.MIMEJSON}

// render responds with the HTML page, or with the loader data when the
// client asks for JSON.
func render(c *gin.Context, status int, name string, page *view.Page, data any) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  offered,
		HTMLName: name,
		HTMLData: page,
		JSONData: data,
	})
}

// wantsJSON reports whether the client prefers JSON over HTML.
func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(offered...) == gin.MIMEJSON
}

// Error sends error response as JSON or as the HTML error page.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	var body ErrorResponse
	body.Error.Code = code
	body.Error.Message = message

	t := middleware.GetTranslator(c)
	tags := []meta.Tag{{Title: format.MakeTitle(message)}}
	page := view.NewPage(t, middleware.GetViewer(c), tags, ErrorPage{Status: statusCode, Message: message})

	c.Abort()
	render(c, statusCode, "error.html", page, body)
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusConflict)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, ErrorBadRequest, message, http.StatusBadRequest)
}

// Unauthorized sends 401 error.
func Unauthorized(c *gin.Context, message string) {
	Error(c, ErrorUnauthorized, message, http.StatusUnauthorized)
}

// InternalError records err for the request log and sends 500 error.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	Error(c, ErrorInternal, middleware.GetTranslator(c).T("common.errors.internal"), http.StatusInternalServerError)
}
