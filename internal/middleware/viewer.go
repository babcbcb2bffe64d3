package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sendou-ink/sendou-pages/internal/domain"
)

// SessionCookie holds the session token of a logged in user.
const SessionCookie = "session"

const viewerKey = "viewer"

// ViewerResolver resolves session tokens.
type ViewerResolver interface {
	ViewerBySession(ctx context.Context, token string) (*domain.Viewer, error)
}

// Viewer attaches the logged in user, if any, to the request. Lookup failures
// are logged and the request continues anonymously.
func Viewer(resolver ViewerResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			viewer, err := resolver.ViewerBySession(c.Request.Context(), token)
			if err != nil {
				logger.Error("failed to resolve session",
					zap.String("request_id", GetRequestID(c)),
					zap.Error(err),
				)
			} else if viewer != nil {
				c.Set(viewerKey, viewer)
			}
		}
		c.Next()
	}
}

// GetViewer returns the logged in user or nil.
func GetViewer(c *gin.Context) *domain.Viewer {
	v, ok := c.Get(viewerKey)
	if !ok {
		return nil
	}
	viewer, _ := v.(*domain.Viewer)
	return viewer
}
