package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sendou-ink/sendou-pages/internal/proxy"
)

// ProxyHandler serves Discord avatars through the site's origin.
type ProxyHandler struct {
	avatars AvatarProxyInterface
}

// NewProxyHandler creates a new proxy handler.
func NewProxyHandler(avatars AvatarProxyInterface) *ProxyHandler {
	return &ProxyHandler{avatars: avatars}
}

// GetDiscordAvatar handles GET /proxy/discord-pfp/:discordId/:discordAvatar.
func (h *ProxyHandler) GetDiscordAvatar(c *gin.Context) {
	var req DiscordAvatarRequest
	if err := c.ShouldBindUri(&req); err != nil {
		BadRequest(c, "invalid discordId or discordAvatar")
		return
	}

	avatar, err := h.avatars.Fetch(c.Request.Context(), req.DiscordID, req.DiscordAvatar)
	if err != nil {
		switch {
		case errors.Is(err, proxy.ErrInvalidParams):
			BadRequest(c, "invalid discordId or discordAvatar")
		case errors.Is(err, proxy.ErrRateLimited):
			Error(c, ErrorRateLimited, "too many avatar requests", http.StatusTooManyRequests)
		case errors.Is(err, proxy.ErrUpstream):
			_ = c.Error(err)
			Error(c, ErrorUpstream, "failed to fetch avatar", http.StatusBadGateway)
		default:
			InternalError(c, err)
		}
		return
	}
	defer func() { _ = avatar.Body.Close() }()

	contentLength := int64(-1)
	if v := avatar.Header.Get("Content-Length"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			contentLength = n
		}
	}

	extra := make(map[string]string, len(avatar.Header))
	for key := range avatar.Header {
		if key == "Content-Type" || key == "Content-Length" {
			continue
		}
		extra[key] = avatar.Header.Get(key)
	}

	c.DataFromReader(avatar.StatusCode, contentLength, avatar.Header.Get("Content-Type"), avatar.Body, extra)
}
