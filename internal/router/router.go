package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sendou-ink/sendou-pages/internal/handler"
	"github.com/sendou-ink/sendou-pages/internal/i18n"
	"github.com/sendou-ink/sendou-pages/internal/middleware"
	"github.com/sendou-ink/sendou-pages/internal/view"
)

// Handlers groups every route handler.
type Handlers struct {
	User   *handler.UserHandler
	Badge  *handler.BadgeHandler
	Vod    *handler.VodHandler
	Player *handler.PlayerHandler
	Team   *handler.TeamHandler
	Proxy  *handler.ProxyHandler
	Q      *handler.QHandler
	Health *handler.HealthHandler
}

// Deps are the request scoped collaborators used by the middleware.
type Deps struct {
	Logger  *zap.Logger
	Bundle  *i18n.Bundle
	Viewers middleware.ViewerResolver
}

// SetupRoutes configures all routes.
func SetupRoutes(h Handlers, deps Deps) (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		gin.Recovery(),
		middleware.Language(deps.Bundle),
		middleware.Viewer(deps.Viewers, deps.Logger),
	)

	r.GET("/healthz", h.Health.Health)

	// User endpoints
	r.GET("/u", h.User.SearchUsers)
	r.GET("/u/:identifier", h.User.GetProfile)

	// Badge endpoints
	r.GET("/badges", h.Badge.ListBadges)
	r.GET("/badges/:id", h.Badge.GetBadge)

	r.GET("/vods/:id", h.Vod.GetVod)
	r.GET("/xsearch/player/:id", h.Player.GetPlayer)
	r.GET("/t/:customUrl", h.Team.GetTeam)

	r.GET("/proxy/discord-pfp/:discordId/:discordAvatar", h.Proxy.GetDiscordAvatar)

	// SendouQ endpoints
	r.GET("/q/preparing", h.Q.GetPreparing)
	r.POST("/q/preparing", h.Q.PostPreparing)

	r.NoRoute(func(c *gin.Context) {
		handler.NotFound(c, middleware.GetTranslator(c).T("common.errors.notFound"))
	})

	return r, nil
}
