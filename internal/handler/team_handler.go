package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sendou-ink/sendou-pages/internal/meta"
	"github.com/sendou-ink/sendou-pages/internal/middleware"
	"github.com/sendou-ink/sendou-pages/internal/service"
	"github.com/sendou-ink/sendou-pages/internal/urls"
	"github.com/sendou-ink/sendou-pages/internal/view"
)

// TeamHandler handles team-related HTTP requests.
type TeamHandler struct {
	teams TeamServiceInterface
	site  meta.Site
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teams TeamServiceInterface, site meta.Site) *TeamHandler {
	return &TeamHandler{teams: teams, site: site}
}

// GetTeam handles GET /t/:customUrl.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	var req TeamPageRequest
	if err := c.ShouldBindUri(&req); err != nil {
		NotFound(c, "team not found")
		return
	}

	team, err := h.teams.GetTeam(c.Request.Context(), req.CustomURL)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			NotFound(c, "team not found")
			return
		}
		InternalError(c, err)
		return
	}

	t := middleware.GetTranslator(c)
	page := view.NewPage(t, middleware.GetViewer(c), meta.Team(h.site, t, team), team)
	page.Breadcrumbs = []view.Breadcrumb{
		{Label: team.Name, Href: urls.TeamPage(team.CustomURL)},
	}

	render(c, http.StatusOK, "team.html", page, team)
}
