package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sendou-ink/sendou-pages/internal/format"
	"github.com/sendou-ink/sendou-pages/internal/meta"
	"github.com/sendou-ink/sendou-pages/internal/middleware"
	"github.com/sendou-ink/sendou-pages/internal/service"
	"github.com/sendou-ink/sendou-pages/internal/urls"
	"github.com/sendou-ink/sendou-pages/internal/view"
)

// PlayerHandler handles top 500 player requests.
type PlayerHandler struct {
	placements PlacementServiceInterface
	site       meta.Site
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(placements PlacementServiceInterface, site meta.Site) *PlayerHandler {
	return &PlayerHandler{placements: placements, site: site}
}

// GetPlayer handles GET /xsearch/player/:id.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	var req IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		NotFound(c, "player not found")
		return
	}

	player, err := h.placements.GetPlayerPlacements(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			NotFound(c, "player not found")
			return
		}
		InternalError(c, err)
		return
	}

	t := middleware.GetTranslator(c)
	pageTitle := format.MakeTitle(player.Name, t.T("common.pages.xsearch"))

	page := view.NewPage(t, middleware.GetViewer(c), meta.Player(h.site, t, pageTitle, player.Placements), player)
	page.Breadcrumbs = []view.Breadcrumb{
		{Label: t.T("common.pages.xsearch"), Href: urls.TopSearchPage, ImgPath: urls.NavIconURL("xsearch")},
		{Label: player.Name, Href: urls.TopSearchPlayerPage(player.PlayerID)},
	}

	render(c, http.StatusOK, "player.html", page, player)
}
