package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sendou-ink/sendou-pages/internal/meta"
	"github.com/sendou-ink/sendou-pages/internal/middleware"
	"github.com/sendou-ink/sendou-pages/internal/permissions"
	"github.com/sendou-ink/sendou-pages/internal/service"
	"github.com/sendou-ink/sendou-pages/internal/urls"
	"github.com/sendou-ink/sendou-pages/internal/view"
)

// VodHandler handles VOD requests.
type VodHandler struct {
	vods   VodServiceInterface
	policy *permissions.Policy
	site   meta.Site
}

// NewVodHandler creates a new VOD handler.
func NewVodHandler(vods VodServiceInterface, policy *permissions.Policy, site meta.Site) *VodHandler {
	return &VodHandler{vods: vods, policy: policy, site: site}
}

// GetVod handles GET /vods/:id.
func (h *VodHandler) GetVod(c *gin.Context) {
	var req IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		NotFound(c, "vod not found")
		return
	}
	var query VodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, "invalid start time")
		return
	}

	vod, err := h.vods.GetVod(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrVodNotFound) {
			NotFound(c, "vod not found")
			return
		}
		InternalError(c, err)
		return
	}

	t := middleware.GetTranslator(c)
	viewer := middleware.GetViewer(c)

	data := VodResponse{
		Vod:     vod,
		Start:   query.Start,
		CanEdit: h.policy.CanEditVideo(viewer, vod.SubmitterUserID, vod.Pov.UserID()),
		EditURL: urls.NewVodPage(vod.ID),
	}

	page := view.NewPage(t, viewer, meta.Vod(h.site, t, vod), data)
	page.Breadcrumbs = []view.Breadcrumb{
		{Label: t.T("common.pages.vods"), Href: urls.VodsPage, ImgPath: urls.NavIconURL("vods")},
		{Label: vod.Title, Href: urls.VodPage(vod.ID, 0)},
	}

	render(c, http.StatusOK, "vod.html", page, data)
}
