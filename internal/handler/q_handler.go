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

// QHandler handles SendouQ group requests.
type QHandler struct {
	groups GroupServiceInterface
	site   meta.Site
}

// NewQHandler creates a new SendouQ handler.
func NewQHandler(groups GroupServiceInterface, site meta.Site) *QHandler {
	return &QHandler{groups: groups, site: site}
}

// GetPreparing handles GET /q/preparing.
func (h *QHandler) GetPreparing(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	t := middleware.GetTranslator(c)

	preparing, err := h.groups.GetPreparing(c.Request.Context(), viewer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotLoggedIn):
			Unauthorized(c, t.T("common.errors.unauthorized"))
		case errors.Is(err, service.ErrGroupNotFound):
			if wantsJSON(c) {
				NotFound(c, "group not found")
				return
			}
			c.Redirect(http.StatusFound, urls.SendouQPage)
		default:
			InternalError(c, err)
		}
		return
	}

	data := PreparingResponse{
		Group:          preparing.Group,
		TrustedPlayers: preparing.TrustedPlayers,
		InviteLink:     h.site.BaseURL + urls.SendouQInviteLink(preparing.Group.InviteCode),
		Full:           preparing.Group.IsFull(),
	}

	page := view.NewPage(t, viewer, meta.Page(h.site, format.MakeTitle(t.T("common.pages.sendouq")), ""), data)
	page.Breadcrumbs = []view.Breadcrumb{
		{Label: t.T("common.pages.sendouq"), Href: urls.SendouQPage, ImgPath: urls.NavIconURL("sendouq")},
	}

	render(c, http.StatusOK, "q_preparing.html", page, data)
}

// PostPreparing handles POST /q/preparing.
func (h *QHandler) PostPreparing(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		Unauthorized(c, middleware.GetTranslator(c).T("common.errors.unauthorized"))
		return
	}

	var req PreparingActionRequest
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, "invalid form data")
		return
	}

	group, err := h.groups.AddTrustedMember(c.Request.Context(), viewer, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotLoggedIn):
			Unauthorized(c, middleware.GetTranslator(c).T("common.errors.unauthorized"))
		case errors.Is(err, service.ErrGroupNotFound):
			NotFound(c, "group not found")
		case errors.Is(err, service.ErrNotManager):
			Error(c, ErrorForbidden, "only the owner or a manager can add members", http.StatusForbidden)
		case errors.Is(err, service.ErrGroupFull):
			Conflict(c, ErrorGroupFull, "group is full")
		case errors.Is(err, service.ErrNotTrusted):
			Error(c, ErrorNotTrusted, "user is not trusted", http.StatusBadRequest)
		default:
			InternalError(c, err)
		}
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, group)
		return
	}
	c.Redirect(http.StatusSeeOther, urls.SendouQPreparingPage)
}
