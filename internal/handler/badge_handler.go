package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sendou-ink/sendou-pages/internal/format"
	"github.com/sendou-ink/sendou-pages/internal/meta"
	"github.com/sendou-ink/sendou-pages/internal/middleware"
	"github.com/sendou-ink/sendou-pages/internal/permissions"
	"github.com/sendou-ink/sendou-pages/internal/service"
	"github.com/sendou-ink/sendou-pages/internal/urls"
	"github.com/sendou-ink/sendou-pages/internal/view"
)

// BadgeHandler handles badge requests.
type BadgeHandler struct {
	badges BadgeServiceInterface
	policy *permissions.Policy
	site   meta.Site
}

// NewBadgeHandler creates a new badge handler.
func NewBadgeHandler(badges BadgeServiceInterface, policy *permissions.Policy, site meta.Site) *BadgeHandler {
	return &BadgeHandler{badges: badges, policy: policy, site: site}
}

// ListBadges handles GET /badges.
func (h *BadgeHandler) ListBadges(c *gin.Context) {
	badges, err := h.badges.ListBadges(c.Request.Context())
	if err != nil {
		InternalError(c, err)
		return
	}

	t := middleware.GetTranslator(c)
	page := view.NewPage(t, middleware.GetViewer(c), meta.Page(h.site, format.MakeTitle(t.T("common.pages.badges")), ""), badges)
	page.Breadcrumbs = badgeBreadcrumbs(t.T("common.pages.badges"))

	render(c, http.StatusOK, "badges.html", page, badges)
}

// GetBadge handles GET /badges/:id. Unknown badges redirect to the badge list.
func (h *BadgeHandler) GetBadge(c *gin.Context) {
	var req IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		NotFound(c, "badge not found")
		return
	}

	details, err := h.badges.GetBadge(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrBadgeNotFound) {
			c.Redirect(http.StatusFound, urls.BadgesPage)
			return
		}
		InternalError(c, err)
		return
	}

	t := middleware.GetTranslator(c)
	viewer := middleware.GetViewer(c)

	managers := make([]string, 0, len(details.Managers))
	for _, m := range details.Managers {
		managers = append(managers, format.SummaryFullName(m.UserSummary))
	}

	data := BadgeResponse{
		BadgeDetails: details,
		Explanation:  meta.BadgeExplanation(t, details.Badge),
		ManagerNames: strings.Join(managers, ", "),
		CanEdit:      h.policy.CanEditBadgeOwners(viewer, details.Managers),
	}

	page := view.NewPage(t, viewer, meta.Badge(h.site, t, details.Badge, details.Owners, details.Managers), data)
	page.Breadcrumbs = append(badgeBreadcrumbs(t.T("common.pages.badges")), view.Breadcrumb{
		Label: details.Badge.DisplayName,
		Href:  urls.BadgePage(details.Badge.ID),
	})

	render(c, http.StatusOK, "badge.html", page, data)
}

func badgeBreadcrumbs(label string) []view.Breadcrumb {
	return []view.Breadcrumb{{Label: label, Href: urls.BadgesPage, ImgPath: urls.NavIconURL("badges")}}
}
