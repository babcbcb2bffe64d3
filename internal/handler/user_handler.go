package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/format"
	"github.com/sendou-ink/sendou-pages/internal/i18n"
	"github.com/sendou-ink/sendou-pages/internal/meta"
	"github.com/sendou-ink/sendou-pages/internal/middleware"
	"github.com/sendou-ink/sendou-pages/internal/season"
	"github.com/sendou-ink/sendou-pages/internal/service"
	"github.com/sendou-ink/sendou-pages/internal/urls"
	"github.com/sendou-ink/sendou-pages/internal/view"
)

// UserHandler handles user profile and search requests.
type UserHandler struct {
	profiles ProfileServiceInterface
	search   SearchServiceInterface
	site     meta.Site
	now      func() time.Time
}

// NewUserHandler creates a new user handler.
func NewUserHandler(profiles ProfileServiceInterface, search SearchServiceInterface, site meta.Site) *UserHandler {
	return &UserHandler{
		profiles: profiles,
		search:   search,
		site:     site,
		now:      time.Now,
	}
}

// GetProfile handles GET /u/:identifier.
func (h *UserHandler) GetProfile(c *gin.Context) {
	var req UserPageRequest
	if err := c.ShouldBindUri(&req); err != nil {
		BadRequest(c, "invalid user identifier")
		return
	}

	viewer := middleware.GetViewer(c)
	profile, err := h.profiles.GetProfile(c.Request.Context(), req.Identifier, viewer)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			NotFound(c, "user not found")
			return
		}
		InternalError(c, err)
		return
	}

	// Users with a custom URL are always addressed by it.
	canonical := urls.UserPage(profile.DiscordID, profile.CustomURL)
	if urls.UserIdentifier(profile.DiscordID, profile.CustomURL) != req.Identifier {
		target := canonical
		if q := c.Request.URL.RawQuery; q != "" {
			target += "?" + q
		}
		c.Redirect(http.StatusMovedPermanently, target)
		return
	}

	t := middleware.GetTranslator(c)
	page := view.NewPage(t, viewer, meta.User(h.site, t, &profile.User, profile.TopPlacements), profile)
	page.Breadcrumbs = []view.Breadcrumb{
		{Label: t.T("common.pages.users"), Href: urls.UserSearchPage, ImgPath: urls.NavIconURL("u")},
		{Label: format.DiscordFullName(profile.DiscordName, profile.DiscordDiscriminator), Href: canonical},
	}
	page.SubNav = h.subNav(t, profile, viewer)

	render(c, http.StatusOK, "user.html", page, profile)
}

// subNav lists the profile tabs the viewer can open.
func (h *UserHandler) subNav(t *i18n.Translator, p *service.UserProfile, viewer *domain.Viewer) []view.NavItem {
	isOwnPage := viewer != nil && viewer.ID == p.ID

	items := []view.NavItem{
		{Label: t.T("common.header.profile"), Href: urls.UserPage(p.DiscordID, p.CustomURL), Active: true},
	}
	if current := season.Current(h.now()); current != nil {
		items = append(items, view.NavItem{
			Label: t.T("common.seasons"),
			Href:  urls.UserSeasonsPage(p.DiscordID, p.CustomURL, current.Nth),
		})
	}
	if isOwnPage {
		items = append(items, view.NavItem{
			Label: t.T("common.actions.edit"),
			Href:  urls.UserSubPage(p.DiscordID, p.CustomURL, "edit"),
		})
	}
	if len(p.Results) > 0 {
		items = append(items, view.NavItem{
			Label: fmt.Sprintf("%s (%d)", t.T("common.results"), len(p.Results)),
			Href:  urls.UserSubPage(p.DiscordID, p.CustomURL, "results"),
		})
	}
	if isOwnPage || p.BuildsCount > 0 {
		items = append(items, view.NavItem{
			Label: fmt.Sprintf("%s (%d)", t.T("common.pages.builds"), p.BuildsCount),
			Href:  urls.UserSubPage(p.DiscordID, p.CustomURL, "builds"),
		})
	}
	if len(p.Vods) > 0 {
		items = append(items, view.NavItem{
			Label: fmt.Sprintf("%s (%d)", t.T("common.pages.vods"), len(p.Vods)),
			Href:  urls.UserSubPage(p.DiscordID, p.CustomURL, "vods"),
		})
	}
	if isOwnPage || p.ArtCount > 0 {
		items = append(items, view.NavItem{
			Label: fmt.Sprintf("%s (%d)", t.T("common.pages.art"), p.ArtCount),
			Href:  urls.UserSubPage(p.DiscordID, p.CustomURL, "art"),
		})
	}

	return items
}

// SearchUsers handles GET /u.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var req UserSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "invalid search query")
		return
	}

	users := []domain.UserSummary{}
	if strings.TrimSpace(req.Query) != "" {
		var err error
		users, err = h.search.SearchUsers(c.Request.Context(), req.Query)
		if err != nil {
			InternalError(c, err)
			return
		}
	}

	data := SearchResponse{Query: req.Query, Users: users}

	t := middleware.GetTranslator(c)
	page := view.NewPage(t, middleware.GetViewer(c), meta.Page(h.site, format.MakeTitle(t.T("common.pages.users")), ""), data)
	page.Breadcrumbs = []view.Breadcrumb{
		{Label: t.T("common.pages.users"), Href: urls.UserSearchPage, ImgPath: urls.NavIconURL("u")},
	}

	render(c, http.StatusOK, "user_search.html", page, data)
}
