// Package permissions decides what the viewer of a page may see and do.
package permissions

import "github.com/sendou-ink/sendou-pages/internal/domain"

// CustomColorsMinPatronTier is the lowest patron tier allowed to customize profile colors.
const CustomColorsMinPatronTier = 2

// Policy evaluates permissions against the configured admin.
type Policy struct {
	AdminDiscordID string
}

// NewPolicy creates a new permission policy.
func NewPolicy(adminDiscordID string) *Policy {
	return &Policy{AdminDiscordID: adminDiscordID}
}

// IsAdmin reports whether the viewer is the site admin.
func (p *Policy) IsAdmin(viewer *domain.Viewer) bool {
	return viewer != nil && p.AdminDiscordID != "" && viewer.DiscordID == p.AdminDiscordID
}

// CanAddCustomizedColorsToUserProfile reports whether the user's custom CSS may be shown.
func (p *Policy) CanAddCustomizedColorsToUserProfile(patronTier *int) bool {
	return patronTier != nil && *patronTier >= CustomColorsMinPatronTier
}

// CanEditBadgeOwners reports whether the viewer manages the badge or is admin.
func (p *Policy) CanEditBadgeOwners(viewer *domain.Viewer, managers []domain.BadgeManager) bool {
	if viewer == nil {
		return false
	}
	if p.IsAdmin(viewer) {
		return true
	}
	for _, m := range managers {
		if m.ID == viewer.ID {
			return true
		}
	}
	return false
}

// CanEditVideo reports whether the viewer submitted the video, is its POV
// player or is admin.
func (p *Policy) CanEditVideo(viewer *domain.Viewer, submitterUserID int, povUserID *int) bool {
	if viewer == nil {
		return false
	}
	if p.IsAdmin(viewer) {
		return true
	}
	if viewer.ID == submitterUserID {
		return true
	}
	return povUserID != nil && *povUserID == viewer.ID
}
