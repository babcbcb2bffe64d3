package view

import (
	"html/template"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/format"
	"github.com/sendou-ink/sendou-pages/internal/urls"
)

// ModePlacement is the best placement in one mode.
type ModePlacement struct {
	Mode domain.ModeShort
	domain.TopPlacement
}

// Funcs returns the template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"avatar":        avatar,
		"bio":           RenderBio,
		"badgeImage":    func(code string) string { return urls.BadgeURL(code, "gif") },
		"badgePage":     urls.BadgePage,
		"deref":         deref,
		"isTrue":        func(b *bool) bool { return b != nil && *b },
		"fullName":      format.DiscordFullName,
		"summaryName":   format.SummaryFullName,
		"minutes":       format.SecondsToMinutes,
		"power":         format.Power,
		"span":          span,
		"modeImage":     urls.ModeImageURL,
		"stageImage":    urls.StageImageURL,
		"weaponImage":   urls.WeaponImageURL,
		"navIcon":       urls.NavIconURL,
		"userPage":      urls.UserPage,
		"vodPage":       urls.VodPage,
		"playerPage":    urls.TopSearchPlayerPage,
		"teamPage":      urls.TeamPage,
		"youtubeEmbed":  youtubeEmbed,
		"twitter":       func(handle string) string { return urls.Absolute(urls.TwitterProfile(handle)) },
		"twitch":        func(handle string) string { return urls.Absolute(urls.TwitchProfile(handle)) },
		"youtube":       func(channel string) string { return urls.Absolute(urls.YoutubeChannel(channel)) },
		"topPlacements": topPlacements,
		"splitTeams":    splitTeams,
		"roleKey":       roleKey,
	}
}

func avatar(discordID string, hash *string, size int) string {
	if hash == nil || *hash == "" {
		return ""
	}
	return urls.DiscordAvatar(discordID, *hash, size)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func span(month, year int) domain.Span {
	return format.MonthYearToSpan(domain.MonthYear{Month: month, Year: year})
}

func youtubeEmbed(youtubeID string, start int) template.URL {
	return template.URL(urls.YoutubeEmbed(youtubeID, start, start > 0))
}

func topPlacements(top map[domain.ModeShort]domain.TopPlacement) []ModePlacement {
	result := make([]ModePlacement, 0, len(top))
	for _, mode := range domain.AllModes {
		if p, ok := top[mode]; ok {
			result = append(result, ModePlacement{Mode: mode, TopPlacement: p})
		}
	}
	return result
}

func roleKey(role *domain.TeamMemberRole) string {
	if role == nil {
		return ""
	}
	return "team.roles." + string(*role)
}

// splitTeams splits the weapons of a full match into the two teams.
func splitTeams(weapons []int) [][]int {
	half := len(weapons) / 2
	return [][]int{weapons[:half], weapons[half:]}
}
