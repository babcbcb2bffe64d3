// Package meta builds the SEO and social preview tags of each page.
package meta

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/format"
	"github.com/sendou-ink/sendou-pages/internal/i18n"
	"github.com/sendou-ink/sendou-pages/internal/urls"
)

// Tag is one head element. Exactly one of Title, Name or Property is set;
// Title renders as <title>, the others as <meta> with Content.
type Tag struct {
	Title    string `json:"title,omitempty"`
	Name     string `json:"name,omitempty"`
	Property string `json:"property,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Site carries the values shared by all pages.
type Site struct {
	BaseURL string
	Name    string
}

// Splatoon3XPBadgeValues are the X power milestones that have a badge.
var Splatoon3XPBadgeValues = []int{
	5000, 4900, 4800, 4700, 4600, 4500, 4400, 4300, 4200, 4100, 4000,
	3900, 3800, 3700, 3600, 3500, 3400, 3300, 3200, 3100, 3000, 2900, 2800, 2700, 2600,
}

var stripTags = bluemonday.StrictPolicy()

func title(s string) Tag             { return Tag{Title: s} }
func name(n, content string) Tag     { return Tag{Name: n, Content: content} }
func property(p, content string) Tag { return Tag{Property: p, Content: content} }

// PlainText removes any markup from user supplied text.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripTags.Sanitize(s)))
}

// TitleOf returns the content of the title tag, if any.
func TitleOf(tags []Tag) string {
	for _, t := range tags {
		if t.Title != "" {
			return t.Title
		}
	}
	return ""
}

// Page returns the basic tags of a page without a dedicated builder.
func Page(site Site, pageTitle, description string) []Tag {
	tags := []Tag{
		title(pageTitle),
		property("og:title", pageTitle),
	}
	if description != "" {
		tags = append(tags,
			name("description", description),
			property("og:description", description),
		)
	}
	return append(tags,
		property("og:type", "website"),
		property("og:site_name", site.Name),
	)
}

// UserDescription describes a profile: in-game name, bio, team, weapon pool,
// top placements per mode and socials, each only when present.
func UserDescription(t *i18n.Translator, u *domain.User, top map[domain.ModeShort]domain.TopPlacement) string {
	var b strings.Builder

	if u.InGameName != nil && *u.InGameName != "" {
		fmt.Fprintf(&b, "IGN: %s\n", *u.InGameName)
	}
	if u.Bio != nil {
		if bio := PlainText(*u.Bio); bio != "" {
			b.WriteString(bio + " \n")
		}
	}
	if u.Team != nil {
		fmt.Fprintf(&b, "Member of %s. \n", u.Team.Name)
	}
	if len(u.Weapons) > 0 {
		names := make([]string, 0, len(u.Weapons))
		for _, w := range u.Weapons {
			weaponName := t.Weapon(w.WeaponSplID)
			if w.IsFavorite {
				weaponName = "⭐" + weaponName
			}
			names = append(names, weaponName)
		}
		fmt.Fprintf(&b, "Weapon pool: %s. \n", strings.Join(names, ", "))
	}
	if len(top) > 0 {
		b.WriteString("Top placements: \n")
		for _, mode := range domain.AllModes {
			if p, ok := top[mode]; ok {
				fmt.Fprintf(&b, "- %s: %d/%s\n", mode, p.Rank, format.Power(p.Power))
			}
		}
	}
	if nonEmpty(u.Twitter) || nonEmpty(u.Twitch) || nonEmpty(u.YoutubeID) {
		b.WriteString("Socials: \n")
		if nonEmpty(u.Twitter) {
			fmt.Fprintf(&b, "- Twitter: %s\n", urls.TwitterProfile(*u.Twitter))
		}
		if nonEmpty(u.Twitch) {
			fmt.Fprintf(&b, "- Twitch: %s\n", urls.TwitchProfile(*u.Twitch))
		}
		if nonEmpty(u.YoutubeID) {
			fmt.Fprintf(&b, "- Youtube: %s\n", urls.YoutubeChannel(*u.YoutubeID))
		}
	}

	return b.String()
}

// User returns the tags of a profile page.
func User(site Site, t *i18n.Translator, u *domain.User, top map[domain.ModeShort]domain.TopPlacement) []Tag {
	pageTitle := format.MakeTitle(format.DiscordFullName(u.DiscordName, u.DiscordDiscriminator))
	description := UserDescription(t, u, top)

	tags := []Tag{
		title(pageTitle),
		property("og:title", pageTitle),
		property("twitter:text:title", pageTitle),
		name("description", description),
		property("og:description", description),
		property("og:url", site.BaseURL+urls.UserPage(u.DiscordID, u.CustomURL)),
		name("twitter:card", "summary"),
	}
	if nonEmpty(u.DiscordAvatar) {
		tags = append(tags, property("og:image", urls.DiscordAvatar(u.DiscordID, *u.DiscordAvatar, 600)))
	}
	return append(tags,
		property("og:type", "profile"),
		property("profile:username", u.DiscordName),
		property("og:site_name", site.Name),
	)
}

// IsXPBadge reports whether the badge is awarded for an X power milestone.
func IsXPBadge(code string) bool {
	if strings.HasPrefix(code, "xp") {
		return true
	}
	value, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	for _, v := range Splatoon3XPBadgeValues {
		if v == value {
			return true
		}
	}
	return false
}

// BadgeExplanation returns what the badge was awarded for.
func BadgeExplanation(t *i18n.Translator, b domain.Badge) string {
	switch {
	case b.Code == "patreon":
		return t.T("badges.patreon")
	case b.Code == "patreon_plus":
		return t.T("badges.patreon+")
	case IsXPBadge(b.Code):
		return t.T("badges.xp", "xpText", b.DisplayName)
	}

	count := b.Count
	if count == 0 {
		count = 1
	}
	return t.T("badges.tournament", "count", count, "tournament", b.DisplayName)
}

// BadgeDescription lists the explanation, managers and owners of a badge.
func BadgeDescription(t *i18n.Translator, b domain.Badge, owners []domain.BadgeOwner, managers []domain.BadgeManager) string {
	var sb strings.Builder

	sb.WriteString(BadgeExplanation(t, b) + ". \n")

	managerNames := make([]string, 0, len(managers))
	for _, m := range managers {
		managerNames = append(managerNames, format.SummaryFullName(m.UserSummary))
	}
	sb.WriteString("Managed by " + strings.Join(managerNames, ", ") + "\n")

	ownerNames := make([]string, 0, len(owners))
	for _, o := range owners {
		count := ""
		if o.Count > 1 {
			count = fmt.Sprintf("(%d)", o.Count)
		}
		ownerNames = append(ownerNames, format.SummaryFullName(o.UserSummary)+" "+count)
	}
	sb.WriteString("Owned by: " + strings.Join(ownerNames, ", ") + "\n")

	return sb.String()
}

// Badge returns the tags of a badge details page.
func Badge(site Site, t *i18n.Translator, b domain.Badge, owners []domain.BadgeOwner, managers []domain.BadgeManager) []Tag {
	pageTitle := format.MakeTitle(b.DisplayName + " badge.")
	description := BadgeDescription(t, b, owners, managers)

	return []Tag{
		title(pageTitle),
		property("og:title", pageTitle),
		property("twitter:text:title", pageTitle),
		name("description", description),
		property("og:description", description),
		name("twitter:card", "summary_large_image"),
		property("og:image", site.BaseURL+urls.BadgeURL(b.Code, "gif")),
		property("og:type", "website"),
		property("og:site_name", site.Name),
	}
}

// VodDescription lists the matches of a VOD with their stages and weapons.
func VodDescription(t *i18n.Translator, v *domain.Vod) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d %s played.\n", len(v.Matches), format.Plural(len(v.Matches), "match was", "matches were"))
	for _, m := range v.Matches {
		fmt.Fprintf(&b, " - %s %s \n", m.Mode, t.Stage(m.StageID))
		weaponPhrase := "weapon was"
		if len(m.Weapons) > 1 {
			weaponPhrase = "weapons were"
		}
		fmt.Fprintf(&b, "   The following %s played: ", weaponPhrase)

		names := make([]string, 0, len(m.Weapons))
		for _, w := range m.Weapons {
			names = append(names, t.Weapon(w))
		}
		b.WriteString(strings.Join(names, ", ") + "\n")
	}

	return b.String()
}

// Vod returns the tags of a VOD page.
func Vod(site Site, t *i18n.Translator, v *domain.Vod) []Tag {
	description := VodDescription(t, v)

	return []Tag{
		title(format.MakeTitle(v.Title)),
		property("og:title", v.Title),
		name("description", description),
		property("og:description", description),
		name("twitter:card", "summary_large_image"),
		property("og:image", urls.YoutubeThumbnail(v.YoutubeID)),
		property("og:type", "website"),
		property("og:site_name", site.Name),
	}
}

// PlayerDescription lists every top 500 placement of a player.
// Placements must not be empty.
func PlayerDescription(t *i18n.Translator, placements []domain.Placement) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Top placements for %s: \n", placements[0].Name)
	for _, p := range placements {
		span := format.MonthYearToSpan(domain.MonthYear{Month: p.Month, Year: p.Year})
		fmt.Fprintf(&b, " - %d/%s in %s: %s using %s (%d/%d - %d/%d)\n",
			p.Rank,
			format.Power(p.Power),
			p.Region.DivisionName(),
			p.Mode,
			t.Weapon(p.WeaponSplID),
			span.From.Month, span.From.Year,
			span.To.Month, span.To.Year,
		)
	}

	return b.String()
}

// Player returns the tags of a top 500 player page.
func Player(site Site, t *i18n.Translator, pageTitle string, placements []domain.Placement) []Tag {
	description := PlayerDescription(t, placements)

	return []Tag{
		title(pageTitle),
		property("og:title", pageTitle),
		property("twitter:text:title", pageTitle),
		name("description", description),
		property("og:description", description),
		property("og:url", site.BaseURL+urls.TopSearchPlayerPage(placements[0].PlayerID)),
		name("twitter:card", "summary"),
		property("og:type", "website"),
		property("og:site_name", site.Name),
	}
}

// TeamDescription returns the team's bio followed by its roster.
func TeamDescription(t *i18n.Translator, team *domain.Team) string {
	var b strings.Builder

	if team.Bio != nil {
		if bio := PlainText(*team.Bio); bio != "" {
			b.WriteString(bio + " \n")
		}
	}

	members := make([]string, 0, len(team.Members))
	for _, m := range team.Members {
		member := format.SummaryFullName(m.UserSummary)
		if m.Role != nil {
			member += " (" + t.T("team.roles."+string(*m.Role)) + ")"
		}
		members = append(members, member)
	}
	if len(members) > 0 {
		b.WriteString("Members: " + strings.Join(members, ", ") + "\n")
	}

	return b.String()
}

// Team returns the tags of a team page.
func Team(site Site, t *i18n.Translator, team *domain.Team) []Tag {
	pageTitle := format.MakeTitle(team.Name)
	description := TeamDescription(t, team)

	tags := []Tag{
		title(pageTitle),
		property("og:title", pageTitle),
		property("twitter:text:title", pageTitle),
		name("description", description),
		property("og:description", description),
		property("og:url", site.BaseURL+urls.TeamPage(team.CustomURL)),
		name("twitter:card", "summary"),
	}
	if nonEmpty(team.AvatarURL) {
		tags = append(tags, property("og:image", *team.AvatarURL))
	}
	return append(tags,
		property("og:type", "website"),
		property("og:site_name", site.Name),
	)
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
