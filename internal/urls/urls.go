// Package urls builds site paths and external asset URLs.
package urls

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/sendou-ink/sendou-pages/internal/domain"
)

// Site pages.
const (
	UserSearchPage       = "/u"
	BadgesPage           = "/badges"
	VodsPage             = "/vods"
	TopSearchPage        = "/xsearch"
	SendouQPage          = "/q"
	SendouQPreparingPage = "/q/preparing"
	SendouQJoinPage      = "/q/join"
)

// IsCustomURL reports whether a user page identifier is a custom URL rather
// than a numeric Discord id.
func IsCustomURL(identifier string) bool {
	if identifier == "" {
		return false
	}
	_, err := strconv.ParseUint(identifier, 10, 64)
	return err != nil
}

// UserIdentifier returns the preferred identifier for a user's pages.
func UserIdentifier(discordID string, customURL *string) string {
	if customURL != nil && *customURL != "" {
		return *customURL
	}
	return discordID
}

// UserPage returns the profile path of a user.
func UserPage(discordID string, customURL *string) string {
	return "/u/" + UserIdentifier(discordID, customURL)
}

// UserSubPage returns a tab of a user's profile, e.g. "builds".
func UserSubPage(discordID string, customURL *string, tab string) string {
	return UserPage(discordID, customURL) + "/" + tab
}

// UserSeasonsPage returns the ranked seasons tab of a user.
func UserSeasonsPage(discordID string, customURL *string, season int) string {
	return fmt.Sprintf("%s?season=%d", UserSubPage(discordID, customURL, "seasons"), season)
}

// BadgePage returns the details path of a badge.
func BadgePage(id int) string {
	return fmt.Sprintf("%s/%d", BadgesPage, id)
}

// BadgeURL returns the path of a badge image.
func BadgeURL(code, extension string) string {
	return fmt.Sprintf("/static-assets/badges/%s.%s", code, extension)
}

// NavIconURL returns the path of a navigation icon.
func NavIconURL(item string) string {
	return fmt.Sprintf("/static-assets/img/layout/%s.png", item)
}

// StageImageURL returns the path of a stage banner.
func StageImageURL(stageID int) string {
	return fmt.Sprintf("/static-assets/img/stages/%d.png", stageID)
}

// ModeImageURL returns the path of a mode icon.
func ModeImageURL(mode domain.ModeShort) string {
	return fmt.Sprintf("/static-assets/img/modes/%s.png", mode)
}

// WeaponImageURL returns the path of a main weapon icon.
func WeaponImageURL(weaponSplID int) string {
	return fmt.Sprintf("/static-assets/img/main-weapons/%d.png", weaponSplID)
}

// VodPage returns the path of a VOD, optionally starting at an offset in seconds.
func VodPage(id int, start int) string {
	if start > 0 {
		return fmt.Sprintf("%s/%d?start=%d", VodsPage, id, start)
	}
	return fmt.Sprintf("%s/%d", VodsPage, id)
}

// NewVodPage returns the edit form of a VOD.
func NewVodPage(id int) string {
	return fmt.Sprintf("%s/new?vod=%d", VodsPage, id)
}

// TopSearchPlayerPage returns the placements page of a player.
func TopSearchPlayerPage(playerID int) string {
	return fmt.Sprintf("%s/player/%d", TopSearchPage, playerID)
}

// TeamPage returns the page of a team.
func TeamPage(customURL string) string {
	return "/t/" + customURL
}

// SendouQInviteLink returns the join path for a group invite code.
func SendouQInviteLink(inviteCode string) string {
	return SendouQJoinPage + "?code=" + url.QueryEscape(inviteCode)
}

// YoutubeThumbnail returns the default thumbnail of a YouTube video.
func YoutubeThumbnail(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/0.jpg", youtubeID)
}

// YoutubeEmbed returns the embed URL of a YouTube video.
func YoutubeEmbed(youtubeID string, start int, autoplay bool) string {
	q := url.Values{}
	if start > 0 {
		q.Set("start", strconv.Itoa(start))
	}
	if autoplay {
		q.Set("autoplay", "1")
	}
	u := "https://www.youtube.com/embed/" + youtubeID
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// DiscordAvatar returns a Discord CDN avatar in webp at the given size.
func DiscordAvatar(discordID, avatar string, size int) string {
	return fmt.Sprintf("%s%s/%s.webp?size=%d", discordgo.EndpointCDNAvatars, discordID, avatar, size)
}

// TwitterProfile returns a Twitter profile link without scheme.
func TwitterProfile(handle string) string {
	return "twitter.com/" + handle
}

// TwitchProfile returns a Twitch channel link without scheme.
func TwitchProfile(handle string) string {
	return "twitch.tv/" + handle
}

// YoutubeChannel returns a YouTube channel link without scheme.
func YoutubeChannel(channel string) string {
	return "youtube.com/channel/" + channel
}

// Absolute prefixes a schemeless link with https.
func Absolute(link string) string {
	return "https://" + link
}
