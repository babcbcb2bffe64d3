package repository

import (
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
)

// UserSummaryColumns returns the select list matching UserSummaryDest for the given table alias.
func UserSummaryColumns(alias string) string {
	return fmt.Sprintf(
		"%[1]s.id, %[1]s.discord_id, %[1]s.discord_name, %[1]s.discord_discriminator, %[1]s.discord_avatar, %[1]s.custom_url",
		alias,
	)
}

// UserSummaryDest returns scan destinations for the columns of UserSummaryColumns.
func UserSummaryDest(u *domain.UserSummary) []any {
	return []any{
		&u.ID,
		&u.DiscordID,
		&u.DiscordName,
		&u.DiscordDiscriminator,
		&u.DiscordAvatar,
		&u.CustomURL,
	}
}
