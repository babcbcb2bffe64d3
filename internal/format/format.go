// Package format holds small string and number helpers shared by pages and meta tags.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sendou-ink/sendou-pages/internal/domain"
)

// SiteName is appended to every page title.
const SiteName = "sendou.ink"

// MakeTitle joins the parts with " | " and appends the site name.
func MakeTitle(parts ...string) string {
	return strings.Join(append(parts, SiteName), " | ")
}

// DiscordFullName returns the Discord name with the legacy discriminator when
// the user still has one.
func DiscordFullName(name, discriminator string) string {
	if discriminator == "" || discriminator == "0" {
		return name
	}
	return name + "#" + discriminator
}

// SummaryFullName is DiscordFullName for a user summary.
func SummaryFullName(u domain.UserSummary) string {
	return DiscordFullName(u.DiscordName, u.DiscordDiscriminator)
}

// RemoveDuplicates returns the values in order of first appearance without repeats.
func RemoveDuplicates[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	result := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// SecondsToMinutes formats a video offset as m:ss.
func SecondsToMinutes(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Power formats an X power the shortest way that round-trips, e.g. 3100 or 2900.5.
func Power(power float64) string {
	return strconv.FormatFloat(power, 'f', -1, 64)
}

// MonthYearToSpan returns the months a set of placements published in the
// given month was played in: the three months before it.
func MonthYearToSpan(my domain.MonthYear) domain.Span {
	return domain.Span{
		From: addMonths(my, -3),
		To:   addMonths(my, -1),
	}
}

func addMonths(my domain.MonthYear, delta int) domain.MonthYear {
	index := my.Year*12 + (my.Month - 1) + delta
	return domain.MonthYear{Month: index%12 + 1, Year: index / 12}
}

// Plural picks the singular form when count is exactly one.
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
