// Package season knows the SendouQ ranked season calendar.
package season

import "time"

// Season is one ranked season.
type Season struct {
	Nth    int
	Starts time.Time
	Ends   time.Time
}

// Seasons lists every ranked season in order.
var Seasons = []Season{
	{
		Nth:    0,
		Starts: time.Date(2023, time.August, 14, 17, 0, 0, 0, time.UTC),
		Ends:   time.Date(2023, time.August, 27, 20, 59, 59, 0, time.UTC),
	},
	{
		Nth:    1,
		Starts: time.Date(2023, time.September, 11, 17, 0, 0, 0, time.UTC),
		Ends:   time.Date(2023, time.November, 19, 20, 59, 59, 0, time.UTC),
	},
	{
		Nth:    2,
		Starts: time.Date(2023, time.December, 4, 17, 0, 0, 0, time.UTC),
		Ends:   time.Date(2024, time.February, 18, 20, 59, 59, 0, time.UTC),
	},
}

// Current returns the season running at the given time, or nil between seasons.
func Current(now time.Time) *Season {
	for i := range Seasons {
		s := &Seasons[i]
		if !now.Before(s.Starts) && !now.After(s.Ends) {
			return s
		}
	}
	return nil
}
