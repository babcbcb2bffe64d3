package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want *int
	}{
		{"before first", time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), nil},
		{"season 0 start", time.Date(2023, time.August, 14, 17, 0, 0, 0, time.UTC), intPtr(0)},
		{"between seasons", time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), nil},
		{"season 1", time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), intPtr(1)},
		{"season 2 crosses year", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), intPtr(2)},
		{"after last", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Current(tt.now)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, got.Nth)
		})
	}
}

func intPtr(v int) *int { return &v }
