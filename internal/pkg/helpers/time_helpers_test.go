package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWholeYearsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2020, time.May, 10), date(2020, time.May, 10), 0},
		{"exact anniversary", date(2020, time.May, 10), date(2025, time.May, 10), 5},
		{"day before anniversary", date(2020, time.May, 10), date(2025, time.May, 9), 4},
		{"month before anniversary", date(2020, time.May, 10), date(2025, time.April, 30), 4},
		{"after anniversary", date(2020, time.May, 10), date(2025, time.December, 31), 5},
		{"calendar year boundary is not a year", date(2024, time.December, 31), date(2025, time.January, 1), 0},
		{"leap day hire on Feb 28 of non-leap year", date(2020, time.February, 29), date(2021, time.February, 28), 0},
		{"leap day hire rolls to Mar 1", date(2020, time.February, 29), date(2021, time.March, 1), 1},
		{"leap day hire on next leap day", date(2020, time.February, 29), date(2024, time.February, 29), 4},
		{"future hire", date(2030, time.January, 1), date(2025, time.January, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WholeYearsBetween(tt.start, tt.end))
		})
	}
}

func TestWholeYearsBetweenIgnoresClock(t *testing.T) {
	start := date(2015, time.June, 1)
	end := time.Date(2025, time.June, 1, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, 10, WholeYearsBetween(start, end))

	end = time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, 9, WholeYearsBetween(start, end))
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2019-12-01")
	require.NoError(t, err)
	assert.Equal(t, date(2019, time.December, 1), d)

	assert.Equal(t, "2019-12-01", *FormatDate(&d))
	assert.Nil(t, FormatDate(nil))

	_, err = ParseDate("01/12/2019")
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
}

func TestTruncateToDateKeepsLocalCalendarDay(t *testing.T) {
	zurich := time.FixedZone("CET", 60*60)

	// 00:30 in Zurich is still the previous day in UTC
	got := TruncateToDate(time.Date(2025, time.March, 1, 0, 30, 0, 0, zurich))

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}
