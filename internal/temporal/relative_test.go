package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aelexs/temporal-query-service/internal/temporal"
)

func TestDescribePicksLargestNonzeroUnit(t *testing.T) {
	tests := []struct {
		name string
		d    temporal.Difference
		want string
	}{
		{
			"seven days reads days not weeks",
			temporal.Difference{Days: 7, Weeks: 1, Hours: 168, Minutes: 10080, Seconds: 604800, Milliseconds: 604800000, IsPast: true},
			"7 days ago",
		},
		{
			"years outrank months",
			temporal.Difference{Years: 2, Months: 26, Days: 791, IsPast: true},
			"2 years ago",
		},
		{
			"months outrank days",
			temporal.Difference{Months: 3, Days: 92, Hours: 2208, IsPast: true},
			"3 months ago",
		},
		{
			"hours when no full day elapsed",
			temporal.Difference{Hours: 5, Minutes: 330, Seconds: 19800, IsPast: true},
			"5 hours ago",
		},
		{
			"minutes",
			temporal.Difference{Minutes: 42, Seconds: 2520, IsPast: true},
			"42 minutes ago",
		},
		{
			"seconds",
			temporal.Difference{Seconds: 9, Milliseconds: 9000, IsPast: true},
			"9 seconds ago",
		},
		{
			"sub-second difference reads now",
			temporal.Difference{Milliseconds: 400, IsPast: true},
			"now",
		},
		{
			"zero difference reads now",
			temporal.Difference{},
			"now",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, temporal.Describe(tt.d))
		})
	}
}

func TestDescribeDirection(t *testing.T) {
	past := temporal.Difference{Days: 3, Hours: 72, IsPast: true}
	future := temporal.Difference{Days: 3, Hours: 72, IsPast: false}

	assert.Equal(t, "3 days ago", temporal.Describe(past))
	assert.Equal(t, "3 days from now", temporal.Describe(future))
}

func TestDescribeSingular(t *testing.T) {
	tests := []struct {
		name string
		d    temporal.Difference
		want string
	}{
		{"one day", temporal.Difference{Days: 1, Hours: 24, IsPast: true}, "1 day ago"},
		{"one hour from now", temporal.Difference{Hours: 1, Minutes: 60}, "1 hour from now"},
		{"one month", temporal.Difference{Months: 1, Days: 31, IsPast: true}, "1 month ago"},
		{"one year", temporal.Difference{Years: 1, Months: 12, Days: 365, IsPast: true}, "1 year ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, temporal.Describe(tt.d))
		})
	}
}

func TestDescribeEndToEnd(t *testing.T) {
	now := mustParse(t, "2025-01-08T00:00:00Z", temporal.UTC)
	reference := mustParse(t, "2025-01-01T00:00:00Z", temporal.UTC)

	phrase := temporal.Describe(temporal.Diff(now, reference, temporal.UTC))

	assert.Equal(t, "7 days ago", phrase)
}
