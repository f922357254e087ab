package temporal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aelexs/temporal-query-service/internal/temporal"
)

func mustZone(t *testing.T, name string) temporal.Zone {
	t.Helper()
	z, err := temporal.NewResolver().Resolve(name)
	require.NoError(t, err)
	return z
}

func TestInstantOfTruncatesToMillis(t *testing.T) {
	base := time.Date(2025, 1, 8, 12, 30, 45, 123_456_789, time.UTC)

	i := temporal.InstantOf(base)

	assert.Equal(t, base.UnixMilli(), i.EpochMillis())
	assert.Equal(t, 123, i.Time().Nanosecond()/int(time.Millisecond))
}

func TestInstantISORoundTrip(t *testing.T) {
	i := temporal.InstantOf(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))

	iso := i.ISO()
	assert.Equal(t, "2025-01-08T00:00:00.000Z", iso)

	parsed, err := temporal.ParseTimestamp(iso, temporal.UTC)
	require.NoError(t, err)
	assert.Equal(t, i, parsed)
}

func TestInstantISOIn(t *testing.T) {
	tokyo := mustZone(t, "Asia/Tokyo")
	i := temporal.InstantOf(time.Date(2025, 7, 12, 1, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-07-12T10:00:00.000+09:00", i.ISOIn(tokyo))
}

func TestEpochSeconds(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want int64
	}{
		{"exact second", 1736294400000, 1736294400},
		{"truncates positive", 1736294400999, 1736294400},
		{"epoch", 0, 0},
		{"truncates negative toward past", -1500, -2},
		{"exact negative second", -2000, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, temporal.Instant(tt.ms).EpochSeconds())
		})
	}
}

func TestInstantOrdering(t *testing.T) {
	a := temporal.Instant(1000)
	b := temporal.Instant(2000)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.False(t, a.Before(a))
}
