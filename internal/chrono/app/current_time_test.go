package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aelexs/temporal-query-service/internal/domain"
	"github.com/aelexs/temporal-query-service/pkg/protocol"
)

func TestCurrentTimeDefaultZone(t *testing.T) {
	h := newTestHarness(t)

	resp, err := h.svc.CurrentTime(context.Background(), protocol.CurrentTimeRequest{})

	require.NoError(t, err)
	assert.Equal(t, "2025-01-08T00:00:00.000Z", resp.Timestamp.ISO)
	assert.Equal(t, int64(1736294400000), resp.Timestamp.EpochMillis)
	assert.Equal(t, int64(1736294400), resp.Timestamp.EpochSeconds)
	assert.Equal(t, "UTC", resp.Timezone.Name)
	assert.Equal(t, 2025, resp.Components.Year)
	assert.Equal(t, 1, resp.Components.Month)
	assert.Equal(t, 8, resp.Components.Day)
	assert.Equal(t, 3, resp.Components.DayOfWeek) // Wednesday
	assert.False(t, resp.Context.IsWeekend)
	assert.Equal(t, 1, resp.Context.Quarter)
	assert.Equal(t, 31, resp.Context.DaysInMonth)
}

func TestCurrentTimeInZone(t *testing.T) {
	h := newTestHarness(t)

	resp, err := h.svc.CurrentTime(context.Background(), protocol.CurrentTimeRequest{Timezone: "Asia/Tokyo"})

	require.NoError(t, err)
	// Midnight UTC is 09:00 the same day in Tokyo.
	assert.Equal(t, "2025-01-08T09:00:00.000+09:00", resp.Local)
	assert.Equal(t, 9, resp.Components.Hour)
	assert.Equal(t, "+09:00", resp.Timezone.Offset)
	// The absolute instant is independent of the requested zone.
	assert.Equal(t, int64(1736294400000), resp.Timestamp.EpochMillis)
}

func TestCurrentTimeWeekendContext(t *testing.T) {
	h := newTestHarness(t)
	// 2025-07-12 is a Saturday.
	h.clock.Set(time.Date(2025, 7, 12, 15, 0, 0, 0, time.UTC))

	resp, err := h.svc.CurrentTime(context.Background(), protocol.CurrentTimeRequest{Timezone: "UTC"})

	require.NoError(t, err)
	assert.Equal(t, 6, resp.Components.DayOfWeek)
	assert.True(t, resp.Context.IsWeekend)
	assert.Equal(t, 193, resp.Components.DayOfYear)
	assert.Equal(t, 3, resp.Context.Quarter)
}

func TestCurrentTimeInvalidZone(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.svc.CurrentTime(context.Background(), protocol.CurrentTimeRequest{Timezone: "Mars/Olympus_Mons"})

	assert.ErrorIs(t, err, domain.ErrInvalidTimezone)
}

func TestCurrentTimeSingleClockReadPerRequest(t *testing.T) {
	h := newTestHarness(t)

	first, err := h.svc.CurrentTime(context.Background(), protocol.CurrentTimeRequest{})
	require.NoError(t, err)

	h.clock.Advance(250 * time.Millisecond)

	second, err := h.svc.CurrentTime(context.Background(), protocol.CurrentTimeRequest{})
	require.NoError(t, err)

	// Each response is internally consistent with its own clock reading.
	assert.Equal(t, int64(1736294400000), first.Timestamp.EpochMillis)
	assert.Equal(t, int64(1736294400250), second.Timestamp.EpochMillis)
	assert.Equal(t, 0, first.Components.Millisecond)
	assert.Equal(t, 250, second.Components.Millisecond)
}
