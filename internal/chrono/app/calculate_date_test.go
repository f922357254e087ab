package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aelexs/temporal-query-service/internal/domain"
	"github.com/aelexs/temporal-query-service/pkg/protocol"
)

func TestCalculateDateFromNow(t *testing.T) {
	h := newTestHarness(t)

	resp, err := h.svc.CalculateDate(context.Background(), protocol.CalculateDateRequest{
		Amount: float64Ptr(7),
		Unit:   "days",
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T00:00:00.000Z", resp.Result.Timestamp.ISO)
	assert.Equal(t, "2025-01-08T00:00:00.000Z", resp.Base.ISO)
	assert.Equal(t, int64(7), resp.Amount)
	assert.Equal(t, "days", resp.Unit)
	assert.Equal(t, "7 days after 2025-01-08T00:00:00.000Z", resp.Description)
	assert.Equal(t, "7 days from now", resp.FromNow)
}

func TestCalculateDateFromBaseDate(t *testing.T) {
	h := newTestHarness(t)

	resp, err := h.svc.CalculateDate(context.Background(), protocol.CalculateDateRequest{
		Amount:   float64Ptr(1),
		Unit:     "months",
		BaseDate: "2024-01-31T00:00:00Z",
	})

	require.NoError(t, err)
	// Jan 31 + 1 month clamps to the leap-year Feb 29.
	assert.Equal(t, "2024-02-29T00:00:00.000Z", resp.Result.Timestamp.ISO)
	assert.Equal(t, "1 month after 2024-01-31T00:00:00.000Z", resp.Description)
}

func TestCalculateDateNegativeAmount(t *testing.T) {
	h := newTestHarness(t)

	resp, err := h.svc.CalculateDate(context.Background(), protocol.CalculateDateRequest{
		Amount:   float64Ptr(-2),
		Unit:     "weeks",
		BaseDate: "2025-01-15T00:00:00Z",
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T00:00:00.000Z", resp.Result.Timestamp.ISO)
	assert.Equal(t, "2 weeks before 2025-01-15T00:00:00.000Z", resp.Description)
	// 2025-01-01 is seven days before the pinned now.
	assert.Equal(t, "7 days ago", resp.FromNow)
}

func TestCalculateDateBaseZoneWallClock(t *testing.T) {
	h := newTestHarness(t)

	resp, err := h.svc.CalculateDate(context.Background(), protocol.CalculateDateRequest{
		Amount:       float64Ptr(1),
		Unit:         "days",
		BaseDate:     "2025-07-12 10:00:00",
		BaseTimezone: "Asia/Tokyo",
	})

	require.NoError(t, err)
	// 10:00 Tokyo wall clock is 01:00Z; one day later, still viewed in Tokyo.
	assert.Equal(t, "2025-07-13T01:00:00.000Z", resp.Result.Timestamp.ISO)
	assert.Equal(t, "2025-07-13T10:00:00.000+09:00", resp.Result.Local)
}

func TestCalculateDateTargetZoneReprojection(t *testing.T) {
	h := newTestHarness(t)

	resp, err := h.svc.CalculateDate(context.Background(), protocol.CalculateDateRequest{
		Amount:         float64Ptr(12),
		Unit:           "hours",
		BaseDate:       "2025-01-08T00:00:00Z",
		TargetTimezone: "America/New_York",
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-01-08T12:00:00.000Z", resp.Result.Timestamp.ISO)
	assert.Equal(t, "2025-01-08T07:00:00.000-05:00", resp.Result.Local)
	assert.Equal(t, "America/New_York", resp.Result.Timezone.Name)
}

func TestCalculateDateInvalidInputs(t *testing.T) {
	h := newTestHarness(t)

	tests := []struct {
		name    string
		req     protocol.CalculateDateRequest
		wantErr error
	}{
		{
			"missing amount",
			protocol.CalculateDateRequest{Unit: "days"},
			domain.ErrInvalidInput,
		},
		{
			"fractional amount",
			protocol.CalculateDateRequest{Amount: float64Ptr(1.5), Unit: "days"},
			domain.ErrInvalidAmount,
		},
		{
			// 2^63 is the nearest float64 to MaxInt64; converting it to
			// int64 would wrap to MinInt64, so it must be rejected.
			"amount at int64 boundary",
			protocol.CalculateDateRequest{Amount: float64Ptr(9223372036854775808), Unit: "seconds"},
			domain.ErrInvalidAmount,
		},
		{
			"amount below int64 range",
			protocol.CalculateDateRequest{Amount: float64Ptr(-18446744073709551616), Unit: "seconds"},
			domain.ErrInvalidAmount,
		},
		{
			"unknown unit",
			protocol.CalculateDateRequest{Amount: float64Ptr(1), Unit: "fortnights"},
			domain.ErrInvalidUnit,
		},
		{
			"unparsable base date",
			protocol.CalculateDateRequest{Amount: float64Ptr(1), Unit: "days", BaseDate: "not-a-date"},
			domain.ErrInvalidDateFormat,
		},
		{
			"unknown base zone",
			protocol.CalculateDateRequest{Amount: float64Ptr(1), Unit: "days", BaseTimezone: "Nope/Nowhere"},
			domain.ErrInvalidTimezone,
		},
		{
			"unknown target zone",
			protocol.CalculateDateRequest{Amount: float64Ptr(1), Unit: "days", TargetTimezone: "Nope/Nowhere"},
			domain.ErrInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.svc.CalculateDate(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
