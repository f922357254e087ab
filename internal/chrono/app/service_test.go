package app_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aelexs/temporal-query-service/internal/chrono/app"
	"github.com/aelexs/temporal-query-service/internal/domain/domaintest"
	"github.com/aelexs/temporal-query-service/internal/temporal"
)

// testHarness wires a Service to a fixed clock and the real zone resolver.
type testHarness struct {
	svc   *app.Service
	clock *domaintest.FakeClock
}

// newTestHarness pins "now" to 2025-01-08T00:00:00Z, the anchor used by
// most scenarios below.
func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	clock := domaintest.NewFakeClock(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &testHarness{
		svc:   app.NewService(clock, temporal.NewResolver(), "UTC", logger),
		clock: clock,
	}
}

func float64Ptr(v float64) *float64 { return &v }
