package app

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/aelexs/temporal-query-service/internal/domain"
	"github.com/aelexs/temporal-query-service/internal/observability"
	"github.com/aelexs/temporal-query-service/internal/temporal"
	"github.com/aelexs/temporal-query-service/pkg/protocol"
)

// CalculateDate answers calculate_date: a signed duration added to a base
// date (or to now when absent), reprojected into the target zone.
func (s *Service) CalculateDate(ctx context.Context, req protocol.CalculateDateRequest) (*protocol.CalculateDateResponse, error) {
	ctx, span := tracer.Start(ctx, "chrono.calculate_date")
	defer span.End()

	requestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "calculate_date")))

	amount, err := integerAmount(req.Amount)
	if err != nil {
		return nil, fail(ctx, span, "calculate_date", err)
	}
	unit, err := temporal.ParseUnit(req.Unit)
	if err != nil {
		return nil, fail(ctx, span, "calculate_date", err)
	}
	baseZone, err := s.resolveZone(req.BaseTimezone)
	if err != nil {
		return nil, fail(ctx, span, "calculate_date", err)
	}
	targetZone := baseZone
	if req.TargetTimezone != "" {
		if targetZone, err = s.zones.Resolve(req.TargetTimezone); err != nil {
			return nil, fail(ctx, span, "calculate_date", err)
		}
	}

	// The single clock read for this request.
	now := temporal.InstantOf(s.clock.Now())

	base := now
	if req.BaseDate != "" {
		if base, err = temporal.ParseTimestamp(req.BaseDate, baseZone); err != nil {
			return nil, fail(ctx, span, "calculate_date", err)
		}
	}

	result, err := temporal.Add(base, baseZone, amount, unit)
	if err != nil {
		return nil, fail(ctx, span, "calculate_date", err)
	}

	observability.WithTraceID(ctx, s.logger).DebugContext(ctx, "chrono.calculate_date",
		"amount", amount,
		"unit", string(unit),
		"base", base.ISO(),
		"result", result.ISO(),
	)

	return &protocol.CalculateDateResponse{
		Result:      timeInfo(result, targetZone),
		Base:        instantPayload(base),
		Amount:      amount,
		Unit:        string(unit),
		Description: describeShift(base, baseZone, amount, unit),
		FromNow:     temporal.Describe(temporal.Diff(now, result, targetZone)),
	}, nil
}

// integerAmount validates the wire amount: present, finite, and integral.
func integerAmount(raw *float64) (int64, error) {
	if raw == nil {
		return 0, fmt.Errorf("amount is required: %w", domain.ErrInvalidInput)
	}
	v := *raw
	// The upper bound is >=, not >: float64 cannot represent MaxInt64, the
	// nearest value is exactly 2^63, and converting that to int64 wraps.
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) ||
		v >= 1<<63 || v < -(1<<63) {
		return 0, fmt.Errorf("amount %v: %w", v, domain.ErrInvalidAmount)
	}
	return int64(v), nil
}

// describeShift renders "7 days after 2025-01-01T00:00:00.000Z" style text.
func describeShift(base temporal.Instant, zone temporal.Zone, amount int64, unit temporal.Unit) string {
	direction := "after"
	n := amount
	if n < 0 {
		direction = "before"
		n = -n
	}
	return fmt.Sprintf("%d %s %s %s", n, unit.Label(n), direction, base.ISOIn(zone))
}
