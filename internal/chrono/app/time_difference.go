package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/aelexs/temporal-query-service/internal/domain"
	"github.com/aelexs/temporal-query-service/internal/observability"
	"github.com/aelexs/temporal-query-service/internal/temporal"
	"github.com/aelexs/temporal-query-service/pkg/protocol"
)

// TimeDifference answers get_time_difference: the per-unit difference
// between now and a reference date, optionally narrowed to one unit.
func (s *Service) TimeDifference(ctx context.Context, req protocol.TimeDifferenceRequest) (*protocol.TimeDifferenceResponse, error) {
	ctx, span := tracer.Start(ctx, "chrono.get_time_difference")
	defer span.End()

	requestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "get_time_difference")))

	if req.ReferenceDate == "" {
		return nil, fail(ctx, span, "get_time_difference",
			fmt.Errorf("reference_date is required: %w", domain.ErrInvalidInput))
	}

	refZone, err := s.resolveZone(req.ReferenceTimezone)
	if err != nil {
		return nil, fail(ctx, span, "get_time_difference", err)
	}
	// Calendar-unit counting happens in the target zone when one is given,
	// otherwise in the reference zone.
	calcZone := refZone
	if req.TargetTimezone != "" {
		if calcZone, err = s.zones.Resolve(req.TargetTimezone); err != nil {
			return nil, fail(ctx, span, "get_time_difference", err)
		}
	}

	var narrowTo temporal.Unit
	if req.Unit != "" {
		if narrowTo, err = temporal.ParseUnit(req.Unit); err != nil {
			return nil, fail(ctx, span, "get_time_difference", err)
		}
	}

	reference, err := temporal.ParseTimestamp(req.ReferenceDate, refZone)
	if err != nil {
		return nil, fail(ctx, span, "get_time_difference", err)
	}

	// The single clock read for this request.
	now := temporal.InstantOf(s.clock.Now())

	d := temporal.Diff(now, reference, calcZone)

	resp := &protocol.TimeDifferenceResponse{
		Now:        instantPayload(now),
		Reference:  instantPayload(reference),
		Difference: differencePayload(d),
		IsPast:     d.IsPast,
		Relative:   temporal.Describe(d),
	}
	if narrowTo != "" {
		value := d.ByUnit(narrowTo)
		resp.Unit = string(narrowTo)
		resp.Value = &value
	}

	observability.WithTraceID(ctx, s.logger).DebugContext(ctx, "chrono.time_difference",
		"reference", reference.ISO(),
		"days", d.Days,
		"is_past", d.IsPast,
	)

	return resp, nil
}
