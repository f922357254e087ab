package app

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/aelexs/temporal-query-service/internal/domain"
	"github.com/aelexs/temporal-query-service/internal/observability"
	"github.com/aelexs/temporal-query-service/internal/temporal"
	"github.com/aelexs/temporal-query-service/pkg/protocol"
)

// ConvertTimezone answers convert_timezone: the same instant viewed through
// a different zone's calendar. The instant's absolute value never changes.
func (s *Service) ConvertTimezone(ctx context.Context, req protocol.ConvertTimezoneRequest) (*protocol.ConvertTimezoneResponse, error) {
	ctx, span := tracer.Start(ctx, "chrono.convert_timezone")
	defer span.End()

	requestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "convert_timezone")))

	if req.SourceDate == "" {
		return nil, fail(ctx, span, "convert_timezone",
			fmt.Errorf("source_date is required: %w", domain.ErrInvalidInput))
	}
	if req.TargetTimezone == "" {
		return nil, fail(ctx, span, "convert_timezone",
			fmt.Errorf("target_timezone is required: %w", domain.ErrInvalidInput))
	}

	sourceZone, err := s.resolveZone(req.SourceTimezone)
	if err != nil {
		return nil, fail(ctx, span, "convert_timezone", err)
	}
	targetZone, err := s.zones.Resolve(req.TargetTimezone)
	if err != nil {
		return nil, fail(ctx, span, "convert_timezone", err)
	}

	instant, err := temporal.ParseTimestamp(req.SourceDate, sourceZone)
	if err != nil {
		return nil, fail(ctx, span, "convert_timezone", err)
	}

	offsetDiff := targetZone.OffsetAt(instant) - sourceZone.OffsetAt(instant)

	observability.WithTraceID(ctx, s.logger).DebugContext(ctx, "chrono.convert_timezone",
		"source_zone", sourceZone.Name(),
		"target_zone", targetZone.Name(),
		"timestamp", instant.ISO(),
	)

	return &protocol.ConvertTimezoneResponse{
		Timestamp:           instantPayload(instant),
		Source:              timeInfo(instant, sourceZone),
		Target:              timeInfo(instant, targetZone),
		OffsetDifferenceMin: int(offsetDiff / time.Minute),
	}, nil
}
