package app

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/aelexs/temporal-query-service/internal/observability"
	"github.com/aelexs/temporal-query-service/internal/temporal"
	"github.com/aelexs/temporal-query-service/pkg/protocol"
)

// CurrentTime answers get_current_time: the current instant decomposed into
// the requested zone's calendar, with derived context.
func (s *Service) CurrentTime(ctx context.Context, req protocol.CurrentTimeRequest) (*protocol.CurrentTimeResponse, error) {
	ctx, span := tracer.Start(ctx, "chrono.get_current_time")
	defer span.End()

	requestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "get_current_time")))

	zone, err := s.resolveZone(req.Timezone)
	if err != nil {
		return nil, fail(ctx, span, "get_current_time", err)
	}

	// The single clock read for this request; every derived field below
	// comes from this one instant.
	now := temporal.InstantOf(s.clock.Now())

	observability.WithTraceID(ctx, s.logger).DebugContext(ctx, "chrono.current_time",
		"timezone", zone.Name(),
		"epoch_millis", now.EpochMillis(),
	)

	return &protocol.CurrentTimeResponse{TimeInfo: timeInfo(now, zone)}, nil
}
