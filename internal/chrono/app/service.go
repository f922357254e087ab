// Package app implements the four temporal query operations over the
// computation engine. Each operation is a pure function of the request, one
// clock reading, and the timezone database; no state survives a request.
package app

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/aelexs/temporal-query-service/internal/domain"
	"github.com/aelexs/temporal-query-service/internal/temporal"
	"github.com/aelexs/temporal-query-service/pkg/protocol"
)

var tracer = otel.Tracer("chrono/app")

var (
	requestsTotal        metric.Int64Counter
	requestFailuresTotal metric.Int64Counter
)

func init() {
	m := otel.Meter("chrono/app")

	requestsTotal, _ = m.Int64Counter("time_requests_total",
		metric.WithDescription("Total temporal query requests by operation"))
	requestFailuresTotal, _ = m.Int64Counter("time_request_failures_total",
		metric.WithDescription("Total failed temporal query requests by operation and reason"))
}

// Service answers temporal queries. It holds only injected capabilities
// (clock, zone resolver) and per-process defaults, so a single instance may
// serve any number of concurrent requests without coordination.
type Service struct {
	clock       domain.Clock
	zones       temporal.Resolver
	defaultZone string
	logger      *slog.Logger
}

// NewService creates the temporal query service. defaultZone is used when a
// request omits its timezone parameters; empty falls back to UTC.
func NewService(clock domain.Clock, zones temporal.Resolver, defaultZone string, logger *slog.Logger) *Service {
	if defaultZone == "" {
		defaultZone = domain.DefaultTimezone
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		clock:       clock,
		zones:       zones,
		defaultZone: defaultZone,
		logger:      logger,
	}
}

// resolveZone resolves the given identifier, or the service default when the
// request omitted it.
func (s *Service) resolveZone(name string) (temporal.Zone, error) {
	if name == "" {
		name = s.defaultZone
	}
	return s.zones.Resolve(name)
}

// fail records the failure on the span and the failure counter and passes
// the error through unchanged for the transport layer to map.
func fail(ctx context.Context, span trace.Span, operation string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	requestFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("reason", failureReason(err)),
	))
	return err
}

// failureReason classifies an error for the failure counter's reason label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return "invalid_date_format"
	case errors.Is(err, domain.ErrInvalidTimezone):
		return "invalid_timezone"
	case errors.Is(err, domain.ErrInvalidUnit):
		return "invalid_unit"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}

// timeInfo assembles the full wire description of one instant in one zone.
func timeInfo(i temporal.Instant, z temporal.Zone) protocol.TimeInfo {
	m := temporal.Convert(i, z)
	return protocol.TimeInfo{
		Timestamp: instantPayload(i),
		Local:     i.ISOIn(z),
		Timezone: protocol.ZoneInfo{
			Name:         m.Zone,
			Offset:       m.Offset,
			Abbreviation: m.Abbreviation,
			IsDST:        m.IsDST,
		},
		Components: protocol.Components{
			Year:        m.Year,
			Month:       m.Month,
			Day:         m.Day,
			Hour:        m.Hour,
			Minute:      m.Minute,
			Second:      m.Second,
			Millisecond: m.Millisecond,
			DayOfWeek:   m.Weekday,
			DayOfYear:   m.DayOfYear,
			WeekOfYear:  m.WeekOfYear,
		},
		Context: protocol.Context{
			IsWeekend:   m.IsWeekend,
			Quarter:     m.Quarter,
			DaysInMonth: m.DaysInMonth,
		},
	}
}

func instantPayload(i temporal.Instant) protocol.Instant {
	return protocol.Instant{
		ISO:          i.ISO(),
		EpochMillis:  i.EpochMillis(),
		EpochSeconds: i.EpochSeconds(),
	}
}

func differencePayload(d temporal.Difference) protocol.Difference {
	return protocol.Difference{
		Milliseconds: d.Milliseconds,
		Seconds:      d.Seconds,
		Minutes:      d.Minutes,
		Hours:        d.Hours,
		Days:         d.Days,
		Weeks:        d.Weeks,
		Months:       d.Months,
		Years:        d.Years,
	}
}
