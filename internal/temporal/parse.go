package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/aelexs/temporal-query-service/internal/domain"
)

// Layouts carrying explicit offset information ("Z" or ±hh:mm). A literal
// matching one of these is an absolute instant; the fallback zone is ignored.
var offsetLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
}

// Layouts without offset information. The clock reading is interpreted as
// local wall-clock time within the fallback zone: the parser resolves which
// UTC instant corresponds to that reading in that zone, rather than parsing
// as UTC and shifting afterward.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp turns an ISO-8601 date/time literal into an Instant.
// Literals with an explicit UTC offset or Z suffix parse as absolute
// instants; offset-less literals are resolved as wall-clock readings in the
// fallback zone. Fails with domain.ErrInvalidDateFormat when the literal
// matches no recognized grammar.
func ParseTimestamp(literal string, fallback Zone) (Instant, error) {
	s := strings.TrimSpace(literal)
	if s == "" || len(s) > domain.MaxDateLiteralLength {
		return 0, fmt.Errorf("date literal %q: %w", literal, domain.ErrInvalidDateFormat)
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return InstantOf(t), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, fallback.Location()); err == nil {
			return InstantOf(t), nil
		}
	}
	return 0, fmt.Errorf("date literal %q: %w", literal, domain.ErrInvalidDateFormat)
}
