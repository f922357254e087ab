package temporal

import (
	"fmt"
	"time"

	// Embed the IANA database so zone resolution works in scratch-based
	// images without a system tzdata package. The system copy still wins
	// when present.
	_ "time/tzdata"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aelexs/temporal-query-service/internal/domain"
)

// Zone is a named timezone whose UTC offset may vary by date (DST). It is a
// view onto instants, not itself a point in time.
type Zone struct {
	name string
	loc  *time.Location
}

// UTC is the zero-offset zone used as the process-wide fallback.
var UTC = Zone{name: "UTC", loc: time.UTC}

// ZoneOf wraps an already-loaded location. Intended for tests and for
// call sites that construct fixed-offset zones.
func ZoneOf(name string, loc *time.Location) Zone {
	return Zone{name: name, loc: loc}
}

// Name returns the zone's IANA identifier.
func (z Zone) Name() string { return z.name }

// Location returns the underlying location. A zero Zone behaves as UTC.
func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

// OffsetAt returns the zone's UTC offset in effect at the given instant.
func (z Zone) OffsetAt(at Instant) time.Duration {
	_, sec := at.In(z).Zone()
	return time.Duration(sec) * time.Second
}

// OffsetStringAt renders the offset at the given instant as "+09:00" / "-05:30".
func (z Zone) OffsetStringAt(at Instant) string {
	sec := int(z.OffsetAt(at) / time.Second)
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("%s%02d:%02d", sign, sec/3600, (sec%3600)/60)
}

// AbbreviationAt returns the zone abbreviation in effect at the instant
// (e.g. "JST", "EDT"), or a numeric form where the database has none.
func (z Zone) AbbreviationAt(at Instant) string {
	abbrev, _ := at.In(z).Zone()
	return abbrev
}

// IsDSTAt reports whether daylight saving time is in effect at the instant.
func (z Zone) IsDSTAt(at Instant) bool {
	return at.In(z).IsDST()
}

// Resolver validates and resolves timezone identifiers. It is the injectable
// seam over the timezone database: production uses the IANA data via
// time.LoadLocation, tests may substitute deterministic fakes.
type Resolver interface {
	// Resolve returns the Zone for an IANA-style identifier, or an error
	// wrapping domain.ErrInvalidTimezone when the name is unrecognized.
	Resolve(name string) (Zone, error)
}

// cachedResolver resolves against the IANA database and keeps recently
// loaded locations in an LRU cache. Safe for concurrent use.
type cachedResolver struct {
	cache *lru.Cache[string, *time.Location]
}

// NewResolver creates the production zone resolver.
func NewResolver() Resolver {
	cache, _ := lru.New[string, *time.Location](domain.ZoneCacheSize)
	return &cachedResolver{cache: cache}
}

func (r *cachedResolver) Resolve(name string) (Zone, error) {
	if name == "" || len(name) > domain.MaxZoneNameLength {
		return Zone{}, fmt.Errorf("zone %q: %w", name, domain.ErrInvalidTimezone)
	}
	if loc, ok := r.cache.Get(name); ok {
		return Zone{name: name, loc: loc}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, fmt.Errorf("zone %q: %w", name, domain.ErrInvalidTimezone)
	}
	r.cache.Add(name, loc)
	return Zone{name: name, loc: loc}, nil
}
