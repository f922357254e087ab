// Package temporal implements the timezone- and calendar-aware computation
// core: parsing ISO-8601 literals into absolute instants, calendar arithmetic
// with signed durations, multi-granularity difference computation, calendar
// component derivation, and relative-time phrasing. Everything in this
// package is a pure function over its inputs; the clock and the timezone
// database are injected by callers.
package temporal

import "time"

// Instant is an absolute point in time: a signed count of milliseconds since
// the Unix epoch. It is zone-independent, immutable, and totally ordered.
type Instant int64

// InstantOf converts a time.Time to an Instant, truncating to millisecond
// precision. Sub-millisecond components are discarded.
func InstantOf(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// Time returns the instant as a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i)).UTC()
}

// In returns the instant as a time.Time projected into the given zone.
// The absolute value is unchanged; only the calendar view differs.
func (i Instant) In(z Zone) time.Time {
	return time.UnixMilli(int64(i)).In(z.Location())
}

// EpochMillis returns the instant as milliseconds since the Unix epoch.
func (i Instant) EpochMillis() int64 {
	return int64(i)
}

// EpochSeconds returns the instant as whole seconds since the Unix epoch,
// truncated toward negative infinity.
func (i Instant) EpochSeconds() int64 {
	ms := int64(i)
	if ms < 0 && ms%1000 != 0 {
		return ms/1000 - 1
	}
	return ms / 1000
}

// isoMillis renders millisecond precision with a numeric offset or Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// ISO returns the instant as an ISO-8601 string in UTC with millisecond
// precision. Parsing the result yields the identical instant.
func (i Instant) ISO() string {
	return i.Time().Format(isoMillis)
}

// ISOIn returns the instant as an ISO-8601 string in the given zone with the
// zone's numeric UTC offset.
func (i Instant) ISOIn(z Zone) string {
	return i.In(z).Format(isoMillis)
}

// Before reports whether i occurs before o.
func (i Instant) Before(o Instant) bool { return i < o }

// After reports whether i occurs after o.
func (i Instant) After(o Instant) bool { return i > o }
