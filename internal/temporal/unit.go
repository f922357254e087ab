package temporal

import (
	"fmt"
	"strings"

	"github.com/aelexs/temporal-query-service/internal/domain"
)

// Unit is one of the seven supported duration units. Seconds through weeks
// denote exact millisecond spans; months and years are calendar-relative and
// have no fixed length.
type Unit string

const (
	UnitSeconds Unit = "seconds"
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
	UnitDays    Unit = "days"
	UnitWeeks   Unit = "weeks"
	UnitMonths  Unit = "months"
	UnitYears   Unit = "years"
)

// Fixed millisecond lengths for the non-calendar units.
const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
	millisPerWeek   = 7 * millisPerDay
)

var fixedUnitMillis = map[Unit]int64{
	UnitSeconds: millisPerSecond,
	UnitMinutes: millisPerMinute,
	UnitHours:   millisPerHour,
	UnitDays:    millisPerDay,
	UnitWeeks:   millisPerWeek,
}

var unitSingular = map[Unit]string{
	UnitSeconds: "second",
	UnitMinutes: "minute",
	UnitHours:   "hour",
	UnitDays:    "day",
	UnitWeeks:   "week",
	UnitMonths:  "month",
	UnitYears:   "year",
}

// ParseUnit validates a unit identifier. Matching is case-insensitive;
// anything outside the seven enumerated values fails with ErrInvalidUnit.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := unitSingular[u]; !ok {
		return "", fmt.Errorf("unit %q: %w", s, domain.ErrInvalidUnit)
	}
	return u, nil
}

// FixedMillis returns the unit's exact millisecond length. ok is false for
// the calendar-relative units (months, years).
func (u Unit) FixedMillis() (ms int64, ok bool) {
	ms, ok = fixedUnitMillis[u]
	return ms, ok
}

// IsCalendar reports whether the unit is calendar-relative (months or years).
func (u Unit) IsCalendar() bool {
	return u == UnitMonths || u == UnitYears
}

// Label returns the singular or plural English word for n of this unit.
func (u Unit) Label(n int64) string {
	if n == 1 || n == -1 {
		return unitSingular[u]
	}
	return string(u)
}
