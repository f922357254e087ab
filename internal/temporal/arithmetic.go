package temporal

import (
	"fmt"
	"time"

	"github.com/aelexs/temporal-query-service/internal/domain"
)

// Add returns the instant `amount` units away from i, evaluated in zone z.
//
// Fixed-length units (seconds..weeks) add an exact millisecond span, which
// makes them unambiguous and DST-transition-safe, and exactly invertible:
// adding n then -n returns the original instant.
//
// Months and years operate on the calendar fields of i's projection into z
// and re-derive the instant. When the source day-of-month exceeds the target
// month's length, the day clamps to the target month's last valid day
// (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year). Because of the
// clamp, calendar-unit addition is not guaranteed invertible.
func Add(i Instant, z Zone, amount int64, unit Unit) (Instant, error) {
	// Cap the magnitude so amount*unitLength stays within the millisecond
	// epoch range for every unit.
	if amount > domain.MaxDurationAmount || amount < -domain.MaxDurationAmount {
		return 0, fmt.Errorf("amount %d: %w", amount, domain.ErrInvalidAmount)
	}
	if ms, ok := unit.FixedMillis(); ok {
		return i + Instant(amount*ms), nil
	}
	switch unit {
	case UnitMonths:
		return InstantOf(addCalendarMonths(i.In(z), amount)), nil
	case UnitYears:
		return InstantOf(addCalendarMonths(i.In(z), amount*12)), nil
	default:
		return 0, fmt.Errorf("unit %q: %w", unit, domain.ErrInvalidUnit)
	}
}

// addCalendarMonths shifts t by whole calendar months, clamping the
// day-of-month to the target month's length. time.Date cannot be used with
// the raw day because it normalizes overflow (Feb 30 -> Mar 2) instead of
// clamping.
func addCalendarMonths(t time.Time, months int64) time.Time {
	total := int64(t.Year())*12 + int64(t.Month()-1) + months
	year := int(floorDiv(total, 12))
	month := time.Month(floorMod(total, 12) + 1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the nonnegative remainder of floorDiv.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
