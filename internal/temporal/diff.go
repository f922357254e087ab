package temporal

// Difference holds the elapsed magnitude between two instants at every
// supported granularity. Each magnitude is computed independently over the
// full elapsed span (Days=7 implies Hours=168), not as a cascading
// breakdown. Magnitudes are always nonnegative; direction lives solely in
// IsPast.
type Difference struct {
	Milliseconds int64
	Seconds      int64
	Minutes      int64
	Hours        int64
	Days         int64
	Weeks        int64
	Months       int64
	Years        int64

	// IsPast reports whether b occurred before a, i.e. b lies in a's past.
	IsPast bool
}

// Diff computes the difference between two instants, evaluated in zone z for
// the calendar-relative units.
//
// Milliseconds through weeks are independent floor divisions of the elapsed
// millisecond span by the unit's fixed length. Months and years are counted
// by calendar-field subtraction - the number of whole calendar months (or
// years) one can step from the earlier moment without passing the later -
// never by a fixed 30-day or 365-day divisor, which drifts systematically
// for spans beyond a few months.
func Diff(a, b Instant, z Zone) Difference {
	elapsed := int64(a) - int64(b)
	isPast := elapsed > 0
	if elapsed < 0 {
		elapsed = -elapsed
	}

	earlier, later := a, b
	if earlier.After(later) {
		earlier, later = later, earlier
	}
	months := wholeCalendarMonths(earlier, later, z)

	return Difference{
		Milliseconds: elapsed,
		Seconds:      elapsed / millisPerSecond,
		Minutes:      elapsed / millisPerMinute,
		Hours:        elapsed / millisPerHour,
		Days:         elapsed / millisPerDay,
		Weeks:        elapsed / millisPerWeek,
		Months:       months,
		Years:        months / 12,
		IsPast:       isPast,
	}
}

// ByUnit returns the magnitude at one granularity. Milliseconds are not an
// addressable Unit; they are always available via the struct field.
func (d Difference) ByUnit(u Unit) int64 {
	switch u {
	case UnitSeconds:
		return d.Seconds
	case UnitMinutes:
		return d.Minutes
	case UnitHours:
		return d.Hours
	case UnitDays:
		return d.Days
	case UnitWeeks:
		return d.Weeks
	case UnitMonths:
		return d.Months
	case UnitYears:
		return d.Years
	default:
		return 0
	}
}

// wholeCalendarMonths counts the whole calendar months between two ordered
// instants as seen in zone z. The field-difference estimate is corrected
// downward when the candidate landing moment (clamped like Add) overshoots
// the later instant.
func wholeCalendarMonths(earlier, later Instant, z Zone) int64 {
	from := earlier.In(z)
	to := later.In(z)

	months := int64(to.Year()-from.Year())*12 + int64(to.Month()-from.Month())
	if months <= 0 {
		return 0
	}
	if addCalendarMonths(from, months).After(to) {
		months--
	}
	return months
}
