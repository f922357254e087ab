package temporal

import "fmt"

// Candidate units for the relative phrase, largest first. Weeks are
// deliberately absent: a 7-day span reads "7 days ago", not "1 week ago",
// and week granularity remains available in the full Difference.
var relativeOrder = []Unit{
	UnitYears,
	UnitMonths,
	UnitDays,
	UnitHours,
	UnitMinutes,
	UnitSeconds,
}

// Describe reduces a difference to a single human phrase: the largest
// candidate unit with a nonzero magnitude, rendered as "N units ago" or
// "N units from now". This is a deliberately lossy one-unit summary; callers
// needing the full per-unit breakdown use the Difference itself. A zero
// difference reads "now".
func Describe(d Difference) string {
	for _, u := range relativeOrder {
		n := d.ByUnit(u)
		if n == 0 {
			continue
		}
		if d.IsPast {
			return fmt.Sprintf("%d %s ago", n, u.Label(n))
		}
		return fmt.Sprintf("%d %s from now", n, u.Label(n))
	}
	return "now"
}
