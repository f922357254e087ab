package temporal

import "time"

// CalendarMoment is a read-only projection of (Instant, Zone) into calendar
// and clock fields. It is always derived, never stored, so it cannot drift
// out of sync with its source instant.
type CalendarMoment struct {
	Year        int
	Month       int // 1-12
	Day         int // 1-based
	Hour        int // 0-23
	Minute      int
	Second      int
	Millisecond int

	Weekday     int // 0=Sunday .. 6=Saturday
	WeekOfYear  int // ISO-8601 week number
	DayOfYear   int
	Quarter     int // 1-4
	DaysInMonth int
	IsWeekend   bool

	Zone         string // IANA identifier
	Offset       string // UTC offset in effect, e.g. "+09:00"
	Abbreviation string // zone abbreviation in effect, e.g. "JST"
	IsDST        bool
}

// MomentOf decomposes an instant into the given zone's calendar fields.
func MomentOf(i Instant, z Zone) CalendarMoment {
	t := i.In(z)
	_, week := t.ISOWeek()
	wd := weekdayNumber(t.Weekday())

	return CalendarMoment{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),

		Weekday:     wd,
		WeekOfYear:  week,
		DayOfYear:   t.YearDay(),
		Quarter:     (int(t.Month())-1)/3 + 1,
		DaysInMonth: daysInMonth(t.Year(), t.Month()),
		IsWeekend:   wd == 0 || wd == 6,

		Zone:         z.Name(),
		Offset:       z.OffsetStringAt(i),
		Abbreviation: z.AbbreviationAt(i),
		IsDST:        z.IsDSTAt(i),
	}
}

// weekdayNumber normalizes a weekday to the 0=Sunday..6=Saturday convention.
// time.Weekday already counts Sunday as 0; pinning the conversion here keeps
// the contract independent of the underlying library's convention.
func weekdayNumber(d time.Weekday) int {
	return int(d) % 7
}

// daysInMonth returns the number of days in the given month. Day 0 of the
// following month normalizes to this month's last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
