package temporal

// Convert reprojects an instant into a target zone. The absolute instant is
// unchanged; only its decomposed calendar view changes. Zone validation
// happens at resolution time, so Convert itself cannot fail.
func Convert(i Instant, target Zone) CalendarMoment {
	return MomentOf(i, target)
}
