// Package protocol defines the wire types for the temporal query API.
// These types are shared between the service and its clients; all date
// literals are ISO-8601 strings and all zone identifiers are IANA names.
package protocol

// CurrentTimeRequest asks for the current moment in a zone.
type CurrentTimeRequest struct {
	Timezone string `json:"timezone,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

// CalculateDateRequest asks for a signed duration added to a base date.
// Amount is a pointer so a missing field is distinguishable from zero; it
// must hold a finite integer value.
type CalculateDateRequest struct {
	Amount         *float64 `json:"amount"`
	Unit           string   `json:"unit"`
	BaseDate       string   `json:"base_date,omitempty"`
	BaseTimezone   string   `json:"base_timezone,omitempty"`
	TargetTimezone string   `json:"target_timezone,omitempty"`
	Locale         string   `json:"locale,omitempty"`
}

// TimeDifferenceRequest asks for the difference between now and a reference
// date, optionally narrowed to a single unit.
type TimeDifferenceRequest struct {
	ReferenceDate     string `json:"reference_date"`
	ReferenceTimezone string `json:"reference_timezone,omitempty"`
	Unit              string `json:"unit,omitempty"`
	TargetTimezone    string `json:"target_timezone,omitempty"`
	Locale            string `json:"locale,omitempty"`
}

// ConvertTimezoneRequest asks for a date reprojected into a target zone.
type ConvertTimezoneRequest struct {
	SourceDate     string `json:"source_date"`
	SourceTimezone string `json:"source_timezone,omitempty"`
	TargetTimezone string `json:"target_timezone"`
	Locale         string `json:"locale,omitempty"`
}

// Instant carries an absolute time in both human and machine forms.
type Instant struct {
	ISO          string `json:"iso"`
	EpochMillis  int64  `json:"epoch_millis"`
	EpochSeconds int64  `json:"epoch_seconds"`
}

// ZoneInfo describes a timezone as resolved at a specific instant.
type ZoneInfo struct {
	Name         string `json:"name"`
	Offset       string `json:"offset"`
	Abbreviation string `json:"abbreviation,omitempty"`
	IsDST        bool   `json:"is_dst"`
}

// Components are the calendar/clock fields of a moment in its zone.
// DayOfWeek uses the 0=Sunday..6=Saturday convention; WeekOfYear is the
// ISO-8601 week number.
type Components struct {
	Year        int `json:"year"`
	Month       int `json:"month"`
	Day         int `json:"day"`
	Hour        int `json:"hour"`
	Minute      int `json:"minute"`
	Second      int `json:"second"`
	Millisecond int `json:"millisecond"`
	DayOfWeek   int `json:"day_of_week"`
	DayOfYear   int `json:"day_of_year"`
	WeekOfYear  int `json:"week_of_year"`
}

// Context carries derived calendar facts about a moment.
type Context struct {
	IsWeekend   bool `json:"is_weekend"`
	Quarter     int  `json:"quarter"`
	DaysInMonth int  `json:"days_in_month"`
}

// TimeInfo is the full description of one instant in one zone.
type TimeInfo struct {
	Timestamp  Instant    `json:"timestamp"`
	Local      string     `json:"local"` // ISO-8601 in the zone, with offset
	Timezone   ZoneInfo   `json:"timezone"`
	Components Components `json:"components"`
	Context    Context    `json:"context"`
}

// CurrentTimeResponse answers get_current_time.
type CurrentTimeResponse struct {
	TimeInfo
}

// CalculateDateResponse answers calculate_date.
type CalculateDateResponse struct {
	Result      TimeInfo `json:"result"`
	Base        Instant  `json:"base"`
	Amount      int64    `json:"amount"`
	Unit        string   `json:"unit"`
	Description string   `json:"description"`
	FromNow     string   `json:"from_now"`
}

// Difference reports the elapsed magnitude at every granularity. Each value
// is an independent measure of the full span, not a cascading breakdown.
type Difference struct {
	Milliseconds int64 `json:"milliseconds"`
	Seconds      int64 `json:"seconds"`
	Minutes      int64 `json:"minutes"`
	Hours        int64 `json:"hours"`
	Days         int64 `json:"days"`
	Weeks        int64 `json:"weeks"`
	Months       int64 `json:"months"`
	Years        int64 `json:"years"`
}

// TimeDifferenceResponse answers get_time_difference. Unit and Value are set
// only when the request narrowed the result to one unit.
type TimeDifferenceResponse struct {
	Now        Instant    `json:"now"`
	Reference  Instant    `json:"reference"`
	Difference Difference `json:"difference"`
	IsPast     bool       `json:"is_past"`
	Relative   string     `json:"relative"`
	Unit       string     `json:"unit,omitempty"`
	Value      *int64     `json:"value,omitempty"`
}

// ConvertTimezoneResponse answers convert_timezone. Source and Target
// describe the same instant; only the calendar view differs.
type ConvertTimezoneResponse struct {
	Timestamp           Instant  `json:"timestamp"`
	Source              TimeInfo `json:"source"`
	Target              TimeInfo `json:"target"`
	OffsetDifferenceMin int      `json:"offset_difference_minutes"`
}

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
