package domain

import "time"

// Compiled defaults and normative limits for the service.
// These can be overridden via configuration where a config key exists.
const (
	// Request defaults applied when a call omits the parameter
	DefaultTimezone = "UTC"
	DefaultLocale   = "en"

	// Request limits
	MaxDateLiteralLength = 64  // longest accepted ISO-8601 literal
	MaxZoneNameLength    = 64  // longest accepted IANA zone identifier
	MaxRequestBodySize   = 4 * 1024

	// MaxDurationAmount caps |amount| in date arithmetic. The millisecond
	// epoch representation spans roughly ±292 million years, so 100 million
	// of even the largest unit stays in range; anything larger risks a
	// silent overflow when multiplied out.
	MaxDurationAmount = int64(100_000_000)

	// Zone resolver cache
	ZoneCacheSize = 128 // distinct loaded locations kept resident

	// HTTP server timeout contracts
	HTTPReadTimeout  = 10 * time.Second
	HTTPWriteTimeout = 10 * time.Second
	HTTPIdleTimeout  = 60 * time.Second

	// Graceful shutdown
	ShutdownDrainDelay      = 1 * time.Second  // let load balancer propagate endpoint removal
	ShutdownHTTPTimeout     = 10 * time.Second // max time to drain in-flight requests
	ShutdownOTELTimeout     = 5 * time.Second  // max time to flush telemetry
	GracefulShutdownTimeout = 30 * time.Second // end-to-end shutdown budget
)
