package domain

import "errors"

// Sentinel errors for domain error conditions.
// Use errors.Is() for matching - never compare error strings.
var (
	// Input taxonomy: every core operation fails with exactly one of these
	// four. The serving layer renders them as structured error responses;
	// none of them is fatal to the process.
	ErrInvalidDateFormat = errors.New("date literal does not match a recognized date-time grammar")
	ErrInvalidTimezone   = errors.New("unrecognized timezone identifier")
	ErrInvalidUnit       = errors.New("unit is not one of the supported time units")
	ErrInvalidAmount     = errors.New("amount must be a finite integer")

	// Request-shape errors (missing or malformed parameters, bad JSON)
	ErrInvalidInput = errors.New("invalid input")

	// Configuration errors
	ErrConfigRequired = errors.New("required configuration key missing")
)

// clientErrors enumerates all domain errors that represent client-side issues.
var clientErrors = []error{
	ErrInvalidDateFormat,
	ErrInvalidTimezone,
	ErrInvalidUnit,
	ErrInvalidAmount,
	ErrInvalidInput,
}

// IsClientError returns true if the error represents a client-side issue
// that will not succeed on retry without client-side changes.
func IsClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
