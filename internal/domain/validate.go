package domain

import (
	"strconv"
	"strings"
)

// MinPasswordLength mirrors the server's password policy so obviously
// short passwords are rejected without a round trip.
const MinPasswordLength = 6

// ValidateEmail rejects addresses that cannot possibly be valid.
func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" || !strings.Contains(trimmed, "@") {
		return NewValidationError("a valid email address is required")
	}
	return nil
}

// ValidatePassword checks a new password against its confirmation.
// Failures block the network call entirely.
func ValidatePassword(password, confirm string) error {
	if password == "" {
		return NewValidationError("a new password is required")
	}
	if len(password) < MinPasswordLength {
		return NewValidationError("password must be at least 6 characters")
	}
	if password != confirm {
		return NewValidationError("passwords do not match")
	}
	return nil
}

// ParseAmount coerces a calorie/macro input leniently: blank or
// unparsable values become 0 rather than a rejection.
func ParseAmount(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseOptionalFloat coerces an optional anthropometric input: blank
// or unparsable values become absent, not zero.
func ParseOptionalFloat(raw string) *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &value
}

// ParseOptionalInt is ParseOptionalFloat for whole-number fields.
func ParseOptionalInt(raw string) *int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &value
}

// OptionalString trims an input and maps the empty result to absent.
func OptionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
