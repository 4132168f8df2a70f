package domain

import "time"

// ValidatePage checks paging arguments of a list call.
func ValidatePage(op string, firstResult, maxResults int) error {
	if firstResult < 0 {
		return UsageError(op, "firstResult must not be negative, got %d", firstResult)
	}
	if maxResults < 0 {
		return UsageError(op, "maxResults must not be negative, got %d", maxResults)
	}
	return nil
}

// RequireString fails with an "argument required" usage error for "".
func RequireString(op, name, value string) error {
	if value == "" {
		return UsageError(op, "%s is required", name)
	}
	return nil
}

// RequireTime fails with an "argument required" usage error for the zero time.
func RequireTime(op, name string, value time.Time) error {
	if value.IsZero() {
		return UsageError(op, "%s is required", name)
	}
	return nil
}

// RequireStrings fails when values is empty or holds an empty string.
func RequireStrings(op, name string, values []string) error {
	if len(values) == 0 {
		return UsageError(op, "%s is required", name)
	}
	for _, v := range values {
		if v == "" {
			return UsageError(op, "%s must not contain empty values", name)
		}
	}
	return nil
}
