// Package patch resolves optional inputs against defaults.
package patch

// Coalesce returns *ptr, or fallback when the field was omitted.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// OrZero returns v unless it is the zero value, in which case fallback.
// Used for remote payloads where omitted and zero mean the same.
func OrZero[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
