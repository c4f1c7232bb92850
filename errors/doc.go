// Package apperrors defines the error kinds reported by progresskit, allowing
// callers to distinguish misuse (invalid values, bad registrations, unseeded
// arithmetic) from legitimate runtime conditions such as a predictor that has
// not seen enough data yet.
//
// Error Wrapping Guidelines:
// Every typed error unwraps to one of the package sentinels, so callers can
// branch with errors.Is and inspect details with errors.As.
package apperrors
