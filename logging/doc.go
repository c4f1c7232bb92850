// Package logging provides a unified logging interface for progresskit.
// It abstracts the underlying logging implementation so aggregates and the
// forecasting solver can report anomalies (skipped notifications, failed
// predictions) without binding callers to a backend.
package logging
