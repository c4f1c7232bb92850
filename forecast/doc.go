// Package forecast predicts the evolution of progress values over time.
//
// Linear fits a least-squares line over a sliding window of timestamped
// samples, fed either explicitly through Observe or by tracking a progress.
// Solver combines two predictors, one for the current value and one for the
// max, and searches with the secant method for the instant where the
// current value catches up with the max.
//
// Both ErrNoDataYet and ErrUnableToPredict are ordinary outcomes: callers
// should treat them as "no forecast available yet" (see
// apperrors.IsPredictionUnavailable).
package forecast
