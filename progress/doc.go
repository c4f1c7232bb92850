// Package progress models the advancement of a long-running process as an
// observable pair of values: a current value and an optional maximum.
//
// # Model
//
// A Progress exposes pure reads (CurrentValue, MaxValue, IsFinished) and a
// subscription contract (AddListener, RemoveListener). A progress is finished
// exactly when its maximum is known and equal to its current value. Values
// are generic over numeric.Value, so the same code serves fixed-width
// integers, floats, *big.Int and decimal.Decimal.
//
// # Notification
//
// Notifications are delivered synchronously on the goroutine that performed
// the mutation, in registration order. Each dispatch round iterates the
// subscribers present when the round started: a listener removed during the
// round receives no further callback from it, and a listener added during
// the round is first called on the next one. Listeners may read the progress
// that notifies them but must not mutate it synchronously.
//
// # Aggregates
//
// Additive sums sources sharing one representation. Counting sums the
// completion ratios of heterogeneous sources against a fixed source count.
// Recursive tracks a growing registry of sources, each counting for one unit
// once terminated. Heterogeneous aggregates consume sources through the
// type-erased Source view returned by Erase or by the Source method every
// progress type provides.
//
// Aggregates and predictors subscribe to their sources; call Dispose (or
// Close) once they are no longer needed.
package progress
