package progress

import "github.com/agbru/progresskit/numeric"

// Listener receives the change notifications of a Progress.
//
// Listeners are identified by interface equality, so implementations must
// be comparable. Pointer receivers are the usual choice.
type Listener[T numeric.Value] interface {
	// OnCurrentChanged is called with the new current value.
	OnCurrentChanged(value T)
	// OnMaxChanged is called with the new max value. known is false when
	// the max has been cleared, in which case value is the zero value.
	OnMaxChanged(value T, known bool)
}

// Progress is the read and subscribe contract shared by every progress
// type. It is what display and logging collaborators consume.
type Progress[T numeric.Value] interface {
	CurrentValue() T
	// MaxValue returns the max and whether it is known.
	MaxValue() (T, bool)
	IsFinished() bool
	// AddListener subscribes l. Adding a subscribed listener is a no-op.
	AddListener(l Listener[T])
	// RemoveListener unsubscribes l. Removing an unknown listener is a no-op.
	RemoveListener(l Listener[T])
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are ignored.
// Register it by pointer so that it can be removed again.
type ListenerFuncs[T numeric.Value] struct {
	Current func(value T)
	Max     func(value T, known bool)
}

// OnCurrentChanged calls f.Current.
func (f *ListenerFuncs[T]) OnCurrentChanged(value T) {
	if f.Current != nil {
		f.Current(value)
	}
}

// OnMaxChanged calls f.Max.
func (f *ListenerFuncs[T]) OnMaxChanged(value T, known bool) {
	if f.Max != nil {
		f.Max(value, known)
	}
}
