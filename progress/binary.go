package progress

// Binary is a two-state progress: 0 until finished, then 1, with a max of 1.
type Binary struct {
	m *Manual[uint8]
}

// NewBinary returns an unfinished Binary.
func NewBinary() *Binary {
	m, _ := NewManual[uint8](0, 1)
	return &Binary{m: m}
}

// Finish moves the progress to 1. Listeners are notified even when it was
// already finished.
func (b *Binary) Finish() { _ = b.m.SetCurrent(1) }

// Restart moves the progress back to 0.
func (b *Binary) Restart() { _ = b.m.SetCurrent(0) }

// CurrentValue returns 0 or 1.
func (b *Binary) CurrentValue() uint8 { return b.m.CurrentValue() }

// MaxValue returns 1, always known.
func (b *Binary) MaxValue() (uint8, bool) { return b.m.MaxValue() }

// IsFinished reports whether the progress is at 1.
func (b *Binary) IsFinished() bool { return b.m.IsFinished() }

// AddListener subscribes l. Adding a registered listener is a no-op.
func (b *Binary) AddListener(l Listener[uint8]) { b.m.AddListener(l) }

// RemoveListener unsubscribes l.
func (b *Binary) RemoveListener(l Listener[uint8]) { b.m.RemoveListener(l) }

// Source returns the type-erased view of b.
func (b *Binary) Source() Source { return Erase[uint8](b) }

// String renders b as "current/1 (pct%)".
func (b *Binary) String() string { return b.m.String() }
