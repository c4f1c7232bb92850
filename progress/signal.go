package progress

import "github.com/shopspring/decimal"

//go:generate mockgen -source=signal.go -destination=mocks/mock_signal.go -package=mocks

// Signal is a value-free change notification, used by consumers that read
// the new state through a Source rather than from the callback arguments.
type Signal interface {
	CurrentChanged()
	MaxChanged()
}

// Source is a type-erased, decimal view of a Progress. It lets aggregates
// and collaborators combine progresses of different numeric
// representations.
//
// Two Sources built from the same progress compare equal.
type Source interface {
	CurrentDecimal() decimal.Decimal
	// MaxDecimal returns the max and whether it is known.
	MaxDecimal() (decimal.Decimal, bool)
	IsFinished() bool
	AddSignal(s Signal)
	RemoveSignal(s Signal)
}
