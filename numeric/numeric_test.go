package numeric

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "github.com/agbru/progresskit/errors"
)

func TestFor_Names(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  string
	}{
		{"int", For[int]().Name()},
		{"int8", For[int8]().Name()},
		{"uint16", For[uint16]().Name()},
		{"uint64", For[uint64]().Name()},
		{"float32", For[float32]().Name()},
		{"float64", For[float64]().Name()},
		{"big.Int", For[*big.Int]().Name()},
		{"decimal", For[decimal.Decimal]().Name()},
	}
	for _, tt := range tests {
		if tt.got != tt.name {
			t.Errorf("Name() = %q, want %q", tt.got, tt.name)
		}
	}
}

func TestFromDecimal_RoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want int64
	}{
		{"2.5", 3},
		{"2.4999", 2},
		{"-2.5", -3},
		{"-2.4", -2},
		{"0.5", 1},
	}
	ops := For[int64]()
	for _, tt := range tests {
		got, err := ops.FromDecimal(decimal.RequireFromString(tt.in))
		if err != nil {
			t.Fatalf("FromDecimal(%s) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("FromDecimal(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFromDecimal_OutOfRange(t *testing.T) {
	t.Parallel()
	if _, err := For[uint8]().FromDecimal(decimal.NewFromInt(256)); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("uint8 256: expected ErrInvalidValue, got %v", err)
	}
	if _, err := For[uint32]().FromDecimal(decimal.NewFromInt(-1)); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("uint32 -1: expected ErrInvalidValue, got %v", err)
	}
	if _, err := For[int8]().FromDecimal(decimal.RequireFromString("127.5")); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("int8 127.5: expected ErrInvalidValue, got %v", err)
	}
	top, err := For[uint64]().FromDecimal(decimal.RequireFromString("18446744073709551615"))
	if err != nil || top != math.MaxUint64 {
		t.Errorf("uint64 max: got %d, %v", top, err)
	}
	if _, err := For[float32]().FromDecimal(decimal.RequireFromString("1e60")); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("float32 1e60: expected ErrInvalidValue, got %v", err)
	}
}

func TestAdd_Overflow(t *testing.T) {
	t.Parallel()
	if _, err := For[uint8]().Add(200, 100); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("uint8 overflow: expected ErrInvalidValue, got %v", err)
	}
	if _, err := For[int64]().Add(math.MaxInt64, 1); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("int64 overflow: expected ErrInvalidValue, got %v", err)
	}
	if _, err := For[int64]().Add(math.MinInt64, -1); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("int64 underflow: expected ErrInvalidValue, got %v", err)
	}
	if _, err := For[uint64]().Add(math.MaxUint64, 1); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("uint64 overflow: expected ErrInvalidValue, got %v", err)
	}
	if _, err := For[float64]().Add(math.MaxFloat64, math.MaxFloat64); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("float64 overflow: expected ErrInvalidValue, got %v", err)
	}
	sum, err := For[int16]().Add(-7, 3)
	if err != nil || sum != -4 {
		t.Errorf("int16 -7+3 = %d, %v", sum, err)
	}
}

func TestBigInt_NullOperand(t *testing.T) {
	t.Parallel()
	ops := For[*big.Int]()
	if _, err := ops.ToDecimal(nil); !errors.Is(err, apperrors.ErrNullOperand) {
		t.Errorf("ToDecimal(nil): expected ErrNullOperand, got %v", err)
	}
	if _, err := ops.Add(big.NewInt(1), nil); !errors.Is(err, apperrors.ErrNullOperand) {
		t.Errorf("Add(1, nil): expected ErrNullOperand, got %v", err)
	}
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	sum, err := ops.Add(huge, big.NewInt(10))
	if err != nil || sum.String() != "123456789012345678901234567900" {
		t.Errorf("Add = %v, %v", sum, err)
	}
	if huge.String() != "123456789012345678901234567890" {
		t.Error("Add must not mutate its operands")
	}
}

func TestFloat_NotFinite(t *testing.T) {
	t.Parallel()
	if _, err := For[float64]().ToDecimal(math.NaN()); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("NaN: expected ErrInvalidValue, got %v", err)
	}
	if _, err := For[float32]().ToDecimal(float32(math.Inf(1))); !errors.Is(err, apperrors.ErrInvalidValue) {
		t.Errorf("+Inf: expected ErrInvalidValue, got %v", err)
	}
}

func TestDecimalOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   any
		want string
		err  error
	}{
		{"int", 42, "42", nil},
		{"uint64", uint64(math.MaxUint64), "18446744073709551615", nil},
		{"float64", 0.25, "0.25", nil},
		{"big", big.NewInt(-9), "-9", nil},
		{"decimal", decimal.RequireFromString("1.5"), "1.5", nil},
		{"nil big", (*big.Int)(nil), "", apperrors.ErrNullOperand},
		{"nil", nil, "", apperrors.ErrNullOperand},
		{"string", "12", "", apperrors.ErrUnsupportedNumericType},
		{"complex", complex(1, 2), "", apperrors.ErrUnsupportedNumericType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecimalOf(tt.in)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("DecimalOf(%v) error = %v, want %v", tt.in, err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecimalOf(%v) error: %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("DecimalOf(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	t.Parallel()
	if got := Ratio(decimal.NewFromInt(1), decimal.NewFromInt(3)); got.String() != "0.33333333333333333333" {
		t.Errorf("Ratio(1,3) = %s", got)
	}
	if got := Ratio(decimal.NewFromInt(2), decimal.NewFromInt(3)); got.String() != "0.66666666666666666667" {
		t.Errorf("Ratio(2,3) = %s", got)
	}
	if got := Ratio(decimal.Zero, decimal.Zero); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Ratio(0,0) = %s, want 1", got)
	}
}

func TestIntegerPercentage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cur, total int64
		want       int
	}{
		{1644, 1800, 91},
		{0, 10, 0},
		{10, 10, 100},
		{999, 1000, 99},
		{0, 0, 100},
	}
	for _, tt := range tests {
		got := IntegerPercentage(decimal.NewFromInt(tt.cur), decimal.NewFromInt(tt.total))
		if got != tt.want {
			t.Errorf("IntegerPercentage(%d, %d) = %d, want %d", tt.cur, tt.total, got, tt.want)
		}
	}
}
