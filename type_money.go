package cryptax

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an exact monetary value in a given currency.
// The zero value is a currencyless 0, which acts as the identity for Add.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M is a convenient factory for Money.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a never-nil currency
	return *money.New(0, m.cur).Currency()
}

// String renders the value with its currency formatting (symbol, grouping).
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// StringFixed renders the bare value rounded to the given number of decimal places.
func (m Money) StringFixed(places int32) string { return m.value.StringFixed(places) }

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money         { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money         { return Money{value: m.value.Div(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}
