package ppo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount of budget in an optional currency.
//
// Costs and budgets are whole units of an arbitrary scale (for instance
// thousands). Without a currency the amount prints as a bare number.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// ErrUnknownCurrency is returned for a currency code that is not an ISO 4217 code.
var ErrUnknownCurrency = errors.New("unknown currency")

// CheckCurrency returns an error if code is neither empty nor a known currency code.
func CheckCurrency(code string) error {
	if code == "" {
		return nil
	}
	if money.GetCurrency(strings.ToUpper(code)) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return nil
}

// M returns value units of currency cur. An empty cur means no currency.
func M(value int, cur string) Money {
	return Money{value: decimal.NewFromInt(int64(value)), cur: strings.ToUpper(cur)}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted according to its currency.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.String()
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
