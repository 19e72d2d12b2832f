package ppo

import (
	"errors"
	"testing"
)

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(10, ""), "10"},
		{M(0, ""), "0"},
		{M(10, "USD"), "$10.00"},
		{M(10, "usd"), "$10.00"},
		{M(1234, "USD"), "$1,234.00"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.m, got, tc.want)
		}
	}
}

func TestCheckCurrency(t *testing.T) {
	for _, code := range []string{"", "EUR", "usd", "JPY"} {
		if err := CheckCurrency(code); err != nil {
			t.Errorf("CheckCurrency(%q) unexpected error: %v", code, err)
		}
	}
	for _, code := range []string{"XXXX", "euro"} {
		if err := CheckCurrency(code); !errors.Is(err, ErrUnknownCurrency) {
			t.Errorf("CheckCurrency(%q) error = %v, want ErrUnknownCurrency", code, err)
		}
	}
}
