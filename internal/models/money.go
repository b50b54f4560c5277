package models

import (
	"fmt"
	"strings"

	"fjacquet/swift-mx/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// PlaceholderCurrency is used when a mandatory amount has no readable
// currency.
const PlaceholderCurrency = "XXX"

// Money represents a monetary value with currency
type Money struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency string          `json:"currency" yaml:"currency"`
}

// NewMoney creates a new Money instance with the given amount and currency
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: strings.ToUpper(strings.TrimSpace(currency)),
	}
}

// NewMoneyFromString creates a new Money instance from an amount in MT or MX
// notation.
func NewMoneyFromString(amount, currency string) (Money, error) {
	dec, err := currencyutils.ParseAmount(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return NewMoney(dec, currency), nil
}

// ParseCurrencyAmount reads the "<CCY><amount>" composite used by MT fields
// 32B and 33B, e.g. "EUR1500,00". Unreadable amounts become zero.
func ParseCurrencyAmount(s string) Money {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return ZeroMoney(PlaceholderCurrency)
	}
	dec, err := currencyutils.ParseAmount(currencyutils.ExtractDigits(s[3:]))
	if err != nil {
		dec = decimal.Zero
	}
	return NewMoney(dec, s[:3])
}

// ZeroMoney returns a Money instance with zero amount in the given currency
func ZeroMoney(currency string) Money {
	return NewMoney(decimal.Zero, currency)
}

// MX returns the amount in ISO 20022 notation ("1000.50").
func (m Money) MX() string {
	return currencyutils.FormatMX(m.Amount)
}

// MT returns the amount in MT notation ("1000,50").
func (m Money) MT() string {
	return currencyutils.FormatMT(m.Amount)
}
