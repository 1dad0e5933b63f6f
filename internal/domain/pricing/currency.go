package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const DefaultBaseCurrency = "USD"

// CurrencyTable maps currency codes to their multiplier relative to the base
// currency. The base currency always has multiplier 1.
type CurrencyTable struct {
	base  string
	rates map[string]decimal.Decimal
}

// DefaultCurrencyTable returns USD (base) and EUR at 1.2.
func DefaultCurrencyTable() CurrencyTable {
	t, _ := NewCurrencyTable(DefaultBaseCurrency, map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("1.2"),
	})
	return t
}

// NewCurrencyTable copies rates and pins the base currency to 1. A base entry
// in rates other than 1 is rejected, as are non-positive rates.
func NewCurrencyTable(base string, rates map[string]decimal.Decimal) (CurrencyTable, error) {
	if base == "" {
		return CurrencyTable{}, fmt.Errorf("%w: empty base currency", ErrInvalidRate)
	}
	one := decimal.NewFromInt(1)
	out := make(map[string]decimal.Decimal, len(rates)+1)
	for code, rate := range rates {
		if !rate.IsPositive() {
			return CurrencyTable{}, fmt.Errorf("%w: %s=%s", ErrInvalidRate, code, rate)
		}
		if code == base && !rate.Equal(one) {
			return CurrencyTable{}, fmt.Errorf("%w: base %s must be 1, got %s", ErrInvalidRate, code, rate)
		}
		out[code] = rate
	}
	out[base] = one
	return CurrencyTable{base: base, rates: out}, nil
}

func (t CurrencyTable) Base() string {
	return t.base
}

func (t CurrencyTable) Rate(code string) (decimal.Decimal, bool) {
	r, ok := t.rates[code]
	return r, ok
}

// CurrencyConverter applies a CurrencyTable.
type CurrencyConverter struct {
	table CurrencyTable
}

func NewCurrencyConverter(table CurrencyTable) CurrencyConverter {
	return CurrencyConverter{table: table}
}

// Convert multiplies amount by the currency's rate.
//
// Unknown currencies pass through at multiplier 1 and return
// ErrUnknownCurrency as an advisory; the returned amount is valid either way.
func (c CurrencyConverter) Convert(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if currency == c.table.base {
		return amount, nil
	}
	rate, ok := c.table.Rate(currency)
	if !ok {
		return amount, fmt.Errorf("%w: %s", ErrUnknownCurrency, currency)
	}
	return amount.Mul(rate), nil
}
