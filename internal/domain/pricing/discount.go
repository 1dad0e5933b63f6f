package pricing

import (
	"fmt"

	"payment_processor/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DiscountTable maps discount codes to their effect. It is read-only once
// built; NewDiscountTable copies its input.
type DiscountTable struct {
	effects map[string]entities.DiscountEffect
}

// DefaultDiscountTable returns SUMMER20 (20% off) and WELCOME10 (10 off).
func DefaultDiscountTable() DiscountTable {
	t, _ := NewDiscountTable(map[string]entities.DiscountEffect{
		"SUMMER20":  {Kind: entities.DiscountPercentage, Value: decimal.RequireFromString("0.20")},
		"WELCOME10": {Kind: entities.DiscountFlat, Value: decimal.NewFromInt(10)},
	})
	return t
}

func NewDiscountTable(effects map[string]entities.DiscountEffect) (DiscountTable, error) {
	out := make(map[string]entities.DiscountEffect, len(effects))
	for code, e := range effects {
		if err := validateEffect(e); err != nil {
			return DiscountTable{}, fmt.Errorf("%w: %s", err, code)
		}
		out[code] = e
	}
	return DiscountTable{effects: out}, nil
}

func validateEffect(e entities.DiscountEffect) error {
	switch e.Kind {
	case entities.DiscountPercentage:
		if !e.Value.IsPositive() || !e.Value.LessThan(decimal.NewFromInt(1)) {
			return ErrInvalidDiscount
		}
	case entities.DiscountFlat:
		if !e.Value.IsPositive() {
			return ErrInvalidDiscount
		}
	default:
		return ErrInvalidDiscount
	}
	return nil
}

func (t DiscountTable) Lookup(code string) (entities.DiscountEffect, bool) {
	e, ok := t.effects[code]
	return e, ok
}

func (t DiscountTable) Len() int {
	return len(t.effects)
}

// DiscountEngine applies discount codes through a DiscountTable.
type DiscountEngine struct {
	table DiscountTable
}

func NewDiscountEngine(table DiscountTable) DiscountEngine {
	return DiscountEngine{table: table}
}

// Apply returns the discounted amount. Flat discounts are clamped at zero.
//
// An unknown code leaves the amount unchanged and returns ErrUnknownDiscountCode
// as an advisory; the returned amount is valid either way.
func (e DiscountEngine) Apply(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	if code == "" {
		return amount, nil
	}
	effect, ok := e.table.Lookup(code)
	if !ok {
		return amount, fmt.Errorf("%w: %s", ErrUnknownDiscountCode, code)
	}
	switch effect.Kind {
	case entities.DiscountPercentage:
		return amount.Mul(decimal.NewFromInt(1).Sub(effect.Value)), nil
	case entities.DiscountFlat:
		return decimal.Max(amount.Sub(effect.Value), decimal.Zero), nil
	}
	return amount, nil
}
