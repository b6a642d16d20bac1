package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownStrategy is returned when a catalog entry names a pricing rule that does not exist.
var ErrUnknownStrategy = errors.New("unknown price strategy")

const (
	// KindSimple multiplies the base price by the quantity.
	KindSimple = "simple"
	// KindDiscount applies DiscountBps off the simple total.
	KindDiscount = "discount"
)

// DiscountBps is the fixed reduction of the discount strategy in basis points (10%).
const DiscountBps = 1000

// Strategy converts a base price and quantity into a line total.
type Strategy interface {
	Kind() string
	Calculate(basePrice decimal.Decimal, quantity int) decimal.Decimal
}

// Simple charges base price times quantity.
type Simple struct{}

// Kind implements Strategy.
func (Simple) Kind() string { return KindSimple }

// Calculate implements Strategy.
func (Simple) Calculate(basePrice decimal.Decimal, quantity int) decimal.Decimal {
	return basePrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Discount charges the simple total minus DiscountBps.
type Discount struct{}

// Kind implements Strategy.
func (Discount) Kind() string { return KindDiscount }

// Calculate implements Strategy.
func (Discount) Calculate(basePrice decimal.Decimal, quantity int) decimal.Decimal {
	gross := Simple{}.Calculate(basePrice, quantity)
	return gross.Mul(decimal.NewFromInt(10000 - DiscountBps)).Div(decimal.NewFromInt(10000))
}

// StrategyFor resolves a strategy kind as written in catalog seeds. Kinds match exactly.
func StrategyFor(kind string) (Strategy, error) {
	switch kind {
	case KindSimple:
		return Simple{}, nil
	case KindDiscount:
		return Discount{}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// Total sums already priced line amounts.
func Total(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}

// Format renders an amount the way prices are shown in the menu: at least one decimal place.
func Format(amount decimal.Decimal) string {
	s := amount.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
