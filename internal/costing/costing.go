// Package costing derives ingredient, recipe, and order prices. Every function
// is pure and safe for concurrent use.
package costing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
)

// DivisionPrecision is the number of decimal places kept when dividing.
const DivisionPrecision int32 = 16

// CurrencyPlaces is the presentation scale for monetary amounts and the
// stored scale of ingredient prices and labor costs.
const CurrencyPlaces int32 = 2

// Stored scales of the remaining numeric columns.
const (
	StoredCostPlaces int32 = 4 // recipe line prices, recipe totals, order lines
	QuantityPlaces   int32 = 3
	MarginPlaces     int32 = 4
)

// DefaultProfitMargin is applied when an order does not set one (40%).
var DefaultProfitMargin = decimal.RequireFromString("0.4")

// ErrInvalidInput marks arithmetic inputs that cannot produce a price.
var ErrInvalidInput = errors.New("invalid costing input")

// OrderLine is a quantity of an ingredient or recipe at a snapshot unit price.
type OrderLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Total returns UnitPrice * Quantity.
func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PerUnitPrice divides a bulk price by the bulk quantity it buys.
func PerUnitPrice(bulkPrice, bulkQuantity decimal.Decimal) (decimal.Decimal, error) {
	if !bulkQuantity.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: bulk quantity must be greater than zero", ErrInvalidInput)
	}
	return bulkPrice.DivRound(bulkQuantity, DivisionPrecision), nil
}

// LineCost is the cost of using quantityUsed of an ingredient. Units are not
// converted; callers pass quantities in the ingredient's own unit.
func LineCost(perUnitPrice, quantityUsed decimal.Decimal) decimal.Decimal {
	return perUnitPrice.Mul(quantityUsed)
}

// RecipeTotalCost sums the line costs of a recipe.
func RecipeTotalCost(lineCosts []decimal.Decimal) (decimal.Decimal, error) {
	if len(lineCosts) == 0 {
		return decimal.Zero, fmt.Errorf("%w: recipe must have at least one ingredient", ErrInvalidInput)
	}
	return decimal.Sum(lineCosts[0], lineCosts[1:]...), nil
}

// OrderSubtotal sums UnitPrice * Quantity over lines. An empty order is zero.
func OrderSubtotal(lines []OrderLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

// OrderGrandTotal returns subtotal + labor + subtotal * margin. A nil labor
// cost counts as zero and a nil margin as DefaultProfitMargin.
func OrderGrandTotal(subtotal decimal.Decimal, laborCost, profitMargin *decimal.Decimal) decimal.Decimal {
	return subtotal.Add(laborOrZero(laborCost)).Add(Markup(subtotal, profitMargin))
}

// Markup is the profit portion of an order total.
func Markup(subtotal decimal.Decimal, profitMargin *decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(MarginOrDefault(profitMargin))
}

// MarginOrDefault resolves an optional profit margin.
func MarginOrDefault(profitMargin *decimal.Decimal) decimal.Decimal {
	if profitMargin == nil {
		return DefaultProfitMargin
	}
	return *profitMargin
}

func laborOrZero(laborCost *decimal.Decimal) decimal.Decimal {
	if laborCost == nil {
		return decimal.Zero
	}
	return *laborCost
}

// RoundCurrency rounds to cents, half away from zero.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(CurrencyPlaces)
}

// RoundStoredCost rounds a line price or total to StoredCostPlaces, half away
// from zero, the way the database rounds on insert.
func RoundStoredCost(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(StoredCostPlaces)
}

// FitsScale reports whether amount survives rounding to places unchanged.
func FitsScale(amount decimal.Decimal, places int32) bool {
	return amount.Equal(amount.Round(places))
}

// UnitsMatch reports whether a recipe quantity is expressed in the same unit
// the ingredient was bought in.
func UnitsMatch(ingredientUnit, usageUnit enums.MeasurementUnit) bool {
	return ingredientUnit == usageUnit
}
