package costing

import "github.com/shopspring/decimal"

// OrderQuote is the full price breakdown of an order.
type OrderQuote struct {
	LineTotals   []decimal.Decimal
	Subtotal     decimal.Decimal
	LaborCost    decimal.Decimal
	ProfitMargin decimal.Decimal
	Markup       decimal.Decimal
	GrandTotal   decimal.Decimal
	// TotalPrice is GrandTotal rounded for display and storage.
	TotalPrice decimal.Decimal
}

// QuoteOrder prices lines with the given labor cost and margin.
func QuoteOrder(lines []OrderLine, laborCost, profitMargin *decimal.Decimal) OrderQuote {
	totals := make([]decimal.Decimal, 0, len(lines))
	for _, line := range lines {
		totals = append(totals, line.Total())
	}

	subtotal := OrderSubtotal(lines)
	grand := OrderGrandTotal(subtotal, laborCost, profitMargin)

	return OrderQuote{
		LineTotals:   totals,
		Subtotal:     subtotal,
		LaborCost:    laborOrZero(laborCost),
		ProfitMargin: MarginOrDefault(profitMargin),
		Markup:       Markup(subtotal, profitMargin),
		GrandTotal:   grand,
		TotalPrice:   RoundCurrency(grand),
	}
}
