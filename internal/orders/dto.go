package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/internal/costing"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// OrderDTO is a stored order with its lines.
type OrderDTO struct {
	ID           uint            `json:"id"`
	OrderName    string          `json:"order_name"`
	OrderDate    types.Date      `json:"order_date"`
	Notes        *string         `json:"notes"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderLineDTO  `json:"items"`
}

// OrderLineDTO is one priced order line.
type OrderLineDTO struct {
	ID        uint            `json:"id,omitempty"`
	ItemID    uint            `json:"item_id"`
	ItemType  string          `json:"item_type"`
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Price     decimal.Decimal `json:"price"`
}

// CreatedOrderDTO acknowledges a committed order.
type CreatedOrderDTO struct {
	ID         uint            `json:"id"`
	OrderName  string          `json:"order_name"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Message    string          `json:"message"`
}

// OrderQuoteDTO is the price breakdown of a prospective order.
type OrderQuoteDTO struct {
	Items        []OrderLineDTO  `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
	Markup       decimal.Decimal `json:"markup"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

func toDTO(m models.Order) OrderDTO {
	items := make([]OrderLineDTO, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, OrderLineDTO{
			ID:        item.ID,
			ItemID:    item.ItemID,
			ItemType:  item.ItemType.String(),
			ItemName:  item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Price:     item.Price,
		})
	}
	return OrderDTO{
		ID:           m.ID,
		OrderName:    m.Name,
		OrderDate:    m.OrderDate,
		Notes:        m.Notes,
		LaborCost:    m.LaborCost,
		ProfitMargin: m.ProfitMargin,
		Subtotal:     m.Subtotal,
		TotalPrice:   m.TotalPrice,
		CreatedAt:    m.CreatedAt,
		Items:        items,
	}
}

func toQuoteDTO(lines []pricedLine, quote costing.OrderQuote) OrderQuoteDTO {
	items := make([]OrderLineDTO, 0, len(lines))
	for i, line := range lines {
		items = append(items, OrderLineDTO{
			ItemID:    line.ItemID,
			ItemType:  line.ItemType.String(),
			ItemName:  line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Price:     quote.LineTotals[i],
		})
	}
	return OrderQuoteDTO{
		Items:        items,
		Subtotal:     quote.Subtotal,
		LaborCost:    quote.LaborCost,
		ProfitMargin: quote.ProfitMargin,
		Markup:       quote.Markup,
		TotalPrice:   quote.TotalPrice,
	}
}
