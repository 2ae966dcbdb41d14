package orders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/api/validators"
	ordersvc "github.com/angelmondragon/pantrycost-backend/internal/orders"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// orderRequest is shared by create and quote; unit prices are always
// resolved server-side.
type orderRequest struct {
	OrderName    string             `json:"order_name" validate:"required"`
	OrderDate    *types.Date        `json:"order_date"`
	Notes        *string            `json:"notes"`
	LaborCost    *decimal.Decimal   `json:"labor_cost"`
	ProfitMargin *decimal.Decimal   `json:"profit_margin"`
	Items        []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type quoteRequest struct {
	OrderName    string             `json:"order_name"`
	LaborCost    *decimal.Decimal   `json:"labor_cost"`
	ProfitMargin *decimal.Decimal   `json:"profit_margin"`
	Items        []orderItemRequest `json:"items" validate:"dive"`
}

type orderItemRequest struct {
	ItemID   uint   `json:"item_id" validate:"required"`
	ItemType string `json:"item_type" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

func (p orderRequest) toInput() (ordersvc.CreateOrderInput, error) {
	items, err := toItems(p.Items)
	if err != nil {
		return ordersvc.CreateOrderInput{}, err
	}
	input := ordersvc.CreateOrderInput{
		Name:         validators.SanitizeString(p.OrderName, 0),
		Notes:        validators.SanitizeOptional(p.Notes, 0),
		LaborCost:    p.LaborCost,
		ProfitMargin: p.ProfitMargin,
		Items:        items,
	}
	if p.OrderDate != nil && !p.OrderDate.IsZero() {
		input.OrderDate = p.OrderDate
	}
	return input, nil
}

func (p quoteRequest) toInput() (ordersvc.CreateOrderInput, error) {
	items, err := toItems(p.Items)
	if err != nil {
		return ordersvc.CreateOrderInput{}, err
	}
	return ordersvc.CreateOrderInput{
		Name:         validators.SanitizeString(p.OrderName, 0),
		LaborCost:    p.LaborCost,
		ProfitMargin: p.ProfitMargin,
		Items:        items,
	}, nil
}

func toItems(raw []orderItemRequest) ([]ordersvc.ItemInput, error) {
	items := make([]ordersvc.ItemInput, 0, len(raw))
	for i, item := range raw {
		kind, err := enums.ParseOrderItemType(item.ItemType)
		if err != nil {
			field := fmt.Sprintf("items[%d].item_type", i)
			return nil, pkgerrors.New(pkgerrors.CodeValidation, err.Error()).
				WithDetails(map[string]string{field: "is invalid"})
		}
		items = append(items, ordersvc.ItemInput{
			ItemID:   item.ItemID,
			ItemType: kind,
			Quantity: item.Quantity,
		})
	}
	return items, nil
}
