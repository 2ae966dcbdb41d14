package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/pantrycost-backend/internal/costing"
	"github.com/angelmondragon/pantrycost-backend/pkg/db"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
	"github.com/angelmondragon/pantrycost-backend/pkg/metrics"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

const txCreateOrder = "create_order"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service prices and records orders.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreatedOrderDTO, error)
	QuoteOrder(ctx context.Context, input CreateOrderInput) (*OrderQuoteDTO, error)
	GetOrder(ctx context.Context, id uint) (*OrderDTO, error)
}

// CreateOrderInput describes an order. Nil LaborCost means zero and nil
// ProfitMargin means costing.DefaultProfitMargin.
type CreateOrderInput struct {
	Name         string
	OrderDate    *types.Date
	Notes        *string
	LaborCost    *decimal.Decimal
	ProfitMargin *decimal.Decimal
	Items        []ItemInput
}

// ItemInput requests Quantity of an ingredient or recipe.
type ItemInput struct {
	ItemID   uint
	ItemType enums.OrderItemType
	Quantity int
}

// pricedLine is an item with the unit price it resolved to.
type pricedLine struct {
	ItemInput
	Name      string
	UnitPrice decimal.Decimal
}

type service struct {
	repo    Repository
	tx      txRunner
	metrics *metrics.TxMetrics
	today   func() types.Date
}

// NewService constructs an order service. txMetrics may be nil.
func NewService(repo Repository, tx txRunner, txMetrics *metrics.TxMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, metrics: txMetrics, today: types.Today}, nil
}

// CreateOrder snapshots each item's current price and writes the order and
// its lines atomically. Totals are computed from the written lines.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreatedOrderDTO, error) {
	input = normalize(input)
	if err := validateOrder(input); err != nil {
		return nil, err
	}

	var created *CreatedOrderDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		lines, err := resolveLines(ctx, txRepo, input.Items)
		if err != nil {
			return err
		}
		quote := costing.QuoteOrder(toCostingLines(lines), input.LaborCost, input.ProfitMargin)

		orderDate := s.today()
		if input.OrderDate != nil && !input.OrderDate.IsZero() {
			orderDate = *input.OrderDate
		}

		order := &models.Order{
			Name:         input.Name,
			OrderDate:    orderDate,
			Notes:        input.Notes,
			LaborCost:    quote.LaborCost,
			ProfitMargin: quote.ProfitMargin,
			Subtotal:     decimal.Zero,
			TotalPrice:   decimal.Zero,
		}
		if err := txRepo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: insert order")
		}

		for i, line := range lines {
			item := &models.OrderItem{
				OrderID:   order.ID,
				ItemID:    line.ItemID,
				ItemType:  line.ItemType,
				ItemName:  line.Name,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Price:     quote.LineTotals[i],
			}
			if err := txRepo.CreateOrderItem(ctx, item); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodePersistence, err, fmt.Sprintf("db: insert order line %d", i+1))
			}
		}

		if err := txRepo.UpdateOrderTotals(ctx, order.ID, quote.Subtotal, quote.TotalPrice); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: update order totals")
		}

		created = &CreatedOrderDTO{
			ID:         order.ID,
			OrderName:  order.Name,
			TotalPrice: quote.TotalPrice,
			Message:    "Order added successfully!",
		}
		return nil
	})
	s.metrics.Record(txCreateOrder, err)
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: order transaction")
	}
	return created, nil
}

// QuoteOrder prices an order from current catalog prices without writing.
func (s *service) QuoteOrder(ctx context.Context, input CreateOrderInput) (*OrderQuoteDTO, error) {
	input = normalize(input)
	if err := validatePricing(input); err != nil {
		return nil, err
	}
	if err := validateItems(input.Items); err != nil {
		return nil, err
	}

	lines, err := resolveLines(ctx, s.repo, input.Items)
	if err != nil {
		return nil, err
	}
	quote := costing.QuoteOrder(toCostingLines(lines), input.LaborCost, input.ProfitMargin)
	dto := toQuoteDTO(lines, quote)
	return &dto, nil
}

// GetOrder returns a stored order with its lines.
func (s *service) GetOrder(ctx context.Context, id uint) (*OrderDTO, error) {
	order, err := s.repo.FindOrder(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: get order")
	}
	dto := toDTO(*order)
	return &dto, nil
}

// resolveLines looks up every referenced ingredient and recipe and takes the
// ingredient bulk price or the recipe total cost as the unit price.
func resolveLines(ctx context.Context, repo Repository, items []ItemInput) ([]pricedLine, error) {
	var ingredientIDs, recipeIDs []uint
	for _, item := range items {
		switch item.ItemType {
		case enums.OrderItemTypeIngredient:
			ingredientIDs = append(ingredientIDs, item.ItemID)
		case enums.OrderItemTypeRecipe:
			recipeIDs = append(recipeIDs, item.ItemID)
		}
	}

	ingredients, err := repo.FindIngredientsByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: load order ingredients")
	}
	recipes, err := repo.FindRecipesByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: load order recipes")
	}

	lines := make([]pricedLine, 0, len(items))
	for i, item := range items {
		line := pricedLine{ItemInput: item}
		switch item.ItemType {
		case enums.OrderItemTypeIngredient:
			ingredient, ok := ingredients[item.ItemID]
			if !ok {
				return nil, itemError(i, fmt.Sprintf("ingredient %d not found", item.ItemID))
			}
			line.Name = ingredient.Name
			line.UnitPrice = ingredient.Price
		case enums.OrderItemTypeRecipe:
			recipe, ok := recipes[item.ItemID]
			if !ok {
				return nil, itemError(i, fmt.Sprintf("recipe %d not found", item.ItemID))
			}
			line.Name = recipe.Name
			line.UnitPrice = recipe.TotalCost
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func toCostingLines(lines []pricedLine) []costing.OrderLine {
	out := make([]costing.OrderLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, costing.OrderLine{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
	}
	return out
}

func normalize(input CreateOrderInput) CreateOrderInput {
	input.Name = strings.TrimSpace(input.Name)
	if input.Notes != nil {
		notes := strings.TrimSpace(*input.Notes)
		if notes == "" {
			input.Notes = nil
		} else {
			input.Notes = &notes
		}
	}
	return input
}

func validateOrder(input CreateOrderInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "order_name is required")
	}
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order must have at least one item")
	}
	if err := validatePricing(input); err != nil {
		return err
	}
	return validateItems(input.Items)
}

var maxProfitMargin = decimal.NewFromInt(100)

// validatePricing keeps labor cost and margin within their column scales so
// the stored values are exactly the ones the totals were computed from.
func validatePricing(input CreateOrderInput) error {
	if labor := input.LaborCost; labor != nil {
		if labor.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "labor_cost must not be negative")
		}
		if !costing.FitsScale(*labor, costing.CurrencyPlaces) {
			return pkgerrors.New(pkgerrors.CodeValidation, "labor_cost must have at most 2 decimal places")
		}
	}
	if margin := input.ProfitMargin; margin != nil {
		if margin.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "profit_margin must not be negative")
		}
		if !margin.LessThan(maxProfitMargin) {
			return pkgerrors.New(pkgerrors.CodeValidation, "profit_margin must be less than 100")
		}
		if !costing.FitsScale(*margin, costing.MarginPlaces) {
			return pkgerrors.New(pkgerrors.CodeValidation, "profit_margin must have at most 4 decimal places")
		}
	}
	return nil
}

func validateItems(items []ItemInput) error {
	for i, item := range items {
		if item.ItemID == 0 {
			return itemError(i, "item_id is required")
		}
		if !item.ItemType.IsValid() {
			return itemError(i, "item_type must be ingredient or recipe")
		}
		if item.Quantity <= 0 {
			return itemError(i, "quantity must be a positive integer")
		}
	}
	return nil
}

func itemError(index int, msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("items[%d]: %s", index, msg))
}
