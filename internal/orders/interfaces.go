package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
)

// Repository defines persistence operations for order tables and the catalog
// reads needed to price order lines.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	UpdateOrderTotals(ctx context.Context, orderID uint, subtotal, totalPrice decimal.Decimal) error
	FindOrder(ctx context.Context, orderID uint) (*models.Order, error)
	FindIngredientsByIDs(ctx context.Context, ids []uint) (map[uint]models.Ingredient, error)
	FindRecipesByIDs(ctx context.Context, ids []uint) (map[uint]models.Recipe, error)
}
