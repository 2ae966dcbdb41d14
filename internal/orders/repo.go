package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/pantrycost-backend/internal/repo"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
)

type repository struct {
	repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{Base: repo.NewBase(tx)}
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB(ctx).Omit("Items").Create(order).Error
}

func (r *repository) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	return r.DB(ctx).Create(item).Error
}

func (r *repository) UpdateOrderTotals(ctx context.Context, orderID uint, subtotal, totalPrice decimal.Decimal) error {
	res := r.DB(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"subtotal":    subtotal,
			"total_price": totalPrice,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.DB(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_items.id ASC")
		}).
		First(&order, "id = ?", orderID).
		Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) FindIngredientsByIDs(ctx context.Context, ids []uint) (map[uint]models.Ingredient, error) {
	return repo.FindByIDs(ctx, r.Base, ids, func(m models.Ingredient) uint { return m.ID })
}

func (r *repository) FindRecipesByIDs(ctx context.Context, ids []uint) (map[uint]models.Recipe, error) {
	return repo.FindByIDs(ctx, r.Base, ids, func(m models.Recipe) uint { return m.ID })
}
