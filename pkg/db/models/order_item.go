package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
)

// OrderItem snapshots the unit price of an ingredient or recipe at order time.
type OrderItem struct {
	ID        uint                `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   uint                `gorm:"column:order_id;not null"`
	ItemID    uint                `gorm:"column:item_id;not null"`
	ItemType  enums.OrderItemType `gorm:"column:item_type;not null"`
	ItemName  string              `gorm:"column:item_name;not null"`
	Quantity  int                 `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal     `gorm:"column:unit_price;type:numeric(14,4);not null"`
	Price     decimal.Decimal     `gorm:"column:price;type:numeric(14,4);not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
