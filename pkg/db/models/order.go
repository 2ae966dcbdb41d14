package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// Order is a priced collection of ingredient and recipe lines.
type Order struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string          `gorm:"column:order_name;not null"`
	OrderDate    types.Date      `gorm:"column:order_date;type:date;not null"`
	Notes        *string         `gorm:"column:notes"`
	LaborCost    decimal.Decimal `gorm:"column:labor_cost;type:numeric(12,2);not null"`
	ProfitMargin decimal.Decimal `gorm:"column:profit_margin;type:numeric(6,4);not null"`
	Subtotal     decimal.Decimal `gorm:"column:subtotal;type:numeric(14,4);not null"`
	TotalPrice   decimal.Decimal `gorm:"column:total_price;type:numeric(14,2);not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}
