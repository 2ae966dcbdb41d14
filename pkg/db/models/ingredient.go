package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// Ingredient is a purchasable item priced for a bulk quantity.
type Ingredient struct {
	ID               uint                  `gorm:"column:id;primaryKey;autoIncrement"`
	Name             string                `gorm:"column:name;not null"`
	Price            decimal.Decimal       `gorm:"column:price;type:numeric(12,2);not null"`
	Store            *string               `gorm:"column:store"`
	MeasurementValue decimal.Decimal       `gorm:"column:measurement_value;type:numeric(12,3);not null"`
	MeasurementType  enums.MeasurementUnit `gorm:"column:measurement_type;not null"`
	Description      *string               `gorm:"column:description"`
	DateAdded        types.Date            `gorm:"column:date_added;type:date;not null"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
