package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// Recipe stores the instructions and the snapshot total of its lines.
type Recipe struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string          `gorm:"column:recipe_name;not null"`
	Instructions string          `gorm:"column:instructions;not null"`
	DateCreated  types.Date      `gorm:"column:date_created;type:date;not null"`
	TotalCost    decimal.Decimal `gorm:"column:total_cost;type:numeric(14,4);not null"`
	Items        []RecipeItem    `gorm:"foreignKey:RecipeID"`
}

func (Recipe) TableName() string {
	return "recipes"
}
