package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
)

// RecipeItem is one ingredient usage inside a recipe. Price is the line cost
// computed when the recipe was written and is never recomputed.
type RecipeItem struct {
	ID              uint                  `gorm:"column:id;primaryKey;autoIncrement"`
	RecipeID        uint                  `gorm:"column:recipe_id;not null"`
	IngredientID    uint                  `gorm:"column:ingredient_id;not null"`
	Quantity        decimal.Decimal       `gorm:"column:quantity;type:numeric(12,3);not null"`
	MeasurementType enums.MeasurementUnit `gorm:"column:measurement_type;not null"`
	Price           decimal.Decimal       `gorm:"column:price;type:numeric(14,4);not null"`
	Ingredient      *Ingredient           `gorm:"foreignKey:IngredientID"`
}

func (RecipeItem) TableName() string {
	return "recipe_items"
}
