package recipes

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// RecipeDTO is a recipe with its snapshot-priced lines.
type RecipeDTO struct {
	ID           uint            `json:"id"`
	RecipeName   string          `json:"recipe_name"`
	Instructions string          `json:"instructions"`
	DateCreated  types.Date      `json:"date_created"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	Ingredients  []RecipeLineDTO `json:"ingredients"`
}

// RecipeLineDTO is one stored ingredient usage.
type RecipeLineDTO struct {
	ID              uint            `json:"id"`
	InventoryID     uint            `json:"inventory_id"`
	IngredientName  string          `json:"ingredient_name,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	MeasurementType string          `json:"measurement_type"`
	Price           decimal.Decimal `json:"price"`
}

// CreatedRecipeDTO acknowledges a committed recipe.
type CreatedRecipeDTO struct {
	ID         uint   `json:"id"`
	RecipeName string `json:"recipe_name"`
	Message    string `json:"message"`
}

// RecipeQuoteDTO prices prospective recipe lines from current ingredient prices.
type RecipeQuoteDTO struct {
	Lines     []QuoteLineDTO  `json:"lines"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// QuoteLineDTO carries the derivation of one quoted line. UnitMismatch is set
// when the usage unit differs from the unit the ingredient was bought in; the
// cost is then computed without conversion.
type QuoteLineDTO struct {
	InventoryID     uint            `json:"inventory_id"`
	IngredientName  string          `json:"ingredient_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	MeasurementType string          `json:"measurement_type"`
	IngredientUnit  string          `json:"ingredient_unit"`
	PerUnitPrice    decimal.Decimal `json:"per_unit_price"`
	Price           decimal.Decimal `json:"price"`
	UnitMismatch    bool            `json:"unit_mismatch"`
}

func toDTO(m models.Recipe) RecipeDTO {
	lines := make([]RecipeLineDTO, 0, len(m.Items))
	for _, item := range m.Items {
		line := RecipeLineDTO{
			ID:              item.ID,
			InventoryID:     item.IngredientID,
			Quantity:        item.Quantity,
			MeasurementType: item.MeasurementType.String(),
			Price:           item.Price,
		}
		if item.Ingredient != nil {
			line.IngredientName = item.Ingredient.Name
		}
		lines = append(lines, line)
	}
	return RecipeDTO{
		ID:           m.ID,
		RecipeName:   m.Name,
		Instructions: m.Instructions,
		DateCreated:  m.DateCreated,
		TotalCost:    m.TotalCost,
		Ingredients:  lines,
	}
}
