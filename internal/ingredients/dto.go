package ingredients

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// IngredientDTO is the ingredient payload returned to clients.
type IngredientDTO struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Store            *string         `json:"store"`
	MeasurementValue decimal.Decimal `json:"measurement_value"`
	MeasurementType  string          `json:"measurement_type"`
	Description      *string         `json:"description"`
	DateAdded        types.Date      `json:"date_added"`
}

// CreatedIngredientDTO acknowledges a new ingredient.
type CreatedIngredientDTO struct {
	ID       uint   `json:"id"`
	ItemName string `json:"item_name"`
	Message  string `json:"message"`
}

func toDTO(m models.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:               m.ID,
		Name:             m.Name,
		Price:            m.Price,
		Store:            m.Store,
		MeasurementValue: m.MeasurementValue,
		MeasurementType:  m.MeasurementType.String(),
		Description:      m.Description,
		DateAdded:        m.DateAdded,
	}
}
