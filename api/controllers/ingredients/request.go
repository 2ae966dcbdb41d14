package ingredients

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/api/validators"
	ingredientsvc "github.com/angelmondragon/pantrycost-backend/internal/ingredients"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
)

const (
	missingFieldsMessage = "Missing required fields"
	maxTextLength        = 255
)

type createIngredientRequest struct {
	Name             string           `json:"name" validate:"required"`
	Price            *decimal.Decimal `json:"price" validate:"required"`
	Store            *string          `json:"store"`
	MeasurementValue *decimal.Decimal `json:"measurement_value" validate:"required"`
	MeasurementType  string           `json:"measurement_type" validate:"required"`
	Description      *string          `json:"description"`
}

func (p createIngredientRequest) toInput() (ingredientsvc.CreateIngredientInput, error) {
	unit, err := enums.ParseMeasurementUnit(p.MeasurementType)
	if err != nil {
		return ingredientsvc.CreateIngredientInput{}, pkgerrors.New(pkgerrors.CodeValidation, err.Error()).
			WithDetails(map[string]string{"measurement_type": "is invalid"})
	}
	return ingredientsvc.CreateIngredientInput{
		Name:             validators.SanitizeString(p.Name, maxTextLength),
		Price:            *p.Price,
		Store:            validators.SanitizeOptional(p.Store, maxTextLength),
		MeasurementValue: *p.MeasurementValue,
		MeasurementType:  unit,
		Description:      validators.SanitizeOptional(p.Description, 0),
	}, nil
}
