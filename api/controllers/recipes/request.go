package recipes

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/api/validators"
	recipesvc "github.com/angelmondragon/pantrycost-backend/internal/recipes"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
)

const missingFieldsMessage = "Missing required fields or no ingredients listed"

type createRecipeRequest struct {
	RecipeName   string              `json:"recipe_name" validate:"required"`
	Instructions string              `json:"instructions" validate:"required"`
	Ingredients  []recipeLineRequest `json:"ingredients" validate:"required,min=1,dive"`
}

type recipeLineRequest struct {
	InventoryID     uint             `json:"inventory_id" validate:"required"`
	Quantity        *decimal.Decimal `json:"quantity" validate:"required"`
	MeasurementType string           `json:"measurement_type" validate:"required"`
	Price           *decimal.Decimal `json:"price" validate:"required"`
}

type quoteRecipeRequest struct {
	Ingredients []quoteLineRequest `json:"ingredients" validate:"required,min=1,dive"`
}

type quoteLineRequest struct {
	InventoryID     uint             `json:"inventory_id" validate:"required"`
	Quantity        *decimal.Decimal `json:"quantity" validate:"required"`
	MeasurementType string           `json:"measurement_type"`
}

func (p createRecipeRequest) toInput() (recipesvc.CreateRecipeInput, error) {
	lines := make([]recipesvc.LineInput, 0, len(p.Ingredients))
	for i, line := range p.Ingredients {
		unit, err := parseUnit(i, line.MeasurementType)
		if err != nil {
			return recipesvc.CreateRecipeInput{}, err
		}
		lines = append(lines, recipesvc.LineInput{
			IngredientID:    line.InventoryID,
			Quantity:        *line.Quantity,
			MeasurementType: unit,
			Price:           *line.Price,
		})
	}
	return recipesvc.CreateRecipeInput{
		Name:         validators.SanitizeString(p.RecipeName, 0),
		Instructions: validators.SanitizeString(p.Instructions, 0),
		Lines:        lines,
	}, nil
}

func (p quoteRecipeRequest) toInput() ([]recipesvc.QuoteLineInput, error) {
	lines := make([]recipesvc.QuoteLineInput, 0, len(p.Ingredients))
	for i, line := range p.Ingredients {
		var unit enums.MeasurementUnit
		if line.MeasurementType != "" {
			parsed, err := parseUnit(i, line.MeasurementType)
			if err != nil {
				return nil, err
			}
			unit = parsed
		}
		lines = append(lines, recipesvc.QuoteLineInput{
			IngredientID:    line.InventoryID,
			Quantity:        *line.Quantity,
			MeasurementType: unit,
		})
	}
	return lines, nil
}

func parseUnit(index int, raw string) (enums.MeasurementUnit, error) {
	unit, err := enums.ParseMeasurementUnit(raw)
	if err != nil {
		field := fmt.Sprintf("ingredients[%d].measurement_type", index)
		return "", pkgerrors.New(pkgerrors.CodeValidation, err.Error()).
			WithDetails(map[string]string{field: "is invalid"})
	}
	return unit, nil
}
