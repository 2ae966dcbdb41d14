package ingredients

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/pantrycost-backend/internal/costing"
	"github.com/angelmondragon/pantrycost-backend/pkg/db"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// Service exposes ingredient inventory operations.
type Service interface {
	CreateIngredient(ctx context.Context, input CreateIngredientInput) (*CreatedIngredientDTO, error)
	ListIngredients(ctx context.Context) ([]IngredientDTO, error)
}

// CreateIngredientInput holds the payload to record a new ingredient.
type CreateIngredientInput struct {
	Name             string
	Price            decimal.Decimal
	Store            *string
	MeasurementValue decimal.Decimal
	MeasurementType  enums.MeasurementUnit
	Description      *string
}

type repository interface {
	Create(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error)
	FindByNameInsensitive(ctx context.Context, name string) (*models.Ingredient, error)
	List(ctx context.Context) ([]models.Ingredient, error)
}

type service struct {
	repo  repository
	today func() types.Date
}

// NewService constructs an ingredient service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ingredient repository required")
	}
	return &service{repo: repo, today: types.Today}, nil
}

// CreateIngredient records the ingredient unless one with the same name
// already exists. The lookup and insert are not atomic: two concurrent
// submissions of one name can both succeed.
func (s *service) CreateIngredient(ctx context.Context, input CreateIngredientInput) (*CreatedIngredientDTO, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Store = trimOptional(input.Store)
	input.Description = trimOptional(input.Description)
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByNameInsensitive(ctx, input.Name)
	switch {
	case err == nil:
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Ingredient already exists").
			WithDetails(types.Duplicate{ExistingItem: toDTO(*existing)})
	case !db.IsNotFound(err):
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: lookup ingredient by name")
	}

	created, err := s.repo.Create(ctx, &models.Ingredient{
		Name:             input.Name,
		Price:            input.Price,
		Store:            input.Store,
		MeasurementValue: input.MeasurementValue,
		MeasurementType:  input.MeasurementType,
		Description:      input.Description,
		DateAdded:        s.today(),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: insert ingredient")
	}

	return &CreatedIngredientDTO{
		ID:       created.ID,
		ItemName: created.Name,
		Message:  "Ingredient added successfully!",
	}, nil
}

// ListIngredients returns every ingredient ordered by name.
func (s *service) ListIngredients(ctx context.Context) ([]IngredientDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: list ingredients")
	}
	out := make([]IngredientDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}

func validateCreate(input CreateIngredientInput) error {
	if input.Name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !input.Price.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than zero")
	}
	if !costing.FitsScale(input.Price, costing.CurrencyPlaces) {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must have at most 2 decimal places")
	}
	if !input.MeasurementValue.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "measurement_value must be greater than zero")
	}
	if !costing.FitsScale(input.MeasurementValue, costing.QuantityPlaces) {
		return pkgerrors.New(pkgerrors.CodeValidation, "measurement_value must have at most 3 decimal places")
	}
	if !input.MeasurementType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "measurement_type is invalid")
	}
	return nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
