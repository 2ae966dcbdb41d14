package recipes

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/pantrycost-backend/internal/costing"
	"github.com/angelmondragon/pantrycost-backend/pkg/db"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/pantrycost-backend/pkg/errors"
	"github.com/angelmondragon/pantrycost-backend/pkg/metrics"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

const txCreateRecipe = "create_recipe"

// Service exposes recipe composition and costing.
type Service interface {
	CreateRecipe(ctx context.Context, input CreateRecipeInput) (*CreatedRecipeDTO, error)
	ListRecipes(ctx context.Context) ([]RecipeDTO, error)
	GetRecipe(ctx context.Context, id uint) (*RecipeDTO, error)
	QuoteRecipe(ctx context.Context, lines []QuoteLineInput) (*RecipeQuoteDTO, error)
}

// CreateRecipeInput holds a recipe and the caller-priced lines to store with it.
type CreateRecipeInput struct {
	Name         string
	Instructions string
	Lines        []LineInput
}

// LineInput is one ingredient usage. Price is the line cost computed by the
// caller when the line was composed; it is stored as given.
type LineInput struct {
	IngredientID    uint
	Quantity        decimal.Decimal
	MeasurementType enums.MeasurementUnit
	Price           decimal.Decimal
}

// QuoteLineInput asks for the current cost of using an ingredient. An empty
// MeasurementType means the ingredient's own unit.
type QuoteLineInput struct {
	IngredientID    uint
	Quantity        decimal.Decimal
	MeasurementType enums.MeasurementUnit
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ingredientReader interface {
	FindByIDs(ctx context.Context, ids []uint) (map[uint]models.Ingredient, error)
}

type service struct {
	repo        *Repository
	tx          txRunner
	ingredients ingredientReader
	metrics     *metrics.TxMetrics
	today       func() types.Date
}

// NewService constructs a recipe service. txMetrics may be nil.
func NewService(repo *Repository, tx txRunner, ingredients ingredientReader, txMetrics *metrics.TxMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("recipe repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if ingredients == nil {
		return nil, fmt.Errorf("ingredient reader required")
	}
	return &service{
		repo:        repo,
		tx:          tx,
		ingredients: ingredients,
		metrics:     txMetrics,
		today:       types.Today,
	}, nil
}

// CreateRecipe writes the recipe, its lines in input order, and the total of
// the supplied line prices in one transaction. Any failure leaves no rows.
func (s *service) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*CreatedRecipeDTO, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Instructions = strings.TrimSpace(input.Instructions)
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	var created *CreatedRecipeDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		recipe := &models.Recipe{
			Name:         input.Name,
			Instructions: input.Instructions,
			DateCreated:  s.today(),
			TotalCost:    decimal.Zero,
		}
		if err := txRepo.CreateRecipe(ctx, recipe); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: insert recipe")
		}

		// the total is summed from the prices as stored, not as sent
		costs := make([]decimal.Decimal, 0, len(input.Lines))
		for i, line := range input.Lines {
			price := costing.RoundStoredCost(line.Price)
			item := &models.RecipeItem{
				RecipeID:        recipe.ID,
				IngredientID:    line.IngredientID,
				Quantity:        line.Quantity,
				MeasurementType: line.MeasurementType,
				Price:           price,
			}
			if err := txRepo.CreateItem(ctx, item); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodePersistence, err, fmt.Sprintf("db: insert recipe line %d", i+1))
			}
			costs = append(costs, price)
		}

		total, err := costing.RecipeTotalCost(costs)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "recipe must have at least one ingredient")
		}

		if err := txRepo.UpdateTotalCost(ctx, recipe.ID, total); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: update recipe total cost")
		}

		created = &CreatedRecipeDTO{
			ID:         recipe.ID,
			RecipeName: recipe.Name,
			Message:    "Recipe added successfully!",
		}
		return nil
	})
	s.metrics.Record(txCreateRecipe, err)
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: recipe transaction")
	}
	return created, nil
}

// ListRecipes returns every recipe with its lines.
func (s *service) ListRecipes(ctx context.Context) ([]RecipeDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: list recipes")
	}
	out := make([]RecipeDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}

// GetRecipe returns one recipe with its lines.
func (s *service) GetRecipe(ctx context.Context, id uint) (*RecipeDTO, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "recipe not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: get recipe")
	}
	dto := toDTO(*recipe)
	return &dto, nil
}

// QuoteRecipe prices lines from the ingredients' current bulk prices without
// writing anything.
func (s *service) QuoteRecipe(ctx context.Context, lines []QuoteLineInput) (*RecipeQuoteDTO, error) {
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "recipe must have at least one ingredient")
	}
	ids := make([]uint, 0, len(lines))
	for i, line := range lines {
		if line.IngredientID == 0 {
			return nil, lineError(i, "inventory_id is required")
		}
		if !line.Quantity.IsPositive() {
			return nil, lineError(i, "quantity must be greater than zero")
		}
		if line.MeasurementType != "" && !line.MeasurementType.IsValid() {
			return nil, lineError(i, "measurement_type is invalid")
		}
		ids = append(ids, line.IngredientID)
	}

	found, err := s.ingredients.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "db: load ingredients")
	}

	quoted := make([]QuoteLineDTO, 0, len(lines))
	costs := make([]decimal.Decimal, 0, len(lines))
	for i, line := range lines {
		ingredient, ok := found[line.IngredientID]
		if !ok {
			return nil, lineError(i, fmt.Sprintf("ingredient %d not found", line.IngredientID))
		}
		perUnit, err := costing.PerUnitPrice(ingredient.Price, ingredient.MeasurementValue)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("ingredient %d has no usable bulk quantity", ingredient.ID))
		}
		unit := line.MeasurementType
		if unit == "" {
			unit = ingredient.MeasurementType
		}
		cost := costing.LineCost(perUnit, line.Quantity)
		costs = append(costs, cost)
		quoted = append(quoted, QuoteLineDTO{
			InventoryID:     ingredient.ID,
			IngredientName:  ingredient.Name,
			Quantity:        line.Quantity,
			MeasurementType: unit.String(),
			IngredientUnit:  ingredient.MeasurementType.String(),
			PerUnitPrice:    perUnit,
			Price:           cost,
			UnitMismatch:    !costing.UnitsMatch(ingredient.MeasurementType, unit),
		})
	}

	total, err := costing.RecipeTotalCost(costs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "recipe must have at least one ingredient")
	}
	return &RecipeQuoteDTO{Lines: quoted, TotalCost: total}, nil
}

func validateCreate(input CreateRecipeInput) error {
	if input.Name == "" || input.Instructions == "" || len(input.Lines) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Missing required fields or no ingredients listed")
	}
	for i, line := range input.Lines {
		if line.IngredientID == 0 {
			return lineError(i, "inventory_id is required")
		}
		if !line.Quantity.IsPositive() {
			return lineError(i, "quantity must be greater than zero")
		}
		if !costing.FitsScale(line.Quantity, costing.QuantityPlaces) {
			return lineError(i, "quantity must have at most 3 decimal places")
		}
		if !line.MeasurementType.IsValid() {
			return lineError(i, "measurement_type is invalid")
		}
		if line.Price.IsNegative() {
			return lineError(i, "price must not be negative")
		}
	}
	return nil
}

func lineError(index int, msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("ingredients[%d]: %s", index, msg))
}
