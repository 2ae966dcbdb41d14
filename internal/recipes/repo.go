package recipes

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/angelmondragon/pantrycost-backend/internal/repo"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
)

// Repository persists recipes and their ingredient lines.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(tx)}
}

// CreateRecipe inserts the recipe row only; lines are written separately.
func (r *Repository) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	return r.DB(ctx).Omit("Items").Create(recipe).Error
}

// CreateItem inserts one recipe line.
func (r *Repository) CreateItem(ctx context.Context, item *models.RecipeItem) error {
	return r.DB(ctx).Omit("Ingredient").Create(item).Error
}

// UpdateTotalCost sets the snapshot total of a recipe.
func (r *Repository) UpdateTotalCost(ctx context.Context, recipeID uint, total decimal.Decimal) error {
	res := r.DB(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Update("total_cost", total)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID loads a recipe with its lines and their ingredients.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.withLines(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns every recipe with its lines, ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Recipe, error) {
	var rows []models.Recipe
	if err := r.withLines(ctx).Order("recipe_name ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) withLines(ctx context.Context) *gorm.DB {
	return r.DB(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("recipe_items.id ASC")
		}).
		Preload("Items.Ingredient")
}
