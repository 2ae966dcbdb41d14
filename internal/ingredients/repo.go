package ingredients

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/pantrycost-backend/internal/repo"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
)

// Repository persists ingredient rows.
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

// Create inserts the ingredient and fills its generated id.
func (r *Repository) Create(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := r.DB(ctx).Create(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// FindByNameInsensitive returns the first ingredient whose name matches
// ignoring case, or gorm.ErrRecordNotFound.
func (r *Repository) FindByNameInsensitive(ctx context.Context, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.DB(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("id ASC").
		First(&ingredient).
		Error
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// FindByID loads one ingredient.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.DB(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// FindByIDs loads the ingredients with the given ids keyed by id.
func (r *Repository) FindByIDs(ctx context.Context, ids []uint) (map[uint]models.Ingredient, error) {
	return repo.FindByIDs(ctx, r.Base, ids, func(m models.Ingredient) uint { return m.ID })
}

// List returns every ingredient ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Ingredient, error) {
	var rows []models.Ingredient
	if err := r.DB(ctx).Order("name ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
