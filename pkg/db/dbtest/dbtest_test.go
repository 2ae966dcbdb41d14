package dbtest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

func TestSchemaEnforcesColumnScale(t *testing.T) {
	client := Open(t)

	recipe := func(total string) *models.Recipe {
		return &models.Recipe{
			Name:         "Scale",
			Instructions: "mix",
			DateCreated:  types.Today(),
			TotalCost:    decimal.RequireFromString(total),
		}
	}

	require.NoError(t, client.DB().Create(recipe("2.3266")).Error)
	require.NoError(t, client.DB().Create(recipe("40")).Error)
	assert.Error(t, client.DB().Create(recipe("2.32665")).Error, "five places exceed numeric(14,4)")

	ingredient := &models.Ingredient{
		Name:             "Salt",
		Price:            decimal.RequireFromString("3.499"),
		MeasurementValue: decimal.RequireFromString("1"),
		MeasurementType:  enums.MeasurementUnitKilogram,
		DateAdded:        types.Today(),
	}
	assert.Error(t, client.DB().Create(ingredient).Error, "three places exceed numeric(12,2)")

	assert.EqualValues(t, 2, Count(t, client, "recipes"))
	assert.Zero(t, Count(t, client, "ingredients"))
}
