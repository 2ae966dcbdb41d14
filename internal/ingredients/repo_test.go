package ingredients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/pantrycost-backend/pkg/db"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/dbtest"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
)

func TestRepositoryLookups(t *testing.T) {
	client := dbtest.Open(t)
	repo := NewRepository(client.DB())
	ctx := context.Background()

	sugar := dbtest.MustCreateIngredient(t, client, "Sugar", "3.49", "500", enums.MeasurementUnitGram)
	milk := dbtest.MustCreateIngredient(t, client, "Milk", "2.10", "1", enums.MeasurementUnitLiter)

	found, err := repo.FindByNameInsensitive(ctx, "SUGAR")
	require.NoError(t, err)
	assert.Equal(t, sugar.ID, found.ID)

	_, err = repo.FindByNameInsensitive(ctx, "salt")
	assert.True(t, db.IsNotFound(err))

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, db.IsNotFound(err))

	byID, err := repo.FindByIDs(ctx, []uint{sugar.ID, milk.ID, 999})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
	assert.Equal(t, "Milk", byID[milk.ID].Name)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
