package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appinv "github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
)

func TestGormTransactionScope_Execute(t *testing.T) {
	db := newTestDB(t)
	f := seedMasterData(t, db)
	scope := NewGormTransactionScope(db)
	repos := NewRepositories(db)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		inv := createInventory(t, db, f, "Commit", inventory.CountModeBulk)
		err := scope.Execute(ctx, func(tx appinv.TransactionalRepositories) error {
			locked, err := tx.InventoryRepo().FindByIDForUpdate(ctx, inv.ID)
			if err != nil {
				return err
			}
			if err := locked.Launch(); err != nil {
				return err
			}
			return tx.InventoryRepo().Save(ctx, locked)
		})
		require.NoError(t, err)

		found, err := repos.Inventories.FindByID(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, inventory.InventoryStatusEnRealisation, found.Status)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		inv := createInventory(t, db, f, "Rollback", inventory.CountModeBulk)
		boom := errors.New("boom")
		err := scope.Execute(ctx, func(tx appinv.TransactionalRepositories) error {
			d := newDetail(t, inv.Countings[0].ID, f.locations[0], nil, nil, 5)
			if err := tx.DetailRepo().Create(ctx, d); err != nil {
				return err
			}
			if err := inv.Launch(); err != nil {
				return err
			}
			if err := tx.InventoryRepo().Save(ctx, inv); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		found, err := repos.Inventories.FindByID(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, inventory.InventoryStatusEnPreparation, found.Status)

		count, err := repos.Details.CountByCountingAndSource(ctx, inv.Countings[0].ID, inventory.DetailSourceManual)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("exposes every repository", func(t *testing.T) {
		err := scope.Execute(ctx, func(tx appinv.TransactionalRepositories) error {
			assert.NotNil(t, tx.CountingRepo())
			assert.NotNil(t, tx.EcartRepo())
			assert.NotNil(t, tx.JobReader())
			assert.NotNil(t, tx.LocationReader())
			assert.NotNil(t, tx.StockReader())
			_, err := tx.EcartRepo().FindByID(ctx, 12345)
			return err
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
