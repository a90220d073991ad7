package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestInventory(t *testing.T) *Inventory {
	t.Helper()
	inv, err := NewInventory("Inventaire annuel", time.Now(), InventoryTypeGeneral, 1, []int64{10, 11})
	require.NoError(t, err)
	inv.ID = 100
	countings, err := NewCountingDispatcher().BuildCountings(inv.ID, []PassConfig{bulkPass(1), bulkPass(2), bulkPass(3)})
	require.NoError(t, err)
	inv.Countings = countings
	return inv
}

func TestNewInventory(t *testing.T) {
	t.Run("creates inventory in preparation", func(t *testing.T) {
		inv, err := NewInventory("Inventaire", time.Now(), InventoryTypeTournant, 3, []int64{10, 10, 12})

		require.NoError(t, err)
		assert.Equal(t, InventoryStatusEnPreparation, inv.Status)
		assert.NotNil(t, inv.StatusDates.At(InventoryStatusEnPreparation))
		assert.Nil(t, inv.StatusDates.At(InventoryStatusEnRealisation))
		assert.Equal(t, []int64{10, 12}, inv.WarehouseIDs())
		assert.Equal(t, int64(3), inv.AccountID())
		assert.Contains(t, inv.Reference, "INV-")
	})

	t.Run("collects every input error", func(t *testing.T) {
		_, err := NewInventory("", time.Time{}, InventoryType("X"), 0, nil)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInventoryInvalid))
		assert.Contains(t, err.Error(), "Le label est obligatoire")
		assert.Contains(t, err.Error(), "La date est obligatoire")
		assert.Contains(t, err.Error(), "L'account_id est obligatoire")
		assert.Contains(t, err.Error(), "Au moins un entrepôt est obligatoire")
	})
}

func TestInventoryStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     InventoryStatus
		to       InventoryStatus
		expected bool
	}{
		{InventoryStatusEnPreparation, InventoryStatusEnRealisation, true},
		{InventoryStatusEnPreparation, InventoryStatusTermine, false},
		{InventoryStatusEnRealisation, InventoryStatusTermine, true},
		{InventoryStatusEnRealisation, InventoryStatusEnPreparation, true},
		{InventoryStatusEnRealisation, InventoryStatusCloture, false},
		{InventoryStatusTermine, InventoryStatusCloture, true},
		{InventoryStatusTermine, InventoryStatusEnRealisation, false},
		{InventoryStatusCloture, InventoryStatusEnPreparation, false},
		{InventoryStatusCloture, InventoryStatusTermine, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestInventory_Lifecycle(t *testing.T) {
	t.Run("launch then cancel clears realisation timestamp", func(t *testing.T) {
		inv := createTestInventory(t)

		require.NoError(t, inv.Launch())
		assert.Equal(t, InventoryStatusEnRealisation, inv.Status)
		assert.NotNil(t, inv.StatusDates.At(InventoryStatusEnRealisation))

		require.NoError(t, inv.Cancel())
		assert.Equal(t, InventoryStatusEnPreparation, inv.Status)
		assert.Nil(t, inv.StatusDates.At(InventoryStatusEnRealisation))
		assert.Len(t, inv.GetDomainEvents(), 2)
	})

	t.Run("cannot skip states", func(t *testing.T) {
		inv := createTestInventory(t)
		version := inv.Version

		err := inv.Close()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
		assert.Equal(t, "Cannot transition from EN PREPARATION to CLOTURE", err.Error())
		assert.Equal(t, InventoryStatusEnPreparation, inv.Status)
		assert.Equal(t, version, inv.Version)
		assert.Nil(t, inv.StatusDates.At(InventoryStatusCloture))
	})

	t.Run("cancel requires realisation", func(t *testing.T) {
		inv := createTestInventory(t)
		err := inv.Cancel()
		assert.True(t, errors.Is(err, ErrInvalidTransition))
	})

	t.Run("nothing leaves CLOTURE", func(t *testing.T) {
		inv := createTestInventory(t)
		require.NoError(t, inv.Launch())
		_, err := inv.Complete([]Job{{ID: 1, Status: JobStatusTermine}})
		require.NoError(t, err)
		require.NoError(t, inv.Close())
		assert.NotNil(t, inv.StatusDates.At(InventoryStatusCloture))

		assert.Error(t, inv.Launch())
		assert.Error(t, inv.Cancel())
		assert.Error(t, inv.Close())
		_, err = inv.Complete(nil)
		assert.Error(t, err)
		assert.Equal(t, InventoryStatusCloture, inv.Status)
	})
}

func TestInventory_Complete(t *testing.T) {
	t.Run("reports open jobs without changing status", func(t *testing.T) {
		inv := createTestInventory(t)
		require.NoError(t, inv.Launch())
		open := Job{ID: 2, Reference: "JOB-2", Status: JobStatusEntame}

		result, err := inv.Complete([]Job{{ID: 1, Status: JobStatusTermine}, open})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, []Job{open}, result.JobsNotCompleted)
		assert.Equal(t, InventoryStatusEnRealisation, inv.Status)
		assert.Nil(t, inv.StatusDates.At(InventoryStatusTermine))
	})

	t.Run("requires at least one job", func(t *testing.T) {
		inv := createTestInventory(t)
		require.NoError(t, inv.Launch())

		result, err := inv.Complete(nil)

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, InventoryStatusEnRealisation, inv.Status)
	})

	t.Run("completes when every job is done", func(t *testing.T) {
		inv := createTestInventory(t)
		require.NoError(t, inv.Launch())

		result, err := inv.Complete([]Job{{ID: 1, Status: JobStatusTermine}})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, InventoryStatusTermine, inv.Status)
	})

	t.Run("fails outside realisation", func(t *testing.T) {
		inv := createTestInventory(t)
		_, err := inv.Complete([]Job{{ID: 1, Status: JobStatusTermine}})
		assert.True(t, errors.Is(err, ErrInvalidTransition))
	})
}

func TestInventory_Configuration(t *testing.T) {
	t.Run("replaces countings with orders 1 to 3", func(t *testing.T) {
		inv := createTestInventory(t)
		countings, err := NewCountingDispatcher().BuildCountings(0, []PassConfig{
			stockImagePass(), byArticlePass(2, CountingFlags{}), byArticlePass(3, CountingFlags{}),
		})
		require.NoError(t, err)

		require.NoError(t, inv.ReplaceCountings(countings))
		assert.True(t, inv.StartsFromStockImage())
		for _, c := range inv.Countings {
			assert.Equal(t, inv.ID, c.InventoryID)
		}
	})

	t.Run("rejects two passes", func(t *testing.T) {
		inv := createTestInventory(t)
		err := inv.ReplaceCountings(inv.Countings[:2])
		assert.True(t, errors.Is(err, ErrSequenceInvalid))
		assert.Len(t, inv.Countings, 3)
	})

	t.Run("locked once launched", func(t *testing.T) {
		inv := createTestInventory(t)
		require.NoError(t, inv.Launch())

		assert.True(t, errors.Is(inv.ReplaceSettings(1, []int64{10}), ErrInventoryNotEditable))
		assert.True(t, errors.Is(inv.UpdateDetails("x", time.Now(), InventoryTypeGeneral), ErrInventoryNotEditable))
		assert.True(t, errors.Is(inv.SoftDelete(), ErrInventoryNotEditable))
	})

	t.Run("soft delete in preparation", func(t *testing.T) {
		inv := createTestInventory(t)
		require.NoError(t, inv.SoftDelete())
		assert.True(t, inv.IsDeleted)
	})
}

func TestInventory_SnapshotByLocation(t *testing.T) {
	tests := []struct {
		name   string
		passes []PassConfig
		want   bool
	}{
		{"stock image then bulk", []PassConfig{stockImagePass(), bulkPass(2), bulkPass(3)}, true},
		{"stock image then by article", []PassConfig{stockImagePass(), byArticlePass(2, CountingFlags{}), byArticlePass(3, CountingFlags{})}, false},
		{"bulk only", []PassConfig{bulkPass(1), bulkPass(2), bulkPass(3)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := createTestInventory(t)
			countings, err := NewCountingDispatcher().BuildCountings(inv.ID, tt.passes)
			require.NoError(t, err)
			inv.Countings = countings

			assert.Equal(t, tt.want, inv.SnapshotByLocation())
		})
	}
}

func TestSnapshotDetails(t *testing.T) {
	rows := []StockRow{
		{ID: 1, LocationID: 2, ProductID: 7, Quantity: 12},
		{ID: 2, LocationID: 1, ProductID: 8, Quantity: 4},
		{ID: 3, LocationID: 2, ProductID: 8, Quantity: 3},
	}

	t.Run("one detail per stock row", func(t *testing.T) {
		details := SnapshotDetails(5, rows, false)

		require.Len(t, details, 3)
		for i, d := range details {
			assert.Equal(t, int64(5), d.CountingID)
			assert.Equal(t, DetailSourceSnapshot, d.Source)
			require.NotNil(t, d.ProductID)
			assert.Equal(t, rows[i].ProductID, *d.ProductID)
			assert.Equal(t, rows[i].Quantity, d.Quantity)
		}
	})

	t.Run("location totals carry no product", func(t *testing.T) {
		details := SnapshotDetails(5, rows, true)

		require.Len(t, details, 2)
		assert.Equal(t, int64(2), details[0].LocationID)
		assert.Equal(t, 15, details[0].Quantity)
		assert.Equal(t, int64(1), details[1].LocationID)
		assert.Equal(t, 4, details[1].Quantity)
		for _, d := range details {
			assert.Nil(t, d.ProductID)
			assert.Equal(t, DetailSourceSnapshot, d.Source)
		}
	})
}
