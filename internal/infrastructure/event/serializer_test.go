package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/domain/inventory"
)

func launchedInventory(t *testing.T) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.NewInventory("Inventaire annuel", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		inventory.InventoryTypeGeneral, 1, []int64{10})
	require.NoError(t, err)
	inv.ID = 42
	require.NoError(t, inv.Launch())
	return inv
}

func TestRegisterInventoryEvents(t *testing.T) {
	serializer := NewEventSerializer()
	RegisterInventoryEvents(serializer)

	assert.Equal(t, []string{
		inventory.EventTypeEcartResolved,
		inventory.EventTypeInventoryCancelled,
		inventory.EventTypeInventoryClosed,
		inventory.EventTypeInventoryCompleted,
		inventory.EventTypeInventoryCreated,
		inventory.EventTypeInventoryLaunched,
	}, serializer.RegisteredTypes())
}

func TestEventSerializer_RoundTrip(t *testing.T) {
	serializer := NewEventSerializer()
	RegisterInventoryEvents(serializer)

	original := inventory.NewInventoryLaunchedEvent(launchedInventory(t))
	data, err := serializer.Serialize(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"from_status":"EN PREPARATION"`)
	assert.Contains(t, string(data), `"to_status":"EN REALISATION"`)

	decoded, err := serializer.Deserialize(inventory.EventTypeInventoryLaunched, data)
	require.NoError(t, err)
	launched, ok := decoded.(*inventory.InventoryLaunchedEvent)
	require.True(t, ok)
	assert.Equal(t, original.EventID(), launched.EventID())
	assert.Equal(t, int64(42), launched.AggregateID())
	assert.Equal(t, inventory.AggregateTypeInventory, launched.AggregateType())
	assert.Equal(t, original.Reference, launched.Reference)
	assert.Equal(t, inventory.InventoryStatusEnRealisation, launched.ToStatus)
}

func TestEventSerializer_Deserialize_Errors(t *testing.T) {
	serializer := NewEventSerializer()
	RegisterInventoryEvents(serializer)

	_, err := serializer.Deserialize("Unknown", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event type")

	_, err = serializer.Deserialize(inventory.EventTypeInventoryClosed, []byte(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
	assert.False(t, serializer.IsRegistered("Unknown"))
}
