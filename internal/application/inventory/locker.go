package inventory

import (
	"context"

	"github.com/wms/backend/internal/domain/shared"
)

// ErrInventoryBusy is returned when another lifecycle operation holds the
// inventory lock
var ErrInventoryBusy = shared.NewDomainError(shared.ErrConcurrencyConflict.Code,
	"Une autre opération est en cours sur cet inventaire")

// InventoryLocker serializes lifecycle operations on one inventory across
// processes. The row lock taken inside the transaction remains the source
// of truth; the locker fails fast instead of queueing on the row.
type InventoryLocker interface {
	// Lock acquires the inventory lock and returns its release function.
	// It returns ErrInventoryBusy when the lock is held elsewhere.
	Lock(ctx context.Context, inventoryID int64) (release func(context.Context) error, err error)
}

// NoopInventoryLocker relies on the database row lock alone
type NoopInventoryLocker struct{}

// Lock always succeeds
func (NoopInventoryLocker) Lock(context.Context, int64) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
