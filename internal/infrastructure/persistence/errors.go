package persistence

import (
	"errors"
	"fmt"

	"github.com/wms/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps driver errors to domain errors. Unique-key violations
// come from concurrent writers racing on the same key, so they surface as
// CONCURRENCY_CONFLICT and the caller may retry.
func translateError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewDomainError(shared.ErrConcurrencyConflict.Code,
			fmt.Sprintf("%s a été modifié par une autre opération, veuillez réessayer", what))
	}
	return fmt.Errorf("%s: %w", what, err)
}
