package repository

import (
	"fmt"

	"github.com/brunoqueiroz/curricula-admin/gen/ent"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
)

// mapEntError folds ent's error surface into the application taxonomy.
// Constraint violations come from the partial unique indexes on active rows
// and from schema-level field validators, so both read as validation failures.
func mapEntError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return fmt.Errorf("%w: %s", common.ErrNotFound, what)
	case ent.IsConstraintError(err), ent.IsValidationError(err):
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	default:
		return err
	}
}
