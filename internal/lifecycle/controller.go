package lifecycle

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/brunoqueiroz/curricula-admin/internal/auth"
)

// Store is the soft-delete surface every managed entity store exposes. The
// store never removes rows: SoftDelete flips the flag, Restore flips it back,
// and both are benign no-ops when the row is already in the target state.
type Store[T any] interface {
	List(ctx context.Context, includeDeleted bool) ([]T, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

// Controller is the lifecycle layer shared by every manager: visibility
// filtering plus admin-gated delete/restore dispatch. The state machine per
// row is Active -delete-> Deleted -restore-> Active; nothing else, and no
// hard delete is reachable from here.
type Controller[T any] struct {
	store  Store[T]
	auth   auth.Authorizer
	logger *slog.Logger
}

func NewController[T any](store Store[T], a auth.Authorizer, logger *slog.Logger) *Controller[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller[T]{store: store, auth: a, logger: logger}
}

// List returns active records by default; includeDeleted widens the view to
// active plus logically deleted rows. Ordering is the store's and is stable
// across calls absent mutation.
func (c *Controller[T]) List(ctx context.Context, includeDeleted bool) ([]T, error) {
	return c.store.List(ctx, includeDeleted)
}

// Delete marks the record deleted. Forbidden is decided before the store is
// touched.
func (c *Controller[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := auth.Guard(ctx, c.auth); err != nil {
		c.logger.Warn("lifecycle.delete.forbidden", "id", id)
		return err
	}
	return c.store.SoftDelete(ctx, id)
}

// Restore is the inverse of Delete and tolerates redundant invocation the same
// way.
func (c *Controller[T]) Restore(ctx context.Context, id uuid.UUID) error {
	if err := auth.Guard(ctx, c.auth); err != nil {
		c.logger.Warn("lifecycle.restore.forbidden", "id", id)
		return err
	}
	return c.store.Restore(ctx, id)
}

// Guard exposes the mutation precondition for create/update paths that live
// on the concrete stores.
func (c *Controller[T]) Guard(ctx context.Context) error {
	return auth.Guard(ctx, c.auth)
}

// IsAdmin lets callers render a restricted view instead of attempting doomed
// calls.
func (c *Controller[T]) IsAdmin(ctx context.Context) bool {
	return c.auth.IsAdmin(ctx)
}
