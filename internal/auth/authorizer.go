package auth

import (
	"context"

	"github.com/brunoqueiroz/curricula-admin/internal/common"
)

// Authorizer answers the one question the admin console cares about: is the
// acting principal an administrator. Implementations evaluate lazily and cache
// per session so callers can also render read-only views cheaply.
type Authorizer interface {
	IsAdmin(ctx context.Context) bool
}

// Guard is the shared mutation precondition: it must run before any store
// interaction.
func Guard(ctx context.Context, a Authorizer) error {
	if !a.IsAdmin(ctx) {
		return common.ErrForbidden
	}
	return nil
}

// Static is a fixed-capability principal, used by unattended ingestion (the
// drop-folder watcher and batch runs act as a service administrator) and tests.
type Static struct {
	Admin bool
}

func (s Static) IsAdmin(context.Context) bool { return s.Admin }
