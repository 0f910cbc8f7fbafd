package lifecycle

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoqueiroz/curricula-admin/internal/auth"
	"github.com/brunoqueiroz/curricula-admin/internal/common"
)

type record struct {
	ID      uuid.UUID
	Deleted bool
}

// fakeStore counts calls so tests can prove the admin gate runs first.
type fakeStore struct {
	rows        map[uuid.UUID]*record
	listCalls   int
	deleteCalls int
	restores    int
}

func newFakeStore(ids ...uuid.UUID) *fakeStore {
	rows := make(map[uuid.UUID]*record, len(ids))
	for _, id := range ids {
		rows[id] = &record{ID: id}
	}
	return &fakeStore{rows: rows}
}

func (f *fakeStore) List(_ context.Context, includeDeleted bool) ([]*record, error) {
	f.listCalls++
	out := make([]*record, 0, len(f.rows))
	for _, r := range f.rows {
		if r.Deleted && !includeDeleted {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	f.deleteCalls++
	if r, ok := f.rows[id]; ok {
		r.Deleted = true
		return nil
	}
	return common.ErrNotFound
}

func (f *fakeStore) Restore(_ context.Context, id uuid.UUID) error {
	f.restores++
	if r, ok := f.rows[id]; ok {
		r.Deleted = false
		return nil
	}
	return common.ErrNotFound
}

func TestDeleteRestoreRoundTrip(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(id)
	c := NewController[*record](store, auth.Static{Admin: true}, nil)
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx, id))
	active, err := c.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active, "deleted rows leave the default view")

	all, err := c.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1, "deleted rows stay reachable with includeDeleted")

	require.NoError(t, c.Restore(ctx, id))
	active, err = c.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestRedundantLifecycleCallsAreBenign(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(id)
	c := NewController[*record](store, auth.Static{Admin: true}, nil)
	ctx := context.Background()

	// Restore of an active row and double delete both succeed quietly.
	require.NoError(t, c.Restore(ctx, id))
	require.NoError(t, c.Delete(ctx, id))
	require.NoError(t, c.Delete(ctx, id))

	all, err := c.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Deleted)
}

func TestForbiddenDecidedBeforeStore(t *testing.T) {
	id := uuid.New()
	store := newFakeStore(id)
	c := NewController[*record](store, auth.Static{Admin: false}, nil)
	ctx := context.Background()

	assert.ErrorIs(t, c.Delete(ctx, id), common.ErrForbidden)
	assert.ErrorIs(t, c.Restore(ctx, id), common.ErrForbidden)
	assert.Equal(t, 0, store.deleteCalls, "forbidden must short-circuit before the store")
	assert.Equal(t, 0, store.restores)

	// Reads stay open to non-admins.
	_, err := c.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)
	assert.False(t, c.IsAdmin(ctx))
}
