// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/predicate"
)

// InstitutionTypeDelete is the builder for deleting a InstitutionType entity.
type InstitutionTypeDelete struct {
	config
	hooks    []Hook
	mutation *InstitutionTypeMutation
}

// Where appends a list predicates to the InstitutionTypeDelete builder.
func (_d *InstitutionTypeDelete) Where(ps ...predicate.InstitutionType) *InstitutionTypeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InstitutionTypeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InstitutionTypeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InstitutionTypeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(institutiontype.Table, sqlgraph.NewFieldSpec(institutiontype.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InstitutionTypeDeleteOne is the builder for deleting a single InstitutionType entity.
type InstitutionTypeDeleteOne struct {
	_d *InstitutionTypeDelete
}

// Where appends a list predicates to the InstitutionTypeDelete builder.
func (_d *InstitutionTypeDeleteOne) Where(ps ...predicate.InstitutionType) *InstitutionTypeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InstitutionTypeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{institutiontype.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InstitutionTypeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
