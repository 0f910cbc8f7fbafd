// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institution"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/predicate"
	"github.com/google/uuid"
)

// InstitutionTypeUpdate is the builder for updating InstitutionType entities.
type InstitutionTypeUpdate struct {
	config
	hooks    []Hook
	mutation *InstitutionTypeMutation
}

// Where appends a list predicates to the InstitutionTypeUpdate builder.
func (_u *InstitutionTypeUpdate) Where(ps ...predicate.InstitutionType) *InstitutionTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *InstitutionTypeUpdate) SetName(v string) *InstitutionTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InstitutionTypeUpdate) SetNillableName(v *string) *InstitutionTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *InstitutionTypeUpdate) SetDeleted(v bool) *InstitutionTypeUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *InstitutionTypeUpdate) SetNillableDeleted(v *bool) *InstitutionTypeUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// AddInstitutionIDs adds the "institutions" edge to the Institution entity by IDs.
func (_u *InstitutionTypeUpdate) AddInstitutionIDs(ids ...uuid.UUID) *InstitutionTypeUpdate {
	_u.mutation.AddInstitutionIDs(ids...)
	return _u
}

// AddInstitutions adds the "institutions" edges to the Institution entity.
func (_u *InstitutionTypeUpdate) AddInstitutions(v ...*Institution) *InstitutionTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstitutionIDs(ids...)
}

// Mutation returns the InstitutionTypeMutation object of the builder.
func (_u *InstitutionTypeUpdate) Mutation() *InstitutionTypeMutation {
	return _u.mutation
}

// ClearInstitutions clears all "institutions" edges to the Institution entity.
func (_u *InstitutionTypeUpdate) ClearInstitutions() *InstitutionTypeUpdate {
	_u.mutation.ClearInstitutions()
	return _u
}

// RemoveInstitutionIDs removes the "institutions" edge to Institution entities by IDs.
func (_u *InstitutionTypeUpdate) RemoveInstitutionIDs(ids ...uuid.UUID) *InstitutionTypeUpdate {
	_u.mutation.RemoveInstitutionIDs(ids...)
	return _u
}

// RemoveInstitutions removes "institutions" edges to Institution entities.
func (_u *InstitutionTypeUpdate) RemoveInstitutions(v ...*Institution) *InstitutionTypeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstitutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstitutionTypeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstitutionTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstitutionTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstitutionTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstitutionTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := institutiontype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InstitutionType.name": %w`, err)}
		}
	}
	return nil
}

func (_u *InstitutionTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(institutiontype.Table, institutiontype.Columns, sqlgraph.NewFieldSpec(institutiontype.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(institutiontype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(institutiontype.FieldDeleted, field.TypeBool, value)
	}
	if _u.mutation.InstitutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   institutiontype.InstitutionsTable,
			Columns: []string{institutiontype.InstitutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstitutionsIDs(); len(nodes) > 0 && !_u.mutation.InstitutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   institutiontype.InstitutionsTable,
			Columns: []string{institutiontype.InstitutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstitutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   institutiontype.InstitutionsTable,
			Columns: []string{institutiontype.InstitutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{institutiontype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstitutionTypeUpdateOne is the builder for updating a single InstitutionType entity.
type InstitutionTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstitutionTypeMutation
}

// SetName sets the "name" field.
func (_u *InstitutionTypeUpdateOne) SetName(v string) *InstitutionTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InstitutionTypeUpdateOne) SetNillableName(v *string) *InstitutionTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *InstitutionTypeUpdateOne) SetDeleted(v bool) *InstitutionTypeUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *InstitutionTypeUpdateOne) SetNillableDeleted(v *bool) *InstitutionTypeUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// AddInstitutionIDs adds the "institutions" edge to the Institution entity by IDs.
func (_u *InstitutionTypeUpdateOne) AddInstitutionIDs(ids ...uuid.UUID) *InstitutionTypeUpdateOne {
	_u.mutation.AddInstitutionIDs(ids...)
	return _u
}

// AddInstitutions adds the "institutions" edges to the Institution entity.
func (_u *InstitutionTypeUpdateOne) AddInstitutions(v ...*Institution) *InstitutionTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInstitutionIDs(ids...)
}

// Mutation returns the InstitutionTypeMutation object of the builder.
func (_u *InstitutionTypeUpdateOne) Mutation() *InstitutionTypeMutation {
	return _u.mutation
}

// ClearInstitutions clears all "institutions" edges to the Institution entity.
func (_u *InstitutionTypeUpdateOne) ClearInstitutions() *InstitutionTypeUpdateOne {
	_u.mutation.ClearInstitutions()
	return _u
}

// RemoveInstitutionIDs removes the "institutions" edge to Institution entities by IDs.
func (_u *InstitutionTypeUpdateOne) RemoveInstitutionIDs(ids ...uuid.UUID) *InstitutionTypeUpdateOne {
	_u.mutation.RemoveInstitutionIDs(ids...)
	return _u
}

// RemoveInstitutions removes "institutions" edges to Institution entities.
func (_u *InstitutionTypeUpdateOne) RemoveInstitutions(v ...*Institution) *InstitutionTypeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInstitutionIDs(ids...)
}

// Where appends a list predicates to the InstitutionTypeUpdate builder.
func (_u *InstitutionTypeUpdateOne) Where(ps ...predicate.InstitutionType) *InstitutionTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstitutionTypeUpdateOne) Select(field string, fields ...string) *InstitutionTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InstitutionType entity.
func (_u *InstitutionTypeUpdateOne) Save(ctx context.Context) (*InstitutionType, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstitutionTypeUpdateOne) SaveX(ctx context.Context) *InstitutionType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstitutionTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstitutionTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstitutionTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := institutiontype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InstitutionType.name": %w`, err)}
		}
	}
	return nil
}

func (_u *InstitutionTypeUpdateOne) sqlSave(ctx context.Context) (_node *InstitutionType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(institutiontype.Table, institutiontype.Columns, sqlgraph.NewFieldSpec(institutiontype.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InstitutionType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, institutiontype.FieldID)
		for _, f := range fields {
			if !institutiontype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != institutiontype.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(institutiontype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(institutiontype.FieldDeleted, field.TypeBool, value)
	}
	if _u.mutation.InstitutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   institutiontype.InstitutionsTable,
			Columns: []string{institutiontype.InstitutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInstitutionsIDs(); len(nodes) > 0 && !_u.mutation.InstitutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   institutiontype.InstitutionsTable,
			Columns: []string{institutiontype.InstitutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstitutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   institutiontype.InstitutionsTable,
			Columns: []string{institutiontype.InstitutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InstitutionType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{institutiontype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
