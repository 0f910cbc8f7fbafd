// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institution"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/google/uuid"
)

// InstitutionTypeCreate is the builder for creating a InstitutionType entity.
type InstitutionTypeCreate struct {
	config
	mutation *InstitutionTypeMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *InstitutionTypeCreate) SetName(v string) *InstitutionTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *InstitutionTypeCreate) SetDeleted(v bool) *InstitutionTypeCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *InstitutionTypeCreate) SetNillableDeleted(v *bool) *InstitutionTypeCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InstitutionTypeCreate) SetID(v uuid.UUID) *InstitutionTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InstitutionTypeCreate) SetNillableID(v *uuid.UUID) *InstitutionTypeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInstitutionIDs adds the "institutions" edge to the Institution entity by IDs.
func (_c *InstitutionTypeCreate) AddInstitutionIDs(ids ...uuid.UUID) *InstitutionTypeCreate {
	_c.mutation.AddInstitutionIDs(ids...)
	return _c
}

// AddInstitutions adds the "institutions" edges to the Institution entity.
func (_c *InstitutionTypeCreate) AddInstitutions(v ...*Institution) *InstitutionTypeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInstitutionIDs(ids...)
}

// Mutation returns the InstitutionTypeMutation object of the builder.
func (_c *InstitutionTypeCreate) Mutation() *InstitutionTypeMutation {
	return _c.mutation
}

// Save creates the InstitutionType in the database.
func (_c *InstitutionTypeCreate) Save(ctx context.Context) (*InstitutionType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstitutionTypeCreate) SaveX(ctx context.Context) *InstitutionType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstitutionTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstitutionTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstitutionTypeCreate) defaults() {
	if _, ok := _c.mutation.Deleted(); !ok {
		v := institutiontype.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := institutiontype.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstitutionTypeCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "InstitutionType.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := institutiontype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InstitutionType.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "InstitutionType.deleted"`)}
	}
	return nil
}

func (_c *InstitutionTypeCreate) sqlSave(ctx context.Context) (*InstitutionType, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InstitutionTypeCreate) createSpec() (*InstitutionType, *sqlgraph.CreateSpec) {
	var (
		_node = &InstitutionType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(institutiontype.Table, sqlgraph.NewFieldSpec(institutiontype.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(institutiontype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(institutiontype.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if nodes := _c.mutation.InstitutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InstitutionTypeCreateBulk is the builder for creating many InstitutionType entities in bulk.
type InstitutionTypeCreateBulk struct {
	config
	err      error
	builders []*InstitutionTypeCreate
}

// Save creates the InstitutionType entities in the database.
func (_c *InstitutionTypeCreateBulk) Save(ctx context.Context) ([]*InstitutionType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InstitutionType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstitutionTypeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InstitutionTypeCreateBulk) SaveX(ctx context.Context) []*InstitutionType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstitutionTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstitutionTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
