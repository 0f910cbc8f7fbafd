// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institution"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/google/uuid"
)

// InstitutionCreate is the builder for creating a Institution entity.
type InstitutionCreate struct {
	config
	mutation *InstitutionMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *InstitutionCreate) SetName(v string) *InstitutionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTypeID sets the "type_id" field.
func (_c *InstitutionCreate) SetTypeID(v uuid.UUID) *InstitutionCreate {
	_c.mutation.SetTypeID(v)
	return _c
}

// SetNillableTypeID sets the "type_id" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableTypeID(v *uuid.UUID) *InstitutionCreate {
	if v != nil {
		_c.SetTypeID(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *InstitutionCreate) SetCity(v string) *InstitutionCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableCity(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *InstitutionCreate) SetCountry(v string) *InstitutionCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableCountry(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *InstitutionCreate) SetPostalCode(v string) *InstitutionCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillablePostalCode(v *string) *InstitutionCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *InstitutionCreate) SetDeleted(v bool) *InstitutionCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableDeleted(v *bool) *InstitutionCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstitutionCreate) SetCreatedAt(v time.Time) *InstitutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableCreatedAt(v *time.Time) *InstitutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InstitutionCreate) SetUpdatedAt(v time.Time) *InstitutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableUpdatedAt(v *time.Time) *InstitutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InstitutionCreate) SetID(v uuid.UUID) *InstitutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InstitutionCreate) SetNillableID(v *uuid.UUID) *InstitutionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetInstitutionTypeID sets the "institution_type" edge to the InstitutionType entity by ID.
func (_c *InstitutionCreate) SetInstitutionTypeID(id uuid.UUID) *InstitutionCreate {
	_c.mutation.SetInstitutionTypeID(id)
	return _c
}

// SetNillableInstitutionTypeID sets the "institution_type" edge to the InstitutionType entity by ID if the given value is not nil.
func (_c *InstitutionCreate) SetNillableInstitutionTypeID(id *uuid.UUID) *InstitutionCreate {
	if id != nil {
		_c = _c.SetInstitutionTypeID(*id)
	}
	return _c
}

// SetInstitutionType sets the "institution_type" edge to the InstitutionType entity.
func (_c *InstitutionCreate) SetInstitutionType(v *InstitutionType) *InstitutionCreate {
	return _c.SetInstitutionTypeID(v.ID)
}

// Mutation returns the InstitutionMutation object of the builder.
func (_c *InstitutionCreate) Mutation() *InstitutionMutation {
	return _c.mutation
}

// Save creates the Institution in the database.
func (_c *InstitutionCreate) Save(ctx context.Context) (*Institution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstitutionCreate) SaveX(ctx context.Context) *Institution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstitutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstitutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstitutionCreate) defaults() {
	if _, ok := _c.mutation.Deleted(); !ok {
		v := institution.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := institution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := institution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := institution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstitutionCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Institution.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := institution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Institution.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "Institution.deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Institution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Institution.updated_at"`)}
	}
	return nil
}

func (_c *InstitutionCreate) sqlSave(ctx context.Context) (*Institution, error) {
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

func (_c *InstitutionCreate) createSpec() (*Institution, *sqlgraph.CreateSpec) {
	var (
		_node = &Institution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(institution.Table, sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(institution.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(institution.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(institution.FieldCountry, field.TypeString, value)
		_node.Country = &value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(institution.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = &value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(institution.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(institution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(institution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InstitutionTypeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   institution.InstitutionTypeTable,
			Columns: []string{institution.InstitutionTypeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(institutiontype.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TypeID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InstitutionCreateBulk is the builder for creating many Institution entities in bulk.
type InstitutionCreateBulk struct {
	config
	err      error
	builders []*InstitutionCreate
}

// Save creates the Institution entities in the database.
func (_c *InstitutionCreateBulk) Save(ctx context.Context) ([]*Institution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Institution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstitutionMutation)
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
func (_c *InstitutionCreateBulk) SaveX(ctx context.Context) []*Institution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstitutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstitutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
