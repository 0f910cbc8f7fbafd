// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/standarditem"
	"github.com/google/uuid"
)

// StandardItemCreate is the builder for creating a StandardItem entity.
type StandardItemCreate struct {
	config
	mutation *StandardItemMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *StandardItemCreate) SetCode(v string) *StandardItemCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *StandardItemCreate) SetSubject(v string) *StandardItemCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *StandardItemCreate) SetNillableSubject(v *string) *StandardItemCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *StandardItemCreate) SetDescription(v string) *StandardItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StandardItemCreate) SetNillableDescription(v *string) *StandardItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetGradeLevel sets the "grade_level" field.
func (_c *StandardItemCreate) SetGradeLevel(v string) *StandardItemCreate {
	_c.mutation.SetGradeLevel(v)
	return _c
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_c *StandardItemCreate) SetNillableGradeLevel(v *string) *StandardItemCreate {
	if v != nil {
		_c.SetGradeLevel(*v)
	}
	return _c
}

// SetThematicUnit sets the "thematic_unit" field.
func (_c *StandardItemCreate) SetThematicUnit(v string) *StandardItemCreate {
	_c.mutation.SetThematicUnit(v)
	return _c
}

// SetNillableThematicUnit sets the "thematic_unit" field if the given value is not nil.
func (_c *StandardItemCreate) SetNillableThematicUnit(v *string) *StandardItemCreate {
	if v != nil {
		_c.SetThematicUnit(*v)
	}
	return _c
}

// SetDeleted sets the "deleted" field.
func (_c *StandardItemCreate) SetDeleted(v bool) *StandardItemCreate {
	_c.mutation.SetDeleted(v)
	return _c
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_c *StandardItemCreate) SetNillableDeleted(v *bool) *StandardItemCreate {
	if v != nil {
		_c.SetDeleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StandardItemCreate) SetCreatedAt(v time.Time) *StandardItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StandardItemCreate) SetNillableCreatedAt(v *time.Time) *StandardItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StandardItemCreate) SetUpdatedAt(v time.Time) *StandardItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StandardItemCreate) SetNillableUpdatedAt(v *time.Time) *StandardItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StandardItemCreate) SetID(v uuid.UUID) *StandardItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StandardItemCreate) SetNillableID(v *uuid.UUID) *StandardItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StandardItemMutation object of the builder.
func (_c *StandardItemCreate) Mutation() *StandardItemMutation {
	return _c.mutation
}

// Save creates the StandardItem in the database.
func (_c *StandardItemCreate) Save(ctx context.Context) (*StandardItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StandardItemCreate) SaveX(ctx context.Context) *StandardItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandardItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandardItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StandardItemCreate) defaults() {
	if _, ok := _c.mutation.Subject(); !ok {
		v := standarditem.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := standarditem.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.GradeLevel(); !ok {
		v := standarditem.DefaultGradeLevel
		_c.mutation.SetGradeLevel(v)
	}
	if _, ok := _c.mutation.ThematicUnit(); !ok {
		v := standarditem.DefaultThematicUnit
		_c.mutation.SetThematicUnit(v)
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		v := standarditem.DefaultDeleted
		_c.mutation.SetDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := standarditem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := standarditem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := standarditem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StandardItemCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "StandardItem.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := standarditem.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "StandardItem.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "StandardItem.deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StandardItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StandardItem.updated_at"`)}
	}
	return nil
}

func (_c *StandardItemCreate) sqlSave(ctx context.Context) (*StandardItem, error) {
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

func (_c *StandardItemCreate) createSpec() (*StandardItem, *sqlgraph.CreateSpec) {
	var (
		_node = &StandardItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(standarditem.Table, sqlgraph.NewFieldSpec(standarditem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(standarditem.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(standarditem.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(standarditem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.GradeLevel(); ok {
		_spec.SetField(standarditem.FieldGradeLevel, field.TypeString, value)
		_node.GradeLevel = value
	}
	if value, ok := _c.mutation.ThematicUnit(); ok {
		_spec.SetField(standarditem.FieldThematicUnit, field.TypeString, value)
		_node.ThematicUnit = value
	}
	if value, ok := _c.mutation.Deleted(); ok {
		_spec.SetField(standarditem.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(standarditem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(standarditem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StandardItemCreateBulk is the builder for creating many StandardItem entities in bulk.
type StandardItemCreateBulk struct {
	config
	err      error
	builders []*StandardItemCreate
}

// Save creates the StandardItem entities in the database.
func (_c *StandardItemCreateBulk) Save(ctx context.Context) ([]*StandardItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StandardItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StandardItemMutation)
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
func (_c *StandardItemCreateBulk) SaveX(ctx context.Context) []*StandardItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StandardItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StandardItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
