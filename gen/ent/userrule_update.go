// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/predicate"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/userrule"
)

// UserRuleUpdate is the builder for updating UserRule entities.
type UserRuleUpdate struct {
	config
	hooks    []Hook
	mutation *UserRuleMutation
}

// Where appends a list predicates to the UserRuleUpdate builder.
func (_u *UserRuleUpdate) Where(ps ...predicate.UserRule) *UserRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *UserRuleUpdate) SetRuleName(v string) *UserRuleUpdate {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *UserRuleUpdate) SetNillableRuleName(v *string) *UserRuleUpdate {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *UserRuleUpdate) SetDescription(v string) *UserRuleUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *UserRuleUpdate) SetNillableDescription(v *string) *UserRuleUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *UserRuleUpdate) ClearDescription() *UserRuleUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *UserRuleUpdate) SetEnabled(v bool) *UserRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *UserRuleUpdate) SetNillableEnabled(v *bool) *UserRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *UserRuleUpdate) SetDeleted(v bool) *UserRuleUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *UserRuleUpdate) SetNillableDeleted(v *bool) *UserRuleUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserRuleUpdate) SetCreatedAt(v time.Time) *UserRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserRuleUpdate) SetNillableCreatedAt(v *time.Time) *UserRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserRuleUpdate) SetUpdatedAt(v time.Time) *UserRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserRuleMutation object of the builder.
func (_u *UserRuleUpdate) Mutation() *UserRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserRuleUpdate) check() error {
	if v, ok := _u.mutation.RuleName(); ok {
		if err := userrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "UserRule.rule_name": %w`, err)}
		}
	}
	return nil
}

func (_u *UserRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userrule.Table, userrule.Columns, sqlgraph.NewFieldSpec(userrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(userrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(userrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(userrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(userrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(userrule.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(userrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserRuleUpdateOne is the builder for updating a single UserRule entity.
type UserRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserRuleMutation
}

// SetRuleName sets the "rule_name" field.
func (_u *UserRuleUpdateOne) SetRuleName(v string) *UserRuleUpdateOne {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *UserRuleUpdateOne) SetNillableRuleName(v *string) *UserRuleUpdateOne {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *UserRuleUpdateOne) SetDescription(v string) *UserRuleUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *UserRuleUpdateOne) SetNillableDescription(v *string) *UserRuleUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *UserRuleUpdateOne) ClearDescription() *UserRuleUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *UserRuleUpdateOne) SetEnabled(v bool) *UserRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *UserRuleUpdateOne) SetNillableEnabled(v *bool) *UserRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *UserRuleUpdateOne) SetDeleted(v bool) *UserRuleUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *UserRuleUpdateOne) SetNillableDeleted(v *bool) *UserRuleUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UserRuleUpdateOne) SetCreatedAt(v time.Time) *UserRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UserRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *UserRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserRuleUpdateOne) SetUpdatedAt(v time.Time) *UserRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserRuleMutation object of the builder.
func (_u *UserRuleUpdateOne) Mutation() *UserRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserRuleUpdate builder.
func (_u *UserRuleUpdateOne) Where(ps ...predicate.UserRule) *UserRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserRuleUpdateOne) Select(field string, fields ...string) *UserRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserRule entity.
func (_u *UserRuleUpdateOne) Save(ctx context.Context) (*UserRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserRuleUpdateOne) SaveX(ctx context.Context) *UserRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserRuleUpdateOne) check() error {
	if v, ok := _u.mutation.RuleName(); ok {
		if err := userrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "UserRule.rule_name": %w`, err)}
		}
	}
	return nil
}

func (_u *UserRuleUpdateOne) sqlSave(ctx context.Context) (_node *UserRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userrule.Table, userrule.Columns, sqlgraph.NewFieldSpec(userrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userrule.FieldID)
		for _, f := range fields {
			if !userrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userrule.FieldID {
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
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(userrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(userrule.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(userrule.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(userrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(userrule.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(userrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userrule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
