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
	"github.com/brunoqueiroz/curricula-admin/gen/ent/standarditem"
)

// StandardItemUpdate is the builder for updating StandardItem entities.
type StandardItemUpdate struct {
	config
	hooks    []Hook
	mutation *StandardItemMutation
}

// Where appends a list predicates to the StandardItemUpdate builder.
func (_u *StandardItemUpdate) Where(ps ...predicate.StandardItem) *StandardItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *StandardItemUpdate) SetCode(v string) *StandardItemUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *StandardItemUpdate) SetNillableCode(v *string) *StandardItemUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StandardItemUpdate) SetSubject(v string) *StandardItemUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StandardItemUpdate) SetNillableSubject(v *string) *StandardItemUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *StandardItemUpdate) ClearSubject() *StandardItemUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetDescription sets the "description" field.
func (_u *StandardItemUpdate) SetDescription(v string) *StandardItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StandardItemUpdate) SetNillableDescription(v *string) *StandardItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StandardItemUpdate) ClearDescription() *StandardItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *StandardItemUpdate) SetGradeLevel(v string) *StandardItemUpdate {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *StandardItemUpdate) SetNillableGradeLevel(v *string) *StandardItemUpdate {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// ClearGradeLevel clears the value of the "grade_level" field.
func (_u *StandardItemUpdate) ClearGradeLevel() *StandardItemUpdate {
	_u.mutation.ClearGradeLevel()
	return _u
}

// SetThematicUnit sets the "thematic_unit" field.
func (_u *StandardItemUpdate) SetThematicUnit(v string) *StandardItemUpdate {
	_u.mutation.SetThematicUnit(v)
	return _u
}

// SetNillableThematicUnit sets the "thematic_unit" field if the given value is not nil.
func (_u *StandardItemUpdate) SetNillableThematicUnit(v *string) *StandardItemUpdate {
	if v != nil {
		_u.SetThematicUnit(*v)
	}
	return _u
}

// ClearThematicUnit clears the value of the "thematic_unit" field.
func (_u *StandardItemUpdate) ClearThematicUnit() *StandardItemUpdate {
	_u.mutation.ClearThematicUnit()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *StandardItemUpdate) SetDeleted(v bool) *StandardItemUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *StandardItemUpdate) SetNillableDeleted(v *bool) *StandardItemUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StandardItemUpdate) SetCreatedAt(v time.Time) *StandardItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StandardItemUpdate) SetNillableCreatedAt(v *time.Time) *StandardItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StandardItemUpdate) SetUpdatedAt(v time.Time) *StandardItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StandardItemMutation object of the builder.
func (_u *StandardItemUpdate) Mutation() *StandardItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StandardItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandardItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StandardItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandardItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StandardItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := standarditem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandardItemUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := standarditem.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "StandardItem.code": %w`, err)}
		}
	}
	return nil
}

func (_u *StandardItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(standarditem.Table, standarditem.Columns, sqlgraph.NewFieldSpec(standarditem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(standarditem.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(standarditem.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(standarditem.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(standarditem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(standarditem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(standarditem.FieldGradeLevel, field.TypeString, value)
	}
	if _u.mutation.GradeLevelCleared() {
		_spec.ClearField(standarditem.FieldGradeLevel, field.TypeString)
	}
	if value, ok := _u.mutation.ThematicUnit(); ok {
		_spec.SetField(standarditem.FieldThematicUnit, field.TypeString, value)
	}
	if _u.mutation.ThematicUnitCleared() {
		_spec.ClearField(standarditem.FieldThematicUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(standarditem.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(standarditem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(standarditem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{standarditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StandardItemUpdateOne is the builder for updating a single StandardItem entity.
type StandardItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StandardItemMutation
}

// SetCode sets the "code" field.
func (_u *StandardItemUpdateOne) SetCode(v string) *StandardItemUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *StandardItemUpdateOne) SetNillableCode(v *string) *StandardItemUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *StandardItemUpdateOne) SetSubject(v string) *StandardItemUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *StandardItemUpdateOne) SetNillableSubject(v *string) *StandardItemUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *StandardItemUpdateOne) ClearSubject() *StandardItemUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetDescription sets the "description" field.
func (_u *StandardItemUpdateOne) SetDescription(v string) *StandardItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StandardItemUpdateOne) SetNillableDescription(v *string) *StandardItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StandardItemUpdateOne) ClearDescription() *StandardItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetGradeLevel sets the "grade_level" field.
func (_u *StandardItemUpdateOne) SetGradeLevel(v string) *StandardItemUpdateOne {
	_u.mutation.SetGradeLevel(v)
	return _u
}

// SetNillableGradeLevel sets the "grade_level" field if the given value is not nil.
func (_u *StandardItemUpdateOne) SetNillableGradeLevel(v *string) *StandardItemUpdateOne {
	if v != nil {
		_u.SetGradeLevel(*v)
	}
	return _u
}

// ClearGradeLevel clears the value of the "grade_level" field.
func (_u *StandardItemUpdateOne) ClearGradeLevel() *StandardItemUpdateOne {
	_u.mutation.ClearGradeLevel()
	return _u
}

// SetThematicUnit sets the "thematic_unit" field.
func (_u *StandardItemUpdateOne) SetThematicUnit(v string) *StandardItemUpdateOne {
	_u.mutation.SetThematicUnit(v)
	return _u
}

// SetNillableThematicUnit sets the "thematic_unit" field if the given value is not nil.
func (_u *StandardItemUpdateOne) SetNillableThematicUnit(v *string) *StandardItemUpdateOne {
	if v != nil {
		_u.SetThematicUnit(*v)
	}
	return _u
}

// ClearThematicUnit clears the value of the "thematic_unit" field.
func (_u *StandardItemUpdateOne) ClearThematicUnit() *StandardItemUpdateOne {
	_u.mutation.ClearThematicUnit()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *StandardItemUpdateOne) SetDeleted(v bool) *StandardItemUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *StandardItemUpdateOne) SetNillableDeleted(v *bool) *StandardItemUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StandardItemUpdateOne) SetCreatedAt(v time.Time) *StandardItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StandardItemUpdateOne) SetNillableCreatedAt(v *time.Time) *StandardItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StandardItemUpdateOne) SetUpdatedAt(v time.Time) *StandardItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StandardItemMutation object of the builder.
func (_u *StandardItemUpdateOne) Mutation() *StandardItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the StandardItemUpdate builder.
func (_u *StandardItemUpdateOne) Where(ps ...predicate.StandardItem) *StandardItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StandardItemUpdateOne) Select(field string, fields ...string) *StandardItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StandardItem entity.
func (_u *StandardItemUpdateOne) Save(ctx context.Context) (*StandardItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StandardItemUpdateOne) SaveX(ctx context.Context) *StandardItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StandardItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StandardItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StandardItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := standarditem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StandardItemUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := standarditem.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "StandardItem.code": %w`, err)}
		}
	}
	return nil
}

func (_u *StandardItemUpdateOne) sqlSave(ctx context.Context) (_node *StandardItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(standarditem.Table, standarditem.Columns, sqlgraph.NewFieldSpec(standarditem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StandardItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, standarditem.FieldID)
		for _, f := range fields {
			if !standarditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != standarditem.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(standarditem.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(standarditem.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(standarditem.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(standarditem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(standarditem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GradeLevel(); ok {
		_spec.SetField(standarditem.FieldGradeLevel, field.TypeString, value)
	}
	if _u.mutation.GradeLevelCleared() {
		_spec.ClearField(standarditem.FieldGradeLevel, field.TypeString)
	}
	if value, ok := _u.mutation.ThematicUnit(); ok {
		_spec.SetField(standarditem.FieldThematicUnit, field.TypeString, value)
	}
	if _u.mutation.ThematicUnitCleared() {
		_spec.ClearField(standarditem.FieldThematicUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(standarditem.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(standarditem.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(standarditem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StandardItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{standarditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
