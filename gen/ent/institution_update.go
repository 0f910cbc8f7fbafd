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
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institution"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/predicate"
	"github.com/google/uuid"
)

// InstitutionUpdate is the builder for updating Institution entities.
type InstitutionUpdate struct {
	config
	hooks    []Hook
	mutation *InstitutionMutation
}

// Where appends a list predicates to the InstitutionUpdate builder.
func (_u *InstitutionUpdate) Where(ps ...predicate.Institution) *InstitutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *InstitutionUpdate) SetName(v string) *InstitutionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableName(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTypeID sets the "type_id" field.
func (_u *InstitutionUpdate) SetTypeID(v uuid.UUID) *InstitutionUpdate {
	_u.mutation.SetTypeID(v)
	return _u
}

// SetNillableTypeID sets the "type_id" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableTypeID(v *uuid.UUID) *InstitutionUpdate {
	if v != nil {
		_u.SetTypeID(*v)
	}
	return _u
}

// ClearTypeID clears the value of the "type_id" field.
func (_u *InstitutionUpdate) ClearTypeID() *InstitutionUpdate {
	_u.mutation.ClearTypeID()
	return _u
}

// SetCity sets the "city" field.
func (_u *InstitutionUpdate) SetCity(v string) *InstitutionUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableCity(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *InstitutionUpdate) ClearCity() *InstitutionUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetCountry sets the "country" field.
func (_u *InstitutionUpdate) SetCountry(v string) *InstitutionUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableCountry(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *InstitutionUpdate) ClearCountry() *InstitutionUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *InstitutionUpdate) SetPostalCode(v string) *InstitutionUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillablePostalCode(v *string) *InstitutionUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *InstitutionUpdate) ClearPostalCode() *InstitutionUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *InstitutionUpdate) SetDeleted(v bool) *InstitutionUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableDeleted(v *bool) *InstitutionUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InstitutionUpdate) SetCreatedAt(v time.Time) *InstitutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableCreatedAt(v *time.Time) *InstitutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstitutionUpdate) SetUpdatedAt(v time.Time) *InstitutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInstitutionTypeID sets the "institution_type" edge to the InstitutionType entity by ID.
func (_u *InstitutionUpdate) SetInstitutionTypeID(id uuid.UUID) *InstitutionUpdate {
	_u.mutation.SetInstitutionTypeID(id)
	return _u
}

// SetNillableInstitutionTypeID sets the "institution_type" edge to the InstitutionType entity by ID if the given value is not nil.
func (_u *InstitutionUpdate) SetNillableInstitutionTypeID(id *uuid.UUID) *InstitutionUpdate {
	if id != nil {
		_u = _u.SetInstitutionTypeID(*id)
	}
	return _u
}

// SetInstitutionType sets the "institution_type" edge to the InstitutionType entity.
func (_u *InstitutionUpdate) SetInstitutionType(v *InstitutionType) *InstitutionUpdate {
	return _u.SetInstitutionTypeID(v.ID)
}

// Mutation returns the InstitutionMutation object of the builder.
func (_u *InstitutionUpdate) Mutation() *InstitutionMutation {
	return _u.mutation
}

// ClearInstitutionType clears the "institution_type" edge to the InstitutionType entity.
func (_u *InstitutionUpdate) ClearInstitutionType() *InstitutionUpdate {
	_u.mutation.ClearInstitutionType()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstitutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstitutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstitutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstitutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstitutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := institution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstitutionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := institution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Institution.name": %w`, err)}
		}
	}
	return nil
}

func (_u *InstitutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(institution.Table, institution.Columns, sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(institution.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(institution.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(institution.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(institution.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(institution.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(institution.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(institution.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(institution.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(institution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(institution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InstitutionTypeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstitutionTypeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{institution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstitutionUpdateOne is the builder for updating a single Institution entity.
type InstitutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstitutionMutation
}

// SetName sets the "name" field.
func (_u *InstitutionUpdateOne) SetName(v string) *InstitutionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableName(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTypeID sets the "type_id" field.
func (_u *InstitutionUpdateOne) SetTypeID(v uuid.UUID) *InstitutionUpdateOne {
	_u.mutation.SetTypeID(v)
	return _u
}

// SetNillableTypeID sets the "type_id" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableTypeID(v *uuid.UUID) *InstitutionUpdateOne {
	if v != nil {
		_u.SetTypeID(*v)
	}
	return _u
}

// ClearTypeID clears the value of the "type_id" field.
func (_u *InstitutionUpdateOne) ClearTypeID() *InstitutionUpdateOne {
	_u.mutation.ClearTypeID()
	return _u
}

// SetCity sets the "city" field.
func (_u *InstitutionUpdateOne) SetCity(v string) *InstitutionUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableCity(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *InstitutionUpdateOne) ClearCity() *InstitutionUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetCountry sets the "country" field.
func (_u *InstitutionUpdateOne) SetCountry(v string) *InstitutionUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableCountry(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *InstitutionUpdateOne) ClearCountry() *InstitutionUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *InstitutionUpdateOne) SetPostalCode(v string) *InstitutionUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillablePostalCode(v *string) *InstitutionUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *InstitutionUpdateOne) ClearPostalCode() *InstitutionUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *InstitutionUpdateOne) SetDeleted(v bool) *InstitutionUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableDeleted(v *bool) *InstitutionUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InstitutionUpdateOne) SetCreatedAt(v time.Time) *InstitutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableCreatedAt(v *time.Time) *InstitutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InstitutionUpdateOne) SetUpdatedAt(v time.Time) *InstitutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetInstitutionTypeID sets the "institution_type" edge to the InstitutionType entity by ID.
func (_u *InstitutionUpdateOne) SetInstitutionTypeID(id uuid.UUID) *InstitutionUpdateOne {
	_u.mutation.SetInstitutionTypeID(id)
	return _u
}

// SetNillableInstitutionTypeID sets the "institution_type" edge to the InstitutionType entity by ID if the given value is not nil.
func (_u *InstitutionUpdateOne) SetNillableInstitutionTypeID(id *uuid.UUID) *InstitutionUpdateOne {
	if id != nil {
		_u = _u.SetInstitutionTypeID(*id)
	}
	return _u
}

// SetInstitutionType sets the "institution_type" edge to the InstitutionType entity.
func (_u *InstitutionUpdateOne) SetInstitutionType(v *InstitutionType) *InstitutionUpdateOne {
	return _u.SetInstitutionTypeID(v.ID)
}

// Mutation returns the InstitutionMutation object of the builder.
func (_u *InstitutionUpdateOne) Mutation() *InstitutionMutation {
	return _u.mutation
}

// ClearInstitutionType clears the "institution_type" edge to the InstitutionType entity.
func (_u *InstitutionUpdateOne) ClearInstitutionType() *InstitutionUpdateOne {
	_u.mutation.ClearInstitutionType()
	return _u
}

// Where appends a list predicates to the InstitutionUpdate builder.
func (_u *InstitutionUpdateOne) Where(ps ...predicate.Institution) *InstitutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstitutionUpdateOne) Select(field string, fields ...string) *InstitutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Institution entity.
func (_u *InstitutionUpdateOne) Save(ctx context.Context) (*Institution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstitutionUpdateOne) SaveX(ctx context.Context) *Institution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstitutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstitutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InstitutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := institution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstitutionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := institution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Institution.name": %w`, err)}
		}
	}
	return nil
}

func (_u *InstitutionUpdateOne) sqlSave(ctx context.Context) (_node *Institution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(institution.Table, institution.Columns, sqlgraph.NewFieldSpec(institution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Institution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, institution.FieldID)
		for _, f := range fields {
			if !institution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != institution.FieldID {
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
		_spec.SetField(institution.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(institution.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(institution.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(institution.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(institution.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(institution.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(institution.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(institution.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(institution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(institution.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.InstitutionTypeCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstitutionTypeIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Institution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{institution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
