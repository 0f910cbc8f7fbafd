// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institution"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/predicate"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/standarditem"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/userrule"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInstitution     = "Institution"
	TypeInstitutionType = "InstitutionType"
	TypeStandardItem    = "StandardItem"
	TypeUserRule        = "UserRule"
)

// InstitutionMutation represents an operation that mutates the Institution nodes in the graph.
type InstitutionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	name                    *string
	city                    *string
	country                 *string
	postal_code             *string
	deleted                 *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	institution_type        *uuid.UUID
	clearedinstitution_type bool
	done                    bool
	oldValue                func(context.Context) (*Institution, error)
	predicates              []predicate.Institution
}

var _ ent.Mutation = (*InstitutionMutation)(nil)

// institutionOption allows management of the mutation configuration using functional options.
type institutionOption func(*InstitutionMutation)

// newInstitutionMutation creates new mutation for the Institution entity.
func newInstitutionMutation(c config, op Op, opts ...institutionOption) *InstitutionMutation {
	m := &InstitutionMutation{
		config:        c,
		op:            op,
		typ:           TypeInstitution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstitutionID sets the ID field of the mutation.
func withInstitutionID(id uuid.UUID) institutionOption {
	return func(m *InstitutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Institution
		)
		m.oldValue = func(ctx context.Context) (*Institution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Institution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstitution sets the old Institution of the mutation.
func withInstitution(node *Institution) institutionOption {
	return func(m *InstitutionMutation) {
		m.oldValue = func(context.Context) (*Institution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstitutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstitutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Institution entities.
func (m *InstitutionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstitutionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstitutionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Institution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *InstitutionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InstitutionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Institution entity.
// If the Institution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InstitutionMutation) ResetName() {
	m.name = nil
}

// SetTypeID sets the "type_id" field.
func (m *InstitutionMutation) SetTypeID(u uuid.UUID) {
	m.institution_type = &u
}

// TypeID returns the value of the "type_id" field in the mutation.
func (m *InstitutionMutation) TypeID() (r uuid.UUID, exists bool) {
	v := m.institution_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTypeID returns the old "type_id" field's value of the Institution entity.
// If the Institution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionMutation) OldTypeID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypeID: %w", err)
	}
	return oldValue.TypeID, nil
}

// ClearTypeID clears the value of the "type_id" field.
func (m *InstitutionMutation) ClearTypeID() {
	m.institution_type = nil
	m.clearedFields[institution.FieldTypeID] = struct{}{}
}

// TypeIDCleared returns if the "type_id" field was cleared in this mutation.
func (m *InstitutionMutation) TypeIDCleared() bool {
	_, ok := m.clearedFields[institution.FieldTypeID]
	return ok
}

// ResetTypeID resets all changes to the "type_id" field.
func (m *InstitutionMutation) ResetTypeID() {
	m.institution_type = nil
	delete(m.clearedFields, institution.FieldTypeID)
}

// SetCity sets the "city" field.
func (m *InstitutionMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *InstitutionMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Institution entity.
// If the Institution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *InstitutionMutation) ClearCity() {
	m.city = nil
	m.clearedFields[institution.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *InstitutionMutation) CityCleared() bool {
	_, ok := m.clearedFields[institution.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *InstitutionMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, institution.FieldCity)
}

// SetCountry sets the "country" field.
func (m *InstitutionMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *InstitutionMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Institution entity.
// If the Institution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionMutation) OldCountry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *InstitutionMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[institution.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *InstitutionMutation) CountryCleared() bool {
	_, ok := m.clearedFields[institution.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *InstitutionMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, institution.FieldCountry)
}

// SetPostalCode sets the "postal_code" field.
func (m *InstitutionMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *InstitutionMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the Institution entity.
// If the Institution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionMutation) OldPostalCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *InstitutionMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[institution.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *InstitutionMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[institution.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *InstitutionMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, institution.FieldPostalCode)
}

// SetDeleted sets the "deleted" field.
func (m *InstitutionMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *InstitutionMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the Institution entity.
// If the Institution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *InstitutionMutation) ResetDeleted() {
	m.deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InstitutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InstitutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Institution entity.
// If the Institution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InstitutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InstitutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InstitutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Institution entity.
// If the Institution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InstitutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetInstitutionTypeID sets the "institution_type" edge to the InstitutionType entity by id.
func (m *InstitutionMutation) SetInstitutionTypeID(id uuid.UUID) {
	m.institution_type = &id
}

// ClearInstitutionType clears the "institution_type" edge to the InstitutionType entity.
func (m *InstitutionMutation) ClearInstitutionType() {
	m.clearedinstitution_type = true
	m.clearedFields[institution.FieldTypeID] = struct{}{}
}

// InstitutionTypeCleared reports if the "institution_type" edge to the InstitutionType entity was cleared.
func (m *InstitutionMutation) InstitutionTypeCleared() bool {
	return m.TypeIDCleared() || m.clearedinstitution_type
}

// InstitutionTypeID returns the "institution_type" edge ID in the mutation.
func (m *InstitutionMutation) InstitutionTypeID() (id uuid.UUID, exists bool) {
	if m.institution_type != nil {
		return *m.institution_type, true
	}
	return
}

// InstitutionTypeIDs returns the "institution_type" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InstitutionTypeID instead. It exists only for internal usage by the builders.
func (m *InstitutionMutation) InstitutionTypeIDs() (ids []uuid.UUID) {
	if id := m.institution_type; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInstitutionType resets all changes to the "institution_type" edge.
func (m *InstitutionMutation) ResetInstitutionType() {
	m.institution_type = nil
	m.clearedinstitution_type = false
}

// Where appends a list predicates to the InstitutionMutation builder.
func (m *InstitutionMutation) Where(ps ...predicate.Institution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstitutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstitutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Institution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstitutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstitutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Institution).
func (m *InstitutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstitutionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, institution.FieldName)
	}
	if m.institution_type != nil {
		fields = append(fields, institution.FieldTypeID)
	}
	if m.city != nil {
		fields = append(fields, institution.FieldCity)
	}
	if m.country != nil {
		fields = append(fields, institution.FieldCountry)
	}
	if m.postal_code != nil {
		fields = append(fields, institution.FieldPostalCode)
	}
	if m.deleted != nil {
		fields = append(fields, institution.FieldDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, institution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, institution.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstitutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case institution.FieldName:
		return m.Name()
	case institution.FieldTypeID:
		return m.TypeID()
	case institution.FieldCity:
		return m.City()
	case institution.FieldCountry:
		return m.Country()
	case institution.FieldPostalCode:
		return m.PostalCode()
	case institution.FieldDeleted:
		return m.Deleted()
	case institution.FieldCreatedAt:
		return m.CreatedAt()
	case institution.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstitutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case institution.FieldName:
		return m.OldName(ctx)
	case institution.FieldTypeID:
		return m.OldTypeID(ctx)
	case institution.FieldCity:
		return m.OldCity(ctx)
	case institution.FieldCountry:
		return m.OldCountry(ctx)
	case institution.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case institution.FieldDeleted:
		return m.OldDeleted(ctx)
	case institution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case institution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Institution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstitutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case institution.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case institution.FieldTypeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypeID(v)
		return nil
	case institution.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case institution.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case institution.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case institution.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case institution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case institution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Institution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstitutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstitutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstitutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Institution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstitutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(institution.FieldTypeID) {
		fields = append(fields, institution.FieldTypeID)
	}
	if m.FieldCleared(institution.FieldCity) {
		fields = append(fields, institution.FieldCity)
	}
	if m.FieldCleared(institution.FieldCountry) {
		fields = append(fields, institution.FieldCountry)
	}
	if m.FieldCleared(institution.FieldPostalCode) {
		fields = append(fields, institution.FieldPostalCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstitutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstitutionMutation) ClearField(name string) error {
	switch name {
	case institution.FieldTypeID:
		m.ClearTypeID()
		return nil
	case institution.FieldCity:
		m.ClearCity()
		return nil
	case institution.FieldCountry:
		m.ClearCountry()
		return nil
	case institution.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	}
	return fmt.Errorf("unknown Institution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstitutionMutation) ResetField(name string) error {
	switch name {
	case institution.FieldName:
		m.ResetName()
		return nil
	case institution.FieldTypeID:
		m.ResetTypeID()
		return nil
	case institution.FieldCity:
		m.ResetCity()
		return nil
	case institution.FieldCountry:
		m.ResetCountry()
		return nil
	case institution.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case institution.FieldDeleted:
		m.ResetDeleted()
		return nil
	case institution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case institution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Institution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstitutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.institution_type != nil {
		edges = append(edges, institution.EdgeInstitutionType)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstitutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case institution.EdgeInstitutionType:
		if id := m.institution_type; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstitutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstitutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstitutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstitution_type {
		edges = append(edges, institution.EdgeInstitutionType)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstitutionMutation) EdgeCleared(name string) bool {
	switch name {
	case institution.EdgeInstitutionType:
		return m.clearedinstitution_type
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstitutionMutation) ClearEdge(name string) error {
	switch name {
	case institution.EdgeInstitutionType:
		m.ClearInstitutionType()
		return nil
	}
	return fmt.Errorf("unknown Institution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstitutionMutation) ResetEdge(name string) error {
	switch name {
	case institution.EdgeInstitutionType:
		m.ResetInstitutionType()
		return nil
	}
	return fmt.Errorf("unknown Institution edge %s", name)
}

// InstitutionTypeMutation represents an operation that mutates the InstitutionType nodes in the graph.
type InstitutionTypeMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	deleted             *bool
	clearedFields       map[string]struct{}
	institutions        map[uuid.UUID]struct{}
	removedinstitutions map[uuid.UUID]struct{}
	clearedinstitutions bool
	done                bool
	oldValue            func(context.Context) (*InstitutionType, error)
	predicates          []predicate.InstitutionType
}

var _ ent.Mutation = (*InstitutionTypeMutation)(nil)

// institutiontypeOption allows management of the mutation configuration using functional options.
type institutiontypeOption func(*InstitutionTypeMutation)

// newInstitutionTypeMutation creates new mutation for the InstitutionType entity.
func newInstitutionTypeMutation(c config, op Op, opts ...institutiontypeOption) *InstitutionTypeMutation {
	m := &InstitutionTypeMutation{
		config:        c,
		op:            op,
		typ:           TypeInstitutionType,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInstitutionTypeID sets the ID field of the mutation.
func withInstitutionTypeID(id uuid.UUID) institutiontypeOption {
	return func(m *InstitutionTypeMutation) {
		var (
			err   error
			once  sync.Once
			value *InstitutionType
		)
		m.oldValue = func(ctx context.Context) (*InstitutionType, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InstitutionType.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInstitutionType sets the old InstitutionType of the mutation.
func withInstitutionType(node *InstitutionType) institutiontypeOption {
	return func(m *InstitutionTypeMutation) {
		m.oldValue = func(context.Context) (*InstitutionType, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InstitutionTypeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InstitutionTypeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InstitutionType entities.
func (m *InstitutionTypeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InstitutionTypeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InstitutionTypeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InstitutionType.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *InstitutionTypeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InstitutionTypeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the InstitutionType entity.
// If the InstitutionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionTypeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InstitutionTypeMutation) ResetName() {
	m.name = nil
}

// SetDeleted sets the "deleted" field.
func (m *InstitutionTypeMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *InstitutionTypeMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the InstitutionType entity.
// If the InstitutionType object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InstitutionTypeMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *InstitutionTypeMutation) ResetDeleted() {
	m.deleted = nil
}

// AddInstitutionIDs adds the "institutions" edge to the Institution entity by ids.
func (m *InstitutionTypeMutation) AddInstitutionIDs(ids ...uuid.UUID) {
	if m.institutions == nil {
		m.institutions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.institutions[ids[i]] = struct{}{}
	}
}

// ClearInstitutions clears the "institutions" edge to the Institution entity.
func (m *InstitutionTypeMutation) ClearInstitutions() {
	m.clearedinstitutions = true
}

// InstitutionsCleared reports if the "institutions" edge to the Institution entity was cleared.
func (m *InstitutionTypeMutation) InstitutionsCleared() bool {
	return m.clearedinstitutions
}

// RemoveInstitutionIDs removes the "institutions" edge to the Institution entity by IDs.
func (m *InstitutionTypeMutation) RemoveInstitutionIDs(ids ...uuid.UUID) {
	if m.removedinstitutions == nil {
		m.removedinstitutions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.institutions, ids[i])
		m.removedinstitutions[ids[i]] = struct{}{}
	}
}

// RemovedInstitutions returns the removed IDs of the "institutions" edge to the Institution entity.
func (m *InstitutionTypeMutation) RemovedInstitutionsIDs() (ids []uuid.UUID) {
	for id := range m.removedinstitutions {
		ids = append(ids, id)
	}
	return
}

// InstitutionsIDs returns the "institutions" edge IDs in the mutation.
func (m *InstitutionTypeMutation) InstitutionsIDs() (ids []uuid.UUID) {
	for id := range m.institutions {
		ids = append(ids, id)
	}
	return
}

// ResetInstitutions resets all changes to the "institutions" edge.
func (m *InstitutionTypeMutation) ResetInstitutions() {
	m.institutions = nil
	m.clearedinstitutions = false
	m.removedinstitutions = nil
}

// Where appends a list predicates to the InstitutionTypeMutation builder.
func (m *InstitutionTypeMutation) Where(ps ...predicate.InstitutionType) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InstitutionTypeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InstitutionTypeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InstitutionType, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InstitutionTypeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InstitutionTypeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InstitutionType).
func (m *InstitutionTypeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InstitutionTypeMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, institutiontype.FieldName)
	}
	if m.deleted != nil {
		fields = append(fields, institutiontype.FieldDeleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InstitutionTypeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case institutiontype.FieldName:
		return m.Name()
	case institutiontype.FieldDeleted:
		return m.Deleted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InstitutionTypeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case institutiontype.FieldName:
		return m.OldName(ctx)
	case institutiontype.FieldDeleted:
		return m.OldDeleted(ctx)
	}
	return nil, fmt.Errorf("unknown InstitutionType field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstitutionTypeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case institutiontype.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case institutiontype.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	}
	return fmt.Errorf("unknown InstitutionType field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InstitutionTypeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InstitutionTypeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InstitutionTypeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InstitutionType numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InstitutionTypeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InstitutionTypeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InstitutionTypeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown InstitutionType nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InstitutionTypeMutation) ResetField(name string) error {
	switch name {
	case institutiontype.FieldName:
		m.ResetName()
		return nil
	case institutiontype.FieldDeleted:
		m.ResetDeleted()
		return nil
	}
	return fmt.Errorf("unknown InstitutionType field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InstitutionTypeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.institutions != nil {
		edges = append(edges, institutiontype.EdgeInstitutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InstitutionTypeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case institutiontype.EdgeInstitutions:
		ids := make([]ent.Value, 0, len(m.institutions))
		for id := range m.institutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InstitutionTypeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinstitutions != nil {
		edges = append(edges, institutiontype.EdgeInstitutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InstitutionTypeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case institutiontype.EdgeInstitutions:
		ids := make([]ent.Value, 0, len(m.removedinstitutions))
		for id := range m.removedinstitutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InstitutionTypeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinstitutions {
		edges = append(edges, institutiontype.EdgeInstitutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InstitutionTypeMutation) EdgeCleared(name string) bool {
	switch name {
	case institutiontype.EdgeInstitutions:
		return m.clearedinstitutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InstitutionTypeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown InstitutionType unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InstitutionTypeMutation) ResetEdge(name string) error {
	switch name {
	case institutiontype.EdgeInstitutions:
		m.ResetInstitutions()
		return nil
	}
	return fmt.Errorf("unknown InstitutionType edge %s", name)
}

// StandardItemMutation represents an operation that mutates the StandardItem nodes in the graph.
type StandardItemMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	code          *string
	subject       *string
	description   *string
	grade_level   *string
	thematic_unit *string
	deleted       *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StandardItem, error)
	predicates    []predicate.StandardItem
}

var _ ent.Mutation = (*StandardItemMutation)(nil)

// standarditemOption allows management of the mutation configuration using functional options.
type standarditemOption func(*StandardItemMutation)

// newStandardItemMutation creates new mutation for the StandardItem entity.
func newStandardItemMutation(c config, op Op, opts ...standarditemOption) *StandardItemMutation {
	m := &StandardItemMutation{
		config:        c,
		op:            op,
		typ:           TypeStandardItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStandardItemID sets the ID field of the mutation.
func withStandardItemID(id uuid.UUID) standarditemOption {
	return func(m *StandardItemMutation) {
		var (
			err   error
			once  sync.Once
			value *StandardItem
		)
		m.oldValue = func(ctx context.Context) (*StandardItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StandardItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStandardItem sets the old StandardItem of the mutation.
func withStandardItem(node *StandardItem) standarditemOption {
	return func(m *StandardItemMutation) {
		m.oldValue = func(context.Context) (*StandardItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StandardItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StandardItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StandardItem entities.
func (m *StandardItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StandardItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StandardItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StandardItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *StandardItemMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *StandardItemMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the StandardItem entity.
// If the StandardItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardItemMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *StandardItemMutation) ResetCode() {
	m.code = nil
}

// SetSubject sets the "subject" field.
func (m *StandardItemMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *StandardItemMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the StandardItem entity.
// If the StandardItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardItemMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *StandardItemMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[standarditem.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *StandardItemMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[standarditem.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *StandardItemMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, standarditem.FieldSubject)
}

// SetDescription sets the "description" field.
func (m *StandardItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StandardItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the StandardItem entity.
// If the StandardItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StandardItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[standarditem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StandardItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[standarditem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StandardItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, standarditem.FieldDescription)
}

// SetGradeLevel sets the "grade_level" field.
func (m *StandardItemMutation) SetGradeLevel(s string) {
	m.grade_level = &s
}

// GradeLevel returns the value of the "grade_level" field in the mutation.
func (m *StandardItemMutation) GradeLevel() (r string, exists bool) {
	v := m.grade_level
	if v == nil {
		return
	}
	return *v, true
}

// OldGradeLevel returns the old "grade_level" field's value of the StandardItem entity.
// If the StandardItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardItemMutation) OldGradeLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradeLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradeLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradeLevel: %w", err)
	}
	return oldValue.GradeLevel, nil
}

// ClearGradeLevel clears the value of the "grade_level" field.
func (m *StandardItemMutation) ClearGradeLevel() {
	m.grade_level = nil
	m.clearedFields[standarditem.FieldGradeLevel] = struct{}{}
}

// GradeLevelCleared returns if the "grade_level" field was cleared in this mutation.
func (m *StandardItemMutation) GradeLevelCleared() bool {
	_, ok := m.clearedFields[standarditem.FieldGradeLevel]
	return ok
}

// ResetGradeLevel resets all changes to the "grade_level" field.
func (m *StandardItemMutation) ResetGradeLevel() {
	m.grade_level = nil
	delete(m.clearedFields, standarditem.FieldGradeLevel)
}

// SetThematicUnit sets the "thematic_unit" field.
func (m *StandardItemMutation) SetThematicUnit(s string) {
	m.thematic_unit = &s
}

// ThematicUnit returns the value of the "thematic_unit" field in the mutation.
func (m *StandardItemMutation) ThematicUnit() (r string, exists bool) {
	v := m.thematic_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldThematicUnit returns the old "thematic_unit" field's value of the StandardItem entity.
// If the StandardItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardItemMutation) OldThematicUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThematicUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThematicUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThematicUnit: %w", err)
	}
	return oldValue.ThematicUnit, nil
}

// ClearThematicUnit clears the value of the "thematic_unit" field.
func (m *StandardItemMutation) ClearThematicUnit() {
	m.thematic_unit = nil
	m.clearedFields[standarditem.FieldThematicUnit] = struct{}{}
}

// ThematicUnitCleared returns if the "thematic_unit" field was cleared in this mutation.
func (m *StandardItemMutation) ThematicUnitCleared() bool {
	_, ok := m.clearedFields[standarditem.FieldThematicUnit]
	return ok
}

// ResetThematicUnit resets all changes to the "thematic_unit" field.
func (m *StandardItemMutation) ResetThematicUnit() {
	m.thematic_unit = nil
	delete(m.clearedFields, standarditem.FieldThematicUnit)
}

// SetDeleted sets the "deleted" field.
func (m *StandardItemMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *StandardItemMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the StandardItem entity.
// If the StandardItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardItemMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *StandardItemMutation) ResetDeleted() {
	m.deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StandardItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StandardItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StandardItem entity.
// If the StandardItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StandardItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StandardItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StandardItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StandardItem entity.
// If the StandardItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StandardItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StandardItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StandardItemMutation builder.
func (m *StandardItemMutation) Where(ps ...predicate.StandardItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StandardItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StandardItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StandardItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StandardItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StandardItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StandardItem).
func (m *StandardItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StandardItemMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.code != nil {
		fields = append(fields, standarditem.FieldCode)
	}
	if m.subject != nil {
		fields = append(fields, standarditem.FieldSubject)
	}
	if m.description != nil {
		fields = append(fields, standarditem.FieldDescription)
	}
	if m.grade_level != nil {
		fields = append(fields, standarditem.FieldGradeLevel)
	}
	if m.thematic_unit != nil {
		fields = append(fields, standarditem.FieldThematicUnit)
	}
	if m.deleted != nil {
		fields = append(fields, standarditem.FieldDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, standarditem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, standarditem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StandardItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case standarditem.FieldCode:
		return m.Code()
	case standarditem.FieldSubject:
		return m.Subject()
	case standarditem.FieldDescription:
		return m.Description()
	case standarditem.FieldGradeLevel:
		return m.GradeLevel()
	case standarditem.FieldThematicUnit:
		return m.ThematicUnit()
	case standarditem.FieldDeleted:
		return m.Deleted()
	case standarditem.FieldCreatedAt:
		return m.CreatedAt()
	case standarditem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StandardItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case standarditem.FieldCode:
		return m.OldCode(ctx)
	case standarditem.FieldSubject:
		return m.OldSubject(ctx)
	case standarditem.FieldDescription:
		return m.OldDescription(ctx)
	case standarditem.FieldGradeLevel:
		return m.OldGradeLevel(ctx)
	case standarditem.FieldThematicUnit:
		return m.OldThematicUnit(ctx)
	case standarditem.FieldDeleted:
		return m.OldDeleted(ctx)
	case standarditem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case standarditem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StandardItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandardItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case standarditem.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case standarditem.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case standarditem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case standarditem.FieldGradeLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradeLevel(v)
		return nil
	case standarditem.FieldThematicUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThematicUnit(v)
		return nil
	case standarditem.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case standarditem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case standarditem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StandardItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StandardItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StandardItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StandardItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StandardItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StandardItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(standarditem.FieldSubject) {
		fields = append(fields, standarditem.FieldSubject)
	}
	if m.FieldCleared(standarditem.FieldDescription) {
		fields = append(fields, standarditem.FieldDescription)
	}
	if m.FieldCleared(standarditem.FieldGradeLevel) {
		fields = append(fields, standarditem.FieldGradeLevel)
	}
	if m.FieldCleared(standarditem.FieldThematicUnit) {
		fields = append(fields, standarditem.FieldThematicUnit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StandardItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StandardItemMutation) ClearField(name string) error {
	switch name {
	case standarditem.FieldSubject:
		m.ClearSubject()
		return nil
	case standarditem.FieldDescription:
		m.ClearDescription()
		return nil
	case standarditem.FieldGradeLevel:
		m.ClearGradeLevel()
		return nil
	case standarditem.FieldThematicUnit:
		m.ClearThematicUnit()
		return nil
	}
	return fmt.Errorf("unknown StandardItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StandardItemMutation) ResetField(name string) error {
	switch name {
	case standarditem.FieldCode:
		m.ResetCode()
		return nil
	case standarditem.FieldSubject:
		m.ResetSubject()
		return nil
	case standarditem.FieldDescription:
		m.ResetDescription()
		return nil
	case standarditem.FieldGradeLevel:
		m.ResetGradeLevel()
		return nil
	case standarditem.FieldThematicUnit:
		m.ResetThematicUnit()
		return nil
	case standarditem.FieldDeleted:
		m.ResetDeleted()
		return nil
	case standarditem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case standarditem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StandardItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StandardItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StandardItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StandardItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StandardItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StandardItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StandardItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StandardItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StandardItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StandardItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StandardItem edge %s", name)
}

// UserRuleMutation represents an operation that mutates the UserRule nodes in the graph.
type UserRuleMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	rule_name     *string
	description   *string
	enabled       *bool
	deleted       *bool
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserRule, error)
	predicates    []predicate.UserRule
}

var _ ent.Mutation = (*UserRuleMutation)(nil)

// userruleOption allows management of the mutation configuration using functional options.
type userruleOption func(*UserRuleMutation)

// newUserRuleMutation creates new mutation for the UserRule entity.
func newUserRuleMutation(c config, op Op, opts ...userruleOption) *UserRuleMutation {
	m := &UserRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeUserRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserRuleID sets the ID field of the mutation.
func withUserRuleID(id uuid.UUID) userruleOption {
	return func(m *UserRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *UserRule
		)
		m.oldValue = func(ctx context.Context) (*UserRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserRule sets the old UserRule of the mutation.
func withUserRule(node *UserRule) userruleOption {
	return func(m *UserRuleMutation) {
		m.oldValue = func(context.Context) (*UserRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserRule entities.
func (m *UserRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleName sets the "rule_name" field.
func (m *UserRuleMutation) SetRuleName(s string) {
	m.rule_name = &s
}

// RuleName returns the value of the "rule_name" field in the mutation.
func (m *UserRuleMutation) RuleName() (r string, exists bool) {
	v := m.rule_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleName returns the old "rule_name" field's value of the UserRule entity.
// If the UserRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRuleMutation) OldRuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleName: %w", err)
	}
	return oldValue.RuleName, nil
}

// ResetRuleName resets all changes to the "rule_name" field.
func (m *UserRuleMutation) ResetRuleName() {
	m.rule_name = nil
}

// SetDescription sets the "description" field.
func (m *UserRuleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *UserRuleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the UserRule entity.
// If the UserRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRuleMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *UserRuleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[userrule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *UserRuleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[userrule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *UserRuleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, userrule.FieldDescription)
}

// SetEnabled sets the "enabled" field.
func (m *UserRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the UserRule entity.
// If the UserRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetDeleted sets the "deleted" field.
func (m *UserRuleMutation) SetDeleted(b bool) {
	m.deleted = &b
}

// Deleted returns the value of the "deleted" field in the mutation.
func (m *UserRuleMutation) Deleted() (r bool, exists bool) {
	v := m.deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldDeleted returns the old "deleted" field's value of the UserRule entity.
// If the UserRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRuleMutation) OldDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeleted: %w", err)
	}
	return oldValue.Deleted, nil
}

// ResetDeleted resets all changes to the "deleted" field.
func (m *UserRuleMutation) ResetDeleted() {
	m.deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserRule entity.
// If the UserRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserRule entity.
// If the UserRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserRuleMutation builder.
func (m *UserRuleMutation) Where(ps ...predicate.UserRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserRule).
func (m *UserRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserRuleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.rule_name != nil {
		fields = append(fields, userrule.FieldRuleName)
	}
	if m.description != nil {
		fields = append(fields, userrule.FieldDescription)
	}
	if m.enabled != nil {
		fields = append(fields, userrule.FieldEnabled)
	}
	if m.deleted != nil {
		fields = append(fields, userrule.FieldDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, userrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userrule.FieldRuleName:
		return m.RuleName()
	case userrule.FieldDescription:
		return m.Description()
	case userrule.FieldEnabled:
		return m.Enabled()
	case userrule.FieldDeleted:
		return m.Deleted()
	case userrule.FieldCreatedAt:
		return m.CreatedAt()
	case userrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userrule.FieldRuleName:
		return m.OldRuleName(ctx)
	case userrule.FieldDescription:
		return m.OldDescription(ctx)
	case userrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case userrule.FieldDeleted:
		return m.OldDeleted(ctx)
	case userrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userrule.FieldRuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleName(v)
		return nil
	case userrule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case userrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case userrule.FieldDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeleted(v)
		return nil
	case userrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userrule.FieldDescription) {
		fields = append(fields, userrule.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserRuleMutation) ClearField(name string) error {
	switch name {
	case userrule.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown UserRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserRuleMutation) ResetField(name string) error {
	switch name {
	case userrule.FieldRuleName:
		m.ResetRuleName()
		return nil
	case userrule.FieldDescription:
		m.ResetDescription()
		return nil
	case userrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case userrule.FieldDeleted:
		m.ResetDeleted()
		return nil
	case userrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserRule edge %s", name)
}
