// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/google/uuid"
)

// InstitutionType is the model entity for the InstitutionType schema.
type InstitutionType struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Deleted holds the value of the "deleted" field.
	Deleted bool `json:"deleted,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InstitutionTypeQuery when eager-loading is set.
	Edges        InstitutionTypeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InstitutionTypeEdges holds the relations/edges for other nodes in the graph.
type InstitutionTypeEdges struct {
	// Institutions holds the value of the institutions edge.
	Institutions []*Institution `json:"institutions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstitutionsOrErr returns the Institutions value or an error if the edge
// was not loaded in eager-loading.
func (e InstitutionTypeEdges) InstitutionsOrErr() ([]*Institution, error) {
	if e.loadedTypes[0] {
		return e.Institutions, nil
	}
	return nil, &NotLoadedError{edge: "institutions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InstitutionType) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case institutiontype.FieldDeleted:
			values[i] = new(sql.NullBool)
		case institutiontype.FieldName:
			values[i] = new(sql.NullString)
		case institutiontype.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InstitutionType fields.
func (_m *InstitutionType) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case institutiontype.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case institutiontype.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case institutiontype.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				_m.Deleted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InstitutionType.
// This includes values selected through modifiers, order, etc.
func (_m *InstitutionType) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInstitutions queries the "institutions" edge of the InstitutionType entity.
func (_m *InstitutionType) QueryInstitutions() *InstitutionQuery {
	return NewInstitutionTypeClient(_m.config).QueryInstitutions(_m)
}

// Update returns a builder for updating this InstitutionType.
// Note that you need to call InstitutionType.Unwrap() before calling this method if this InstitutionType
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InstitutionType) Update() *InstitutionTypeUpdateOne {
	return NewInstitutionTypeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InstitutionType entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InstitutionType) Unwrap() *InstitutionType {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InstitutionType is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InstitutionType) String() string {
	var builder strings.Builder
	builder.WriteString("InstitutionType(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deleted))
	builder.WriteByte(')')
	return builder.String()
}

// InstitutionTypes is a parsable slice of InstitutionType.
type InstitutionTypes []*InstitutionType
