// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Institution is the predicate function for institution builders.
type Institution func(*sql.Selector)

// InstitutionType is the predicate function for institutiontype builders.
type InstitutionType func(*sql.Selector)

// StandardItem is the predicate function for standarditem builders.
type StandardItem func(*sql.Selector)

// UserRule is the predicate function for userrule builders.
type UserRule func(*sql.Selector)
