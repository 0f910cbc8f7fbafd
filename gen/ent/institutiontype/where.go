// Code generated by ent, DO NOT EDIT.

package institutiontype

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldEQ(FieldName, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldEQ(FieldDeleted, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldContainsFold(FieldName, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.InstitutionType {
	return predicate.InstitutionType(sql.FieldNEQ(FieldDeleted, v))
}

// HasInstitutions applies the HasEdge predicate on the "institutions" edge.
func HasInstitutions() predicate.InstitutionType {
	return predicate.InstitutionType(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InstitutionsTable, InstitutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInstitutionsWith applies the HasEdge predicate on the "institutions" edge with a given conditions (other predicates).
func HasInstitutionsWith(preds ...predicate.Institution) predicate.InstitutionType {
	return predicate.InstitutionType(func(s *sql.Selector) {
		step := newInstitutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InstitutionType) predicate.InstitutionType {
	return predicate.InstitutionType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InstitutionType) predicate.InstitutionType {
	return predicate.InstitutionType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InstitutionType) predicate.InstitutionType {
	return predicate.InstitutionType(sql.NotPredicates(p))
}
