// Code generated by ent, DO NOT EDIT.

package standarditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLTE(FieldID, id))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldCode, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldSubject, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldDescription, v))
}

// GradeLevel applies equality check predicate on the "grade_level" field. It's identical to GradeLevelEQ.
func GradeLevel(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldGradeLevel, v))
}

// ThematicUnit applies equality check predicate on the "thematic_unit" field. It's identical to ThematicUnitEQ.
func ThematicUnit(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldThematicUnit, v))
}

// Deleted applies equality check predicate on the "deleted" field. It's identical to DeletedEQ.
func Deleted(v bool) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContainsFold(FieldCode, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContainsFold(FieldSubject, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContainsFold(FieldDescription, v))
}

// GradeLevelEQ applies the EQ predicate on the "grade_level" field.
func GradeLevelEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldGradeLevel, v))
}

// GradeLevelNEQ applies the NEQ predicate on the "grade_level" field.
func GradeLevelNEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldGradeLevel, v))
}

// GradeLevelIn applies the In predicate on the "grade_level" field.
func GradeLevelIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIn(FieldGradeLevel, vs...))
}

// GradeLevelNotIn applies the NotIn predicate on the "grade_level" field.
func GradeLevelNotIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotIn(FieldGradeLevel, vs...))
}

// GradeLevelGT applies the GT predicate on the "grade_level" field.
func GradeLevelGT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGT(FieldGradeLevel, v))
}

// GradeLevelGTE applies the GTE predicate on the "grade_level" field.
func GradeLevelGTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGTE(FieldGradeLevel, v))
}

// GradeLevelLT applies the LT predicate on the "grade_level" field.
func GradeLevelLT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLT(FieldGradeLevel, v))
}

// GradeLevelLTE applies the LTE predicate on the "grade_level" field.
func GradeLevelLTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLTE(FieldGradeLevel, v))
}

// GradeLevelContains applies the Contains predicate on the "grade_level" field.
func GradeLevelContains(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContains(FieldGradeLevel, v))
}

// GradeLevelHasPrefix applies the HasPrefix predicate on the "grade_level" field.
func GradeLevelHasPrefix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasPrefix(FieldGradeLevel, v))
}

// GradeLevelHasSuffix applies the HasSuffix predicate on the "grade_level" field.
func GradeLevelHasSuffix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasSuffix(FieldGradeLevel, v))
}

// GradeLevelIsNil applies the IsNil predicate on the "grade_level" field.
func GradeLevelIsNil() predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIsNull(FieldGradeLevel))
}

// GradeLevelNotNil applies the NotNil predicate on the "grade_level" field.
func GradeLevelNotNil() predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotNull(FieldGradeLevel))
}

// GradeLevelEqualFold applies the EqualFold predicate on the "grade_level" field.
func GradeLevelEqualFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEqualFold(FieldGradeLevel, v))
}

// GradeLevelContainsFold applies the ContainsFold predicate on the "grade_level" field.
func GradeLevelContainsFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContainsFold(FieldGradeLevel, v))
}

// ThematicUnitEQ applies the EQ predicate on the "thematic_unit" field.
func ThematicUnitEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldThematicUnit, v))
}

// ThematicUnitNEQ applies the NEQ predicate on the "thematic_unit" field.
func ThematicUnitNEQ(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldThematicUnit, v))
}

// ThematicUnitIn applies the In predicate on the "thematic_unit" field.
func ThematicUnitIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIn(FieldThematicUnit, vs...))
}

// ThematicUnitNotIn applies the NotIn predicate on the "thematic_unit" field.
func ThematicUnitNotIn(vs ...string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotIn(FieldThematicUnit, vs...))
}

// ThematicUnitGT applies the GT predicate on the "thematic_unit" field.
func ThematicUnitGT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGT(FieldThematicUnit, v))
}

// ThematicUnitGTE applies the GTE predicate on the "thematic_unit" field.
func ThematicUnitGTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGTE(FieldThematicUnit, v))
}

// ThematicUnitLT applies the LT predicate on the "thematic_unit" field.
func ThematicUnitLT(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLT(FieldThematicUnit, v))
}

// ThematicUnitLTE applies the LTE predicate on the "thematic_unit" field.
func ThematicUnitLTE(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLTE(FieldThematicUnit, v))
}

// ThematicUnitContains applies the Contains predicate on the "thematic_unit" field.
func ThematicUnitContains(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContains(FieldThematicUnit, v))
}

// ThematicUnitHasPrefix applies the HasPrefix predicate on the "thematic_unit" field.
func ThematicUnitHasPrefix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasPrefix(FieldThematicUnit, v))
}

// ThematicUnitHasSuffix applies the HasSuffix predicate on the "thematic_unit" field.
func ThematicUnitHasSuffix(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldHasSuffix(FieldThematicUnit, v))
}

// ThematicUnitIsNil applies the IsNil predicate on the "thematic_unit" field.
func ThematicUnitIsNil() predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIsNull(FieldThematicUnit))
}

// ThematicUnitNotNil applies the NotNil predicate on the "thematic_unit" field.
func ThematicUnitNotNil() predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotNull(FieldThematicUnit))
}

// ThematicUnitEqualFold applies the EqualFold predicate on the "thematic_unit" field.
func ThematicUnitEqualFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEqualFold(FieldThematicUnit, v))
}

// ThematicUnitContainsFold applies the ContainsFold predicate on the "thematic_unit" field.
func ThematicUnitContainsFold(v string) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldContainsFold(FieldThematicUnit, v))
}

// DeletedEQ applies the EQ predicate on the "deleted" field.
func DeletedEQ(v bool) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldDeleted, v))
}

// DeletedNEQ applies the NEQ predicate on the "deleted" field.
func DeletedNEQ(v bool) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StandardItem {
	return predicate.StandardItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StandardItem) predicate.StandardItem {
	return predicate.StandardItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StandardItem) predicate.StandardItem {
	return predicate.StandardItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StandardItem) predicate.StandardItem {
	return predicate.StandardItem(sql.NotPredicates(p))
}
