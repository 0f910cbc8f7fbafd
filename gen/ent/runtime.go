// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/brunoqueiroz/curricula-admin/db/ent/schema"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institution"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/standarditem"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/userrule"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	institutionFields := schema.Institution{}.Fields()
	_ = institutionFields
	// institutionDescName is the schema descriptor for name field.
	institutionDescName := institutionFields[1].Descriptor()
	// institution.NameValidator is a validator for the "name" field. It is called by the builders before save.
	institution.NameValidator = institutionDescName.Validators[0].(func(string) error)
	// institutionDescDeleted is the schema descriptor for deleted field.
	institutionDescDeleted := institutionFields[6].Descriptor()
	// institution.DefaultDeleted holds the default value on creation for the deleted field.
	institution.DefaultDeleted = institutionDescDeleted.Default.(bool)
	// institutionDescCreatedAt is the schema descriptor for created_at field.
	institutionDescCreatedAt := institutionFields[7].Descriptor()
	// institution.DefaultCreatedAt holds the default value on creation for the created_at field.
	institution.DefaultCreatedAt = institutionDescCreatedAt.Default.(func() time.Time)
	// institutionDescUpdatedAt is the schema descriptor for updated_at field.
	institutionDescUpdatedAt := institutionFields[8].Descriptor()
	// institution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	institution.DefaultUpdatedAt = institutionDescUpdatedAt.Default.(func() time.Time)
	// institution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	institution.UpdateDefaultUpdatedAt = institutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// institutionDescID is the schema descriptor for id field.
	institutionDescID := institutionFields[0].Descriptor()
	// institution.DefaultID holds the default value on creation for the id field.
	institution.DefaultID = institutionDescID.Default.(func() uuid.UUID)
	institutiontypeFields := schema.InstitutionType{}.Fields()
	_ = institutiontypeFields
	// institutiontypeDescName is the schema descriptor for name field.
	institutiontypeDescName := institutiontypeFields[1].Descriptor()
	// institutiontype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	institutiontype.NameValidator = institutiontypeDescName.Validators[0].(func(string) error)
	// institutiontypeDescDeleted is the schema descriptor for deleted field.
	institutiontypeDescDeleted := institutiontypeFields[2].Descriptor()
	// institutiontype.DefaultDeleted holds the default value on creation for the deleted field.
	institutiontype.DefaultDeleted = institutiontypeDescDeleted.Default.(bool)
	// institutiontypeDescID is the schema descriptor for id field.
	institutiontypeDescID := institutiontypeFields[0].Descriptor()
	// institutiontype.DefaultID holds the default value on creation for the id field.
	institutiontype.DefaultID = institutiontypeDescID.Default.(func() uuid.UUID)
	standarditemFields := schema.StandardItem{}.Fields()
	_ = standarditemFields
	// standarditemDescCode is the schema descriptor for code field.
	standarditemDescCode := standarditemFields[1].Descriptor()
	// standarditem.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	standarditem.CodeValidator = func() func(string) error {
		validators := standarditemDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// standarditemDescSubject is the schema descriptor for subject field.
	standarditemDescSubject := standarditemFields[2].Descriptor()
	// standarditem.DefaultSubject holds the default value on creation for the subject field.
	standarditem.DefaultSubject = standarditemDescSubject.Default.(string)
	// standarditemDescDescription is the schema descriptor for description field.
	standarditemDescDescription := standarditemFields[3].Descriptor()
	// standarditem.DefaultDescription holds the default value on creation for the description field.
	standarditem.DefaultDescription = standarditemDescDescription.Default.(string)
	// standarditemDescGradeLevel is the schema descriptor for grade_level field.
	standarditemDescGradeLevel := standarditemFields[4].Descriptor()
	// standarditem.DefaultGradeLevel holds the default value on creation for the grade_level field.
	standarditem.DefaultGradeLevel = standarditemDescGradeLevel.Default.(string)
	// standarditemDescThematicUnit is the schema descriptor for thematic_unit field.
	standarditemDescThematicUnit := standarditemFields[5].Descriptor()
	// standarditem.DefaultThematicUnit holds the default value on creation for the thematic_unit field.
	standarditem.DefaultThematicUnit = standarditemDescThematicUnit.Default.(string)
	// standarditemDescDeleted is the schema descriptor for deleted field.
	standarditemDescDeleted := standarditemFields[6].Descriptor()
	// standarditem.DefaultDeleted holds the default value on creation for the deleted field.
	standarditem.DefaultDeleted = standarditemDescDeleted.Default.(bool)
	// standarditemDescCreatedAt is the schema descriptor for created_at field.
	standarditemDescCreatedAt := standarditemFields[7].Descriptor()
	// standarditem.DefaultCreatedAt holds the default value on creation for the created_at field.
	standarditem.DefaultCreatedAt = standarditemDescCreatedAt.Default.(func() time.Time)
	// standarditemDescUpdatedAt is the schema descriptor for updated_at field.
	standarditemDescUpdatedAt := standarditemFields[8].Descriptor()
	// standarditem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	standarditem.DefaultUpdatedAt = standarditemDescUpdatedAt.Default.(func() time.Time)
	// standarditem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	standarditem.UpdateDefaultUpdatedAt = standarditemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// standarditemDescID is the schema descriptor for id field.
	standarditemDescID := standarditemFields[0].Descriptor()
	// standarditem.DefaultID holds the default value on creation for the id field.
	standarditem.DefaultID = standarditemDescID.Default.(func() uuid.UUID)
	userruleFields := schema.UserRule{}.Fields()
	_ = userruleFields
	// userruleDescRuleName is the schema descriptor for rule_name field.
	userruleDescRuleName := userruleFields[1].Descriptor()
	// userrule.RuleNameValidator is a validator for the "rule_name" field. It is called by the builders before save.
	userrule.RuleNameValidator = userruleDescRuleName.Validators[0].(func(string) error)
	// userruleDescEnabled is the schema descriptor for enabled field.
	userruleDescEnabled := userruleFields[3].Descriptor()
	// userrule.DefaultEnabled holds the default value on creation for the enabled field.
	userrule.DefaultEnabled = userruleDescEnabled.Default.(bool)
	// userruleDescDeleted is the schema descriptor for deleted field.
	userruleDescDeleted := userruleFields[4].Descriptor()
	// userrule.DefaultDeleted holds the default value on creation for the deleted field.
	userrule.DefaultDeleted = userruleDescDeleted.Default.(bool)
	// userruleDescCreatedAt is the schema descriptor for created_at field.
	userruleDescCreatedAt := userruleFields[5].Descriptor()
	// userrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	userrule.DefaultCreatedAt = userruleDescCreatedAt.Default.(func() time.Time)
	// userruleDescUpdatedAt is the schema descriptor for updated_at field.
	userruleDescUpdatedAt := userruleFields[6].Descriptor()
	// userrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userrule.DefaultUpdatedAt = userruleDescUpdatedAt.Default.(func() time.Time)
	// userrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userrule.UpdateDefaultUpdatedAt = userruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userruleDescID is the schema descriptor for id field.
	userruleDescID := userruleFields[0].Descriptor()
	// userrule.DefaultID holds the default value on creation for the id field.
	userrule.DefaultID = userruleDescID.Default.(func() uuid.UUID)
}
