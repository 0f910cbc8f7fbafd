// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InstitutionsColumns holds the columns for the "institutions" table.
	InstitutionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "type_id", Type: field.TypeUUID, Nullable: true},
	}
	// InstitutionsTable holds the schema information for the "institutions" table.
	InstitutionsTable = &schema.Table{
		Name:       "institutions",
		Columns:    InstitutionsColumns,
		PrimaryKey: []*schema.Column{InstitutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "institutions_institution_types_institutions",
				Columns:    []*schema.Column{InstitutionsColumns[8]},
				RefColumns: []*schema.Column{InstitutionTypesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "institution_name",
				Unique:  true,
				Columns: []*schema.Column{InstitutionsColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "NOT deleted",
				},
			},
			{
				Name:    "institution_type_id",
				Unique:  false,
				Columns: []*schema.Column{InstitutionsColumns[8]},
			},
		},
	}
	// InstitutionTypesColumns holds the columns for the "institution_types" table.
	InstitutionTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "deleted", Type: field.TypeBool, Default: false},
	}
	// InstitutionTypesTable holds the schema information for the "institution_types" table.
	InstitutionTypesTable = &schema.Table{
		Name:       "institution_types",
		Columns:    InstitutionTypesColumns,
		PrimaryKey: []*schema.Column{InstitutionTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "institutiontype_name",
				Unique:  true,
				Columns: []*schema.Column{InstitutionTypesColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "NOT deleted",
				},
			},
		},
	}
	// CurriculumStandardsColumns holds the columns for the "curriculum_standards" table.
	CurriculumStandardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "description", Type: field.TypeString, Nullable: true, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "grade_level", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "thematic_unit", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CurriculumStandardsTable holds the schema information for the "curriculum_standards" table.
	CurriculumStandardsTable = &schema.Table{
		Name:       "curriculum_standards",
		Columns:    CurriculumStandardsColumns,
		PrimaryKey: []*schema.Column{CurriculumStandardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "standarditem_code",
				Unique:  false,
				Columns: []*schema.Column{CurriculumStandardsColumns[1]},
			},
			{
				Name:    "standarditem_subject_grade_level",
				Unique:  false,
				Columns: []*schema.Column{CurriculumStandardsColumns[2], CurriculumStandardsColumns[4]},
			},
		},
	}
	// UserRulesColumns holds the columns for the "user_rules" table.
	UserRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rule_name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserRulesTable holds the schema information for the "user_rules" table.
	UserRulesTable = &schema.Table{
		Name:       "user_rules",
		Columns:    UserRulesColumns,
		PrimaryKey: []*schema.Column{UserRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userrule_rule_name",
				Unique:  true,
				Columns: []*schema.Column{UserRulesColumns[1]},
				Annotation: &entsql.IndexAnnotation{
					Where: "NOT deleted",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InstitutionsTable,
		InstitutionTypesTable,
		CurriculumStandardsTable,
		UserRulesTable,
	}
)

func init() {
	InstitutionsTable.ForeignKeys[0].RefTable = InstitutionTypesTable
	InstitutionsTable.Annotation = &entsql.Annotation{
		Table: "institutions",
	}
	InstitutionTypesTable.Annotation = &entsql.Annotation{
		Table: "institution_types",
	}
	CurriculumStandardsTable.Annotation = &entsql.Annotation{
		Table: "curriculum_standards",
	}
	UserRulesTable.Annotation = &entsql.Annotation{
		Table: "user_rules",
	}
}
