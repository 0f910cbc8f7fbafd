package schema

import (
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// reCode accepts BNCC alphanumeric codes like EF01MA01 or EM13LGG101 but stays
// loose enough for state-level variants.
var reCode = regexp.MustCompile(`^[A-Z0-9]{4,20}$`)

// StandardItem is a BNCC competency/skill row. Codes are NOT unique: one
// extraction batch may legitimately carry duplicates and commits never merge.
type StandardItem struct{ ent.Schema }

func (StandardItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "curriculum_standards"},
	}
}

func (StandardItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("code").NotEmpty().
			Match(reCode),
		// Extracted candidates may arrive with only a code; the manual form
		// enforces its own required fields at the repository.
		field.String("subject").Optional().Default(""),
		field.String("description").Optional().Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("grade_level").Optional().Default(""),
		field.String("thematic_unit").Optional().Default(""),
		field.Bool("deleted").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (StandardItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("code"),
		index.Fields("subject", "grade_level"),
	}
}
