package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type UserRule struct{ ent.Schema }

func (UserRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "user_rules"},
	}
}

func (UserRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("rule_name").NotEmpty(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("enabled").Default(true),
		field.Bool("deleted").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (UserRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule_name").
			Unique().
			Annotations(entsql.IndexWhere("NOT deleted")),
	}
}
