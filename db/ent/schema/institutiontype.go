package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type InstitutionType struct{ ent.Schema }

func (InstitutionType) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "institution_types"},
	}
}

func (InstitutionType) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.Bool("deleted").Default(false),
	}
}

func (InstitutionType) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("institutions", Institution.Type),
	}
}

func (InstitutionType) Indexes() []ent.Index {
	return []ent.Index{
		// Name is unique among active rows only, so a soft-deleted type never
		// blocks re-creating one with the same name.
		index.Fields("name").
			Unique().
			Annotations(entsql.IndexWhere("NOT deleted")),
	}
}
