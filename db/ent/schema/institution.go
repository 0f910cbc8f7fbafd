package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Institution struct{ ent.Schema }

func (Institution) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "institutions"},
	}
}

func (Institution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.UUID("type_id", uuid.UUID{}).Optional().Nillable(),
		field.String("city").Optional().Nillable(),
		field.String("country").Optional().Nillable(),
		field.String("postal_code").Optional().Nillable(),
		field.Bool("deleted").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Institution) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY institutions -> ONE type (FK: institutions.type_id)
		edge.From("institution_type", InstitutionType.Type).
			Ref("institutions").
			Field("type_id").
			Unique(),
	}
}

func (Institution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").
			Unique().
			Annotations(entsql.IndexWhere("NOT deleted")),
		index.Fields("type_id"),
	}
}
