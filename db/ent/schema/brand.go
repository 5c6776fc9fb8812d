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

type Brand struct{ ent.Schema }

func (Brand) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "brands"},
	}
}

func (Brand) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		// Precomputed accent/punctuation-stripped lowercase form for matching.
		field.String("normalized_name").NotEmpty(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Brand) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("products", Product.Type),
	}
}

func (Brand) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("normalized_name"),
	}
}
