package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Product struct{ ent.Schema }

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("code").NotEmpty(),
		field.String("color").NotEmpty(),
		// FK; nullable until brand resolution succeeds.
		field.UUID("brand_id", uuid.UUID{}).Optional().Nillable(),
		field.String("product_type").Optional().Nillable(),
		field.String("size_range").Optional().Nillable(),
		field.Float("price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("material").Optional().Nillable(),
		field.String("barcode").Optional().Nillable(),
		// Mirror fields for the second variant on a dual-product label.
		field.String("secondary_code").Optional().Nillable(),
		field.String("secondary_color").Optional().Nillable(),
		field.String("secondary_size_range").Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Bool("is_processed").Default(false),
		field.Bool("telegram_sent").Default(false),
		// Identity of the last published collage; guards re-sends.
		field.String("collage_fingerprint").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY products -> ONE brand (FK: products.brand_id)
		edge.From("brand", Brand.Type).
			Ref("products").
			Field("brand_id").
			Unique(),
		// ONE product -> MANY images
		edge.To("images", ProductImage.Type),
	}
}

func (Product) Indexes() []ent.Index {
	return []ent.Index{
		// One row per triple; backstops the resolver's in-process lock.
		index.Fields("code", "color", "brand_id").Unique(),
		index.Fields("is_active", "is_processed"),
	}
}
