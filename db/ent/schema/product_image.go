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

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/db/ent/schema/utils"
)

type ProductImage struct{ ent.Schema }

func (ProductImage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "product_images"},
	}
}

func (ProductImage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define composite indexes
		field.UUID("product_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("storage_path").NotEmpty(),
		field.String("image_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ImageTypes...)),
		// Trailing run number from the filename; 0 for labels and collages.
		field.Int("sequence").Default(0).NonNegative(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
	}
}

func (ProductImage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("images").
			Field("product_id").
			Required().
			Unique(),
	}
}

func (ProductImage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("product_id", "image_type"),
		index.Fields("product_id", "filename"),
	}
}
