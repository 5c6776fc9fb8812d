package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/ksarkisyan/catalog-intake/constants"
	"github.com/ksarkisyan/catalog-intake/db/ent/schema/utils"
)

type UploadJob struct{ ent.Schema }

func (UploadJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_jobs"},
	}
}

func (UploadJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.Int("total_files").NonNegative(),
		field.Int("processed_files").Default(0).NonNegative(),
		field.Int("failed_files").Default(0).NonNegative(),
		field.Int("skipped_files").Default(0).NonNegative(),
		field.String("status").
			Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("phase_message").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (UploadJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
