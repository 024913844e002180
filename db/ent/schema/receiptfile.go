package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/db/ent/schema/utils"

	"github.com/google/uuid"
)

// ReceiptFile is one uploaded image awaiting or having undergone extraction.
type ReceiptFile struct{ ent.Schema }

func (ReceiptFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_files"},
	}
}

func (ReceiptFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so queries can filter without loading the edge
		field.UUID("job_id", uuid.UUID{}),
		field.String("storage_key").NotEmpty(),
		field.String("original_filename").Optional().Nillable(),
		field.String("status").
			Default(string(constants.ReceiptPending)).
			Validate(utils.EnumValidator(constants.ReceiptStatuses()...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("processed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ReceiptFile) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY files -> ONE job (FK: receipt_files.job_id)
		edge.From("job", Job.Type).
			Ref("receipts").
			Field("job_id").
			Required().
			Unique(),
		// ONE file -> MANY extracted expenses (history; one is_current row)
		edge.To("expenses", ExtractedExpense.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ReceiptFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "status"),
		index.Fields("job_id", "created_at"),
	}
}
