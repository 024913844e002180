package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/db/ent/schema/utils"

	"github.com/google/uuid"
)

// ExtractedExpense is the structured result of successfully extracting one
// receipt. Amount is carried as decimal text end to end; it must never pass
// through a binary float.
type ExtractedExpense struct{ ent.Schema }

func (ExtractedExpense) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_expenses"},
	}
}

func (ExtractedExpense) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("receipt_id", uuid.UUID{}),
		field.String("merchant").Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.Time("date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("amount").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "numeric(10,2)"}),
		field.String("category").
			Validate(utils.EnumValidator(constants.Categories()...)),
		field.JSON("transport_details", json.RawMessage{}).
			Optional(),
		field.JSON("raw_json", json.RawMessage{}).
			Optional(),
		field.String("model_version").NotEmpty(),
		field.Bool("is_current").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractedExpense) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("receipt", ReceiptFile.Type).
			Ref("expenses").
			Field("receipt_id").
			Required().
			Unique(),
	}
}

func (ExtractedExpense) Indexes() []ent.Index {
	return []ent.Index{
		// at most one current row per receipt
		index.Fields("receipt_id").
			Unique().
			Annotations(entsql.IndexWhere("is_current")),
		index.Fields("receipt_id", "created_at"),
	}
}
