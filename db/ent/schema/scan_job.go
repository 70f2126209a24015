package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ScanJob struct {
	ent.Schema
}

func (ScanJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_jobs"},
	}
}

func (ScanJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// only the short hash prefix is ever stored, never image content
		field.String("content_hash_prefix").NotEmpty(),
		field.Int("byte_size").NonNegative(),
		field.String("status").NotEmpty(),
		field.Text("raw_text").Optional().Nillable(),
		field.Float32("confidence").Optional(),
		field.Int("items_detected").Optional(),
		field.Int64("duration_ms").Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ScanJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("content_hash_prefix"),
	}
}
