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

type Ingredient struct {
	ent.Schema
}

func (Ingredient) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingredients"},
	}
}

func (Ingredient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty().Unique(),
		field.String("category").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Ingredient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
