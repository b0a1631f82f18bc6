package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is one persisted session document, keyed by name.
// Writers always replace the whole value; there are no partial merges.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Comment("Record name: answers, matches or preferences"),
		field.JSON("data", json.RawMessage{}).
			Comment("Record payload as stored JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last whole-value replacement"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
