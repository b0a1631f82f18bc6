// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/linku/linku/ent/schema"
	"github.com/linku/linku/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrecordDescUpdatedAt := sessionrecordFields[2].Descriptor()
	// sessionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrecord.DefaultUpdatedAt = sessionrecordDescUpdatedAt.Default.(func() time.Time)
	// sessionrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionrecord.UpdateDefaultUpdatedAt = sessionrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
