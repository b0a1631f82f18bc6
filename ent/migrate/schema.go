// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_key",
				Unique:  true,
				Columns: []*schema.Column{SessionRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionRecordsTable,
	}
)

func init() {
}
