// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// IngredientsColumns holds the columns for the "ingredients" table.
	IngredientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IngredientsTable holds the schema information for the "ingredients" table.
	IngredientsTable = &schema.Table{
		Name:       "ingredients",
		Columns:    IngredientsColumns,
		PrimaryKey: []*schema.Column{IngredientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingredient_category",
				Unique:  false,
				Columns: []*schema.Column{IngredientsColumns[2]},
			},
		},
	}
	// ScanJobsColumns holds the columns for the "scan_jobs" table.
	ScanJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "content_hash_prefix", Type: field.TypeString},
		{Name: "byte_size", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "items_detected", Type: field.TypeInt, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ScanJobsTable holds the schema information for the "scan_jobs" table.
	ScanJobsTable = &schema.Table{
		Name:       "scan_jobs",
		Columns:    ScanJobsColumns,
		PrimaryKey: []*schema.Column{ScanJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[3], ScanJobsColumns[9]},
			},
			{
				Name:    "scanjob_content_hash_prefix",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		IngredientsTable,
		ScanJobsTable,
	}
)

func init() {
	IngredientsTable.Annotation = &entsql.Annotation{
		Table: "ingredients",
	}
	ScanJobsTable.Annotation = &entsql.Annotation{
		Table: "scan_jobs",
	}
}
