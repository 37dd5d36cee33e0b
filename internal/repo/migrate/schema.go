// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionOfferingsColumns holds the columns for the "session_offerings" table.
	SessionOfferingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "branch_id", Type: field.TypeUUID},
		{Name: "session_type_id", Type: field.TypeUUID},
		{Name: "session_type_name", Type: field.TypeString, Size: 100},
		{Name: "price", Type: field.TypeInt64},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// SessionOfferingsTable holds the schema information for the "session_offerings" table.
	SessionOfferingsTable = &schema.Table{
		Name:       "session_offerings",
		Columns:    SessionOfferingsColumns,
		PrimaryKey: []*schema.Column{SessionOfferingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionoffering_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{SessionOfferingsColumns[3]},
			},
			{
				Name:    "sessionoffering_branch_id",
				Unique:  false,
				Columns: []*schema.Column{SessionOfferingsColumns[4]},
			},
			{
				Name:    "sessionoffering_session_type_id",
				Unique:  false,
				Columns: []*schema.Column{SessionOfferingsColumns[5]},
			},
			{
				Name:    "sessionoffering_doctor_id_branch_id_session_type_id",
				Unique:  true,
				Columns: []*schema.Column{SessionOfferingsColumns[3], SessionOfferingsColumns[4], SessionOfferingsColumns[5]},
			},
		},
	}
	// SessionTypesColumns holds the columns for the "session_types" table.
	SessionTypesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "default_duration_minutes", Type: field.TypeInt},
		{Name: "is_telemedicine_available", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "deleted"}, Default: "active"},
	}
	// SessionTypesTable holds the schema information for the "session_types" table.
	SessionTypesTable = &schema.Table{
		Name:       "session_types",
		Columns:    SessionTypesColumns,
		PrimaryKey: []*schema.Column{SessionTypesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessiontype_status",
				Unique:  false,
				Columns: []*schema.Column{SessionTypesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionOfferingsTable,
		SessionTypesTable,
	}
)

func init() {
}
