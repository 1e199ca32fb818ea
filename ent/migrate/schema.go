// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContentEventsColumns holds the columns for the "content_events" table.
	ContentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// ContentEventsTable holds the schema information for the "content_events" table.
	ContentEventsTable = &schema.Table{
		Name:       "content_events",
		Columns:    ContentEventsColumns,
		PrimaryKey: []*schema.Column{ContentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ContentEventsColumns[1]},
			},
			{
				Name:    "contentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ContentEventsColumns[2]},
			},
			{
				Name:    "contentevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ContentEventsColumns[5]},
			},
		},
	}
	// ExposureEventsColumns holds the columns for the "exposure_events" table.
	ExposureEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "score_after", Type: field.TypeInt},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ExposureEventsTable holds the schema information for the "exposure_events" table.
	ExposureEventsTable = &schema.Table{
		Name:       "exposure_events",
		Columns:    ExposureEventsColumns,
		PrimaryKey: []*schema.Column{ExposureEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exposureevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[1]},
			},
			{
				Name:    "exposureevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[2]},
			},
			{
				Name:    "exposureevent_learner_id_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[3], ExposureEventsColumns[4]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "exposures", Type: field.TypeInt, Default: 0},
		{Name: "successes", Type: field.TypeInt, Default: 0},
		{Name: "failures", Type: field.TypeInt, Default: 0},
		{Name: "mastery", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "not_started"},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime, Nullable: true},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_learner_id_concept_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_learner_id_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContentEventsTable,
		ExposureEventsTable,
		MasteryRecordsTable,
	}
)

func init() {
}
