// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContentEvent is the predicate function for contentevent builders.
type ContentEvent func(*sql.Selector)

// ExposureEvent is the predicate function for exposureevent builders.
type ExposureEvent func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)
