// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SessionOffering is the predicate function for sessionoffering builders.
type SessionOffering func(*sql.Selector)

// SessionType is the predicate function for sessiontype builders.
type SessionType func(*sql.Selector)
