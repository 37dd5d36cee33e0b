// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/sessiontype"
)

// SessionType is the model entity for the SessionType schema.
type SessionType struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// DefaultDurationMinutes holds the value of the "default_duration_minutes" field.
	DefaultDurationMinutes int `json:"default_duration_minutes,omitempty"`
	// IsTelemedicineAvailable holds the value of the "is_telemedicine_available" field.
	IsTelemedicineAvailable bool `json:"is_telemedicine_available,omitempty"`
	// Soft delete via status=deleted; deleted types stay queryable for audit
	Status       sessiontype.Status `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionType) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessiontype.FieldIsTelemedicineAvailable:
			values[i] = new(sql.NullBool)
		case sessiontype.FieldDefaultDurationMinutes:
			values[i] = new(sql.NullInt64)
		case sessiontype.FieldName, sessiontype.FieldDescription, sessiontype.FieldStatus:
			values[i] = new(sql.NullString)
		case sessiontype.FieldCreatedAt, sessiontype.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case sessiontype.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionType fields.
func (_m *SessionType) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessiontype.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sessiontype.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessiontype.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sessiontype.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case sessiontype.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case sessiontype.FieldDefaultDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field default_duration_minutes", values[i])
			} else if value.Valid {
				_m.DefaultDurationMinutes = int(value.Int64)
			}
		case sessiontype.FieldIsTelemedicineAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_telemedicine_available", values[i])
			} else if value.Valid {
				_m.IsTelemedicineAvailable = value.Bool
			}
		case sessiontype.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sessiontype.Status(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionType.
// This includes values selected through modifiers, order, etc.
func (_m *SessionType) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionType.
// Note that you need to call SessionType.Unwrap() before calling this method if this SessionType
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionType) Update() *SessionTypeUpdateOne {
	return NewSessionTypeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionType entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionType) Unwrap() *SessionType {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SessionType is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionType) String() string {
	var builder strings.Builder
	builder.WriteString("SessionType(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("default_duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefaultDurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("is_telemedicine_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTelemedicineAvailable))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteByte(')')
	return builder.String()
}

// SessionTypes is a parsable slice of SessionType.
type SessionTypes []*SessionType
