// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/sessionoffering"
)

// SessionOffering is the model entity for the SessionOffering schema.
type SessionOffering struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Ref → doctor-service doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// Ref → address-service branches.id; the field transfers change
	BranchID uuid.UUID `json:"branch_id,omitempty"`
	// Ref → session_types.id
	SessionTypeID uuid.UUID `json:"session_type_id,omitempty"`
	// Denormalized display name, snapshotted at create time
	SessionTypeName string `json:"session_type_name,omitempty"`
	// Price in minor currency units (cents)
	Price int64 `json:"price,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionOffering) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionoffering.FieldIsActive:
			values[i] = new(sql.NullBool)
		case sessionoffering.FieldPrice:
			values[i] = new(sql.NullInt64)
		case sessionoffering.FieldSessionTypeName:
			values[i] = new(sql.NullString)
		case sessionoffering.FieldCreatedAt, sessionoffering.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case sessionoffering.FieldID, sessionoffering.FieldDoctorID, sessionoffering.FieldBranchID, sessionoffering.FieldSessionTypeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionOffering fields.
func (_m *SessionOffering) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionoffering.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sessionoffering.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionoffering.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sessionoffering.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case sessionoffering.FieldBranchID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field branch_id", values[i])
			} else if value != nil {
				_m.BranchID = *value
			}
		case sessionoffering.FieldSessionTypeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_type_id", values[i])
			} else if value != nil {
				_m.SessionTypeID = *value
			}
		case sessionoffering.FieldSessionTypeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_type_name", values[i])
			} else if value.Valid {
				_m.SessionTypeName = value.String
			}
		case sessionoffering.FieldPrice:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Int64
			}
		case sessionoffering.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionOffering.
// This includes values selected through modifiers, order, etc.
func (_m *SessionOffering) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionOffering.
// Note that you need to call SessionOffering.Unwrap() before calling this method if this SessionOffering
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionOffering) Update() *SessionOfferingUpdateOne {
	return NewSessionOfferingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionOffering entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionOffering) Unwrap() *SessionOffering {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SessionOffering is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionOffering) String() string {
	var builder strings.Builder
	builder.WriteString("SessionOffering(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("branch_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BranchID))
	builder.WriteString(", ")
	builder.WriteString("session_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionTypeID))
	builder.WriteString(", ")
	builder.WriteString("session_type_name=")
	builder.WriteString(_m.SessionTypeName)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// SessionOfferings is a parsable slice of SessionOffering.
type SessionOfferings []*SessionOffering
