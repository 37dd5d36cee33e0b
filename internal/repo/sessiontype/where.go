// Code generated by ent, DO NOT EDIT.

package sessiontype

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SessionType {
	return predicate.SessionType(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldDescription, v))
}

// DefaultDurationMinutes applies equality check predicate on the "default_duration_minutes" field. It's identical to DefaultDurationMinutesEQ.
func DefaultDurationMinutes(v int) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldDefaultDurationMinutes, v))
}

// IsTelemedicineAvailable applies equality check predicate on the "is_telemedicine_available" field. It's identical to IsTelemedicineAvailableEQ.
func IsTelemedicineAvailable(v bool) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldIsTelemedicineAvailable, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionType {
	return predicate.SessionType(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SessionType {
	return predicate.SessionType(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SessionType {
	return predicate.SessionType(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SessionType {
	return predicate.SessionType(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SessionType {
	return predicate.SessionType(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SessionType {
	return predicate.SessionType(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SessionType {
	return predicate.SessionType(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SessionType {
	return predicate.SessionType(sql.FieldContainsFold(FieldDescription, v))
}

// DefaultDurationMinutesEQ applies the EQ predicate on the "default_duration_minutes" field.
func DefaultDurationMinutesEQ(v int) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldDefaultDurationMinutes, v))
}

// DefaultDurationMinutesNEQ applies the NEQ predicate on the "default_duration_minutes" field.
func DefaultDurationMinutesNEQ(v int) predicate.SessionType {
	return predicate.SessionType(sql.FieldNEQ(FieldDefaultDurationMinutes, v))
}

// DefaultDurationMinutesIn applies the In predicate on the "default_duration_minutes" field.
func DefaultDurationMinutesIn(vs ...int) predicate.SessionType {
	return predicate.SessionType(sql.FieldIn(FieldDefaultDurationMinutes, vs...))
}

// DefaultDurationMinutesNotIn applies the NotIn predicate on the "default_duration_minutes" field.
func DefaultDurationMinutesNotIn(vs ...int) predicate.SessionType {
	return predicate.SessionType(sql.FieldNotIn(FieldDefaultDurationMinutes, vs...))
}

// DefaultDurationMinutesGT applies the GT predicate on the "default_duration_minutes" field.
func DefaultDurationMinutesGT(v int) predicate.SessionType {
	return predicate.SessionType(sql.FieldGT(FieldDefaultDurationMinutes, v))
}

// DefaultDurationMinutesGTE applies the GTE predicate on the "default_duration_minutes" field.
func DefaultDurationMinutesGTE(v int) predicate.SessionType {
	return predicate.SessionType(sql.FieldGTE(FieldDefaultDurationMinutes, v))
}

// DefaultDurationMinutesLT applies the LT predicate on the "default_duration_minutes" field.
func DefaultDurationMinutesLT(v int) predicate.SessionType {
	return predicate.SessionType(sql.FieldLT(FieldDefaultDurationMinutes, v))
}

// DefaultDurationMinutesLTE applies the LTE predicate on the "default_duration_minutes" field.
func DefaultDurationMinutesLTE(v int) predicate.SessionType {
	return predicate.SessionType(sql.FieldLTE(FieldDefaultDurationMinutes, v))
}

// IsTelemedicineAvailableEQ applies the EQ predicate on the "is_telemedicine_available" field.
func IsTelemedicineAvailableEQ(v bool) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldIsTelemedicineAvailable, v))
}

// IsTelemedicineAvailableNEQ applies the NEQ predicate on the "is_telemedicine_available" field.
func IsTelemedicineAvailableNEQ(v bool) predicate.SessionType {
	return predicate.SessionType(sql.FieldNEQ(FieldIsTelemedicineAvailable, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SessionType {
	return predicate.SessionType(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SessionType {
	return predicate.SessionType(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SessionType {
	return predicate.SessionType(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SessionType {
	return predicate.SessionType(sql.FieldNotIn(FieldStatus, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionType) predicate.SessionType {
	return predicate.SessionType(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionType) predicate.SessionType {
	return predicate.SessionType(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionType) predicate.SessionType {
	return predicate.SessionType(sql.NotPredicates(p))
}
