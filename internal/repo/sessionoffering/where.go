// Code generated by ent, DO NOT EDIT.

package sessionoffering

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldDoctorID, v))
}

// BranchID applies equality check predicate on the "branch_id" field. It's identical to BranchIDEQ.
func BranchID(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldBranchID, v))
}

// SessionTypeID applies equality check predicate on the "session_type_id" field. It's identical to SessionTypeIDEQ.
func SessionTypeID(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldSessionTypeID, v))
}

// SessionTypeName applies equality check predicate on the "session_type_name" field. It's identical to SessionTypeNameEQ.
func SessionTypeName(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldSessionTypeName, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldPrice, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLTE(FieldDoctorID, v))
}

// BranchIDEQ applies the EQ predicate on the "branch_id" field.
func BranchIDEQ(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldBranchID, v))
}

// BranchIDNEQ applies the NEQ predicate on the "branch_id" field.
func BranchIDNEQ(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldBranchID, v))
}

// BranchIDIn applies the In predicate on the "branch_id" field.
func BranchIDIn(vs ...uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldIn(FieldBranchID, vs...))
}

// BranchIDNotIn applies the NotIn predicate on the "branch_id" field.
func BranchIDNotIn(vs ...uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNotIn(FieldBranchID, vs...))
}

// BranchIDGT applies the GT predicate on the "branch_id" field.
func BranchIDGT(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGT(FieldBranchID, v))
}

// BranchIDGTE applies the GTE predicate on the "branch_id" field.
func BranchIDGTE(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGTE(FieldBranchID, v))
}

// BranchIDLT applies the LT predicate on the "branch_id" field.
func BranchIDLT(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLT(FieldBranchID, v))
}

// BranchIDLTE applies the LTE predicate on the "branch_id" field.
func BranchIDLTE(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLTE(FieldBranchID, v))
}

// SessionTypeIDEQ applies the EQ predicate on the "session_type_id" field.
func SessionTypeIDEQ(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldSessionTypeID, v))
}

// SessionTypeIDNEQ applies the NEQ predicate on the "session_type_id" field.
func SessionTypeIDNEQ(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldSessionTypeID, v))
}

// SessionTypeIDIn applies the In predicate on the "session_type_id" field.
func SessionTypeIDIn(vs ...uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldIn(FieldSessionTypeID, vs...))
}

// SessionTypeIDNotIn applies the NotIn predicate on the "session_type_id" field.
func SessionTypeIDNotIn(vs ...uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNotIn(FieldSessionTypeID, vs...))
}

// SessionTypeIDGT applies the GT predicate on the "session_type_id" field.
func SessionTypeIDGT(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGT(FieldSessionTypeID, v))
}

// SessionTypeIDGTE applies the GTE predicate on the "session_type_id" field.
func SessionTypeIDGTE(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGTE(FieldSessionTypeID, v))
}

// SessionTypeIDLT applies the LT predicate on the "session_type_id" field.
func SessionTypeIDLT(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLT(FieldSessionTypeID, v))
}

// SessionTypeIDLTE applies the LTE predicate on the "session_type_id" field.
func SessionTypeIDLTE(v uuid.UUID) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLTE(FieldSessionTypeID, v))
}

// SessionTypeNameEQ applies the EQ predicate on the "session_type_name" field.
func SessionTypeNameEQ(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldSessionTypeName, v))
}

// SessionTypeNameNEQ applies the NEQ predicate on the "session_type_name" field.
func SessionTypeNameNEQ(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldSessionTypeName, v))
}

// SessionTypeNameIn applies the In predicate on the "session_type_name" field.
func SessionTypeNameIn(vs ...string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldIn(FieldSessionTypeName, vs...))
}

// SessionTypeNameNotIn applies the NotIn predicate on the "session_type_name" field.
func SessionTypeNameNotIn(vs ...string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNotIn(FieldSessionTypeName, vs...))
}

// SessionTypeNameGT applies the GT predicate on the "session_type_name" field.
func SessionTypeNameGT(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGT(FieldSessionTypeName, v))
}

// SessionTypeNameGTE applies the GTE predicate on the "session_type_name" field.
func SessionTypeNameGTE(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGTE(FieldSessionTypeName, v))
}

// SessionTypeNameLT applies the LT predicate on the "session_type_name" field.
func SessionTypeNameLT(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLT(FieldSessionTypeName, v))
}

// SessionTypeNameLTE applies the LTE predicate on the "session_type_name" field.
func SessionTypeNameLTE(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLTE(FieldSessionTypeName, v))
}

// SessionTypeNameContains applies the Contains predicate on the "session_type_name" field.
func SessionTypeNameContains(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldContains(FieldSessionTypeName, v))
}

// SessionTypeNameHasPrefix applies the HasPrefix predicate on the "session_type_name" field.
func SessionTypeNameHasPrefix(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldHasPrefix(FieldSessionTypeName, v))
}

// SessionTypeNameHasSuffix applies the HasSuffix predicate on the "session_type_name" field.
func SessionTypeNameHasSuffix(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldHasSuffix(FieldSessionTypeName, v))
}

// SessionTypeNameEqualFold applies the EqualFold predicate on the "session_type_name" field.
func SessionTypeNameEqualFold(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEqualFold(FieldSessionTypeName, v))
}

// SessionTypeNameContainsFold applies the ContainsFold predicate on the "session_type_name" field.
func SessionTypeNameContainsFold(v string) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldContainsFold(FieldSessionTypeName, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int64) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldLTE(FieldPrice, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.SessionOffering {
	return predicate.SessionOffering(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionOffering) predicate.SessionOffering {
	return predicate.SessionOffering(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionOffering) predicate.SessionOffering {
	return predicate.SessionOffering(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionOffering) predicate.SessionOffering {
	return predicate.SessionOffering(sql.NotPredicates(p))
}
