// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/predicate"
	"github.com/tinysteps/session-service/internal/repo/sessionoffering"
)

// SessionOfferingUpdate is the builder for updating SessionOffering entities.
type SessionOfferingUpdate struct {
	config
	hooks    []Hook
	mutation *SessionOfferingMutation
}

// Where appends a list predicates to the SessionOfferingUpdate builder.
func (_u *SessionOfferingUpdate) Where(ps ...predicate.SessionOffering) *SessionOfferingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionOfferingUpdate) SetUpdatedAt(v time.Time) *SessionOfferingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *SessionOfferingUpdate) SetDoctorID(v uuid.UUID) *SessionOfferingUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *SessionOfferingUpdate) SetNillableDoctorID(v *uuid.UUID) *SessionOfferingUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *SessionOfferingUpdate) SetBranchID(v uuid.UUID) *SessionOfferingUpdate {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *SessionOfferingUpdate) SetNillableBranchID(v *uuid.UUID) *SessionOfferingUpdate {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetSessionTypeID sets the "session_type_id" field.
func (_u *SessionOfferingUpdate) SetSessionTypeID(v uuid.UUID) *SessionOfferingUpdate {
	_u.mutation.SetSessionTypeID(v)
	return _u
}

// SetNillableSessionTypeID sets the "session_type_id" field if the given value is not nil.
func (_u *SessionOfferingUpdate) SetNillableSessionTypeID(v *uuid.UUID) *SessionOfferingUpdate {
	if v != nil {
		_u.SetSessionTypeID(*v)
	}
	return _u
}

// SetSessionTypeName sets the "session_type_name" field.
func (_u *SessionOfferingUpdate) SetSessionTypeName(v string) *SessionOfferingUpdate {
	_u.mutation.SetSessionTypeName(v)
	return _u
}

// SetNillableSessionTypeName sets the "session_type_name" field if the given value is not nil.
func (_u *SessionOfferingUpdate) SetNillableSessionTypeName(v *string) *SessionOfferingUpdate {
	if v != nil {
		_u.SetSessionTypeName(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *SessionOfferingUpdate) SetPrice(v int64) *SessionOfferingUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *SessionOfferingUpdate) SetNillablePrice(v *int64) *SessionOfferingUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *SessionOfferingUpdate) AddPrice(v int64) *SessionOfferingUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SessionOfferingUpdate) SetIsActive(v bool) *SessionOfferingUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SessionOfferingUpdate) SetNillableIsActive(v *bool) *SessionOfferingUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the SessionOfferingMutation object of the builder.
func (_u *SessionOfferingUpdate) Mutation() *SessionOfferingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionOfferingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionOfferingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionOfferingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionOfferingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionOfferingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionoffering.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionOfferingUpdate) check() error {
	if v, ok := _u.mutation.SessionTypeName(); ok {
		if err := sessionoffering.SessionTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "session_type_name", err: fmt.Errorf(`repo: validator failed for field "SessionOffering.session_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := sessionoffering.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "SessionOffering.price": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionOfferingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionoffering.Table, sessionoffering.Columns, sqlgraph.NewFieldSpec(sessionoffering.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionoffering.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(sessionoffering.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BranchID(); ok {
		_spec.SetField(sessionoffering.FieldBranchID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionTypeID(); ok {
		_spec.SetField(sessionoffering.FieldSessionTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionTypeName(); ok {
		_spec.SetField(sessionoffering.FieldSessionTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(sessionoffering.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(sessionoffering.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(sessionoffering.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionoffering.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionOfferingUpdateOne is the builder for updating a single SessionOffering entity.
type SessionOfferingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionOfferingMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionOfferingUpdateOne) SetUpdatedAt(v time.Time) *SessionOfferingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *SessionOfferingUpdateOne) SetDoctorID(v uuid.UUID) *SessionOfferingUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *SessionOfferingUpdateOne) SetNillableDoctorID(v *uuid.UUID) *SessionOfferingUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *SessionOfferingUpdateOne) SetBranchID(v uuid.UUID) *SessionOfferingUpdateOne {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *SessionOfferingUpdateOne) SetNillableBranchID(v *uuid.UUID) *SessionOfferingUpdateOne {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetSessionTypeID sets the "session_type_id" field.
func (_u *SessionOfferingUpdateOne) SetSessionTypeID(v uuid.UUID) *SessionOfferingUpdateOne {
	_u.mutation.SetSessionTypeID(v)
	return _u
}

// SetNillableSessionTypeID sets the "session_type_id" field if the given value is not nil.
func (_u *SessionOfferingUpdateOne) SetNillableSessionTypeID(v *uuid.UUID) *SessionOfferingUpdateOne {
	if v != nil {
		_u.SetSessionTypeID(*v)
	}
	return _u
}

// SetSessionTypeName sets the "session_type_name" field.
func (_u *SessionOfferingUpdateOne) SetSessionTypeName(v string) *SessionOfferingUpdateOne {
	_u.mutation.SetSessionTypeName(v)
	return _u
}

// SetNillableSessionTypeName sets the "session_type_name" field if the given value is not nil.
func (_u *SessionOfferingUpdateOne) SetNillableSessionTypeName(v *string) *SessionOfferingUpdateOne {
	if v != nil {
		_u.SetSessionTypeName(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *SessionOfferingUpdateOne) SetPrice(v int64) *SessionOfferingUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *SessionOfferingUpdateOne) SetNillablePrice(v *int64) *SessionOfferingUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *SessionOfferingUpdateOne) AddPrice(v int64) *SessionOfferingUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SessionOfferingUpdateOne) SetIsActive(v bool) *SessionOfferingUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SessionOfferingUpdateOne) SetNillableIsActive(v *bool) *SessionOfferingUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the SessionOfferingMutation object of the builder.
func (_u *SessionOfferingUpdateOne) Mutation() *SessionOfferingMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionOfferingUpdate builder.
func (_u *SessionOfferingUpdateOne) Where(ps ...predicate.SessionOffering) *SessionOfferingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionOfferingUpdateOne) Select(field string, fields ...string) *SessionOfferingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionOffering entity.
func (_u *SessionOfferingUpdateOne) Save(ctx context.Context) (*SessionOffering, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionOfferingUpdateOne) SaveX(ctx context.Context) *SessionOffering {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionOfferingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionOfferingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionOfferingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionoffering.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionOfferingUpdateOne) check() error {
	if v, ok := _u.mutation.SessionTypeName(); ok {
		if err := sessionoffering.SessionTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "session_type_name", err: fmt.Errorf(`repo: validator failed for field "SessionOffering.session_type_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Price(); ok {
		if err := sessionoffering.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "SessionOffering.price": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionOfferingUpdateOne) sqlSave(ctx context.Context) (_node *SessionOffering, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionoffering.Table, sessionoffering.Columns, sqlgraph.NewFieldSpec(sessionoffering.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SessionOffering.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionoffering.FieldID)
		for _, f := range fields {
			if !sessionoffering.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != sessionoffering.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionoffering.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(sessionoffering.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BranchID(); ok {
		_spec.SetField(sessionoffering.FieldBranchID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionTypeID(); ok {
		_spec.SetField(sessionoffering.FieldSessionTypeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SessionTypeName(); ok {
		_spec.SetField(sessionoffering.FieldSessionTypeName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(sessionoffering.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(sessionoffering.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(sessionoffering.FieldIsActive, field.TypeBool, value)
	}
	_node = &SessionOffering{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionoffering.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
