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
	"github.com/tinysteps/session-service/internal/repo/predicate"
	"github.com/tinysteps/session-service/internal/repo/sessiontype"
)

// SessionTypeUpdate is the builder for updating SessionType entities.
type SessionTypeUpdate struct {
	config
	hooks    []Hook
	mutation *SessionTypeMutation
}

// Where appends a list predicates to the SessionTypeUpdate builder.
func (_u *SessionTypeUpdate) Where(ps ...predicate.SessionType) *SessionTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionTypeUpdate) SetUpdatedAt(v time.Time) *SessionTypeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SessionTypeUpdate) SetName(v string) *SessionTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SessionTypeUpdate) SetNillableName(v *string) *SessionTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SessionTypeUpdate) SetDescription(v string) *SessionTypeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SessionTypeUpdate) SetNillableDescription(v *string) *SessionTypeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SessionTypeUpdate) ClearDescription() *SessionTypeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDefaultDurationMinutes sets the "default_duration_minutes" field.
func (_u *SessionTypeUpdate) SetDefaultDurationMinutes(v int) *SessionTypeUpdate {
	_u.mutation.ResetDefaultDurationMinutes()
	_u.mutation.SetDefaultDurationMinutes(v)
	return _u
}

// SetNillableDefaultDurationMinutes sets the "default_duration_minutes" field if the given value is not nil.
func (_u *SessionTypeUpdate) SetNillableDefaultDurationMinutes(v *int) *SessionTypeUpdate {
	if v != nil {
		_u.SetDefaultDurationMinutes(*v)
	}
	return _u
}

// AddDefaultDurationMinutes adds value to the "default_duration_minutes" field.
func (_u *SessionTypeUpdate) AddDefaultDurationMinutes(v int) *SessionTypeUpdate {
	_u.mutation.AddDefaultDurationMinutes(v)
	return _u
}

// SetIsTelemedicineAvailable sets the "is_telemedicine_available" field.
func (_u *SessionTypeUpdate) SetIsTelemedicineAvailable(v bool) *SessionTypeUpdate {
	_u.mutation.SetIsTelemedicineAvailable(v)
	return _u
}

// SetNillableIsTelemedicineAvailable sets the "is_telemedicine_available" field if the given value is not nil.
func (_u *SessionTypeUpdate) SetNillableIsTelemedicineAvailable(v *bool) *SessionTypeUpdate {
	if v != nil {
		_u.SetIsTelemedicineAvailable(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionTypeUpdate) SetStatus(v sessiontype.Status) *SessionTypeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionTypeUpdate) SetNillableStatus(v *sessiontype.Status) *SessionTypeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the SessionTypeMutation object of the builder.
func (_u *SessionTypeUpdate) Mutation() *SessionTypeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionTypeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionTypeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessiontype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sessiontype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SessionType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sessiontype.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SessionType.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessiontype.Table, sessiontype.Columns, sqlgraph.NewFieldSpec(sessiontype.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessiontype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sessiontype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sessiontype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sessiontype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultDurationMinutes(); ok {
		_spec.SetField(sessiontype.FieldDefaultDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMinutes(); ok {
		_spec.AddField(sessiontype.FieldDefaultDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsTelemedicineAvailable(); ok {
		_spec.SetField(sessiontype.FieldIsTelemedicineAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessiontype.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessiontype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionTypeUpdateOne is the builder for updating a single SessionType entity.
type SessionTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionTypeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionTypeUpdateOne) SetUpdatedAt(v time.Time) *SessionTypeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SessionTypeUpdateOne) SetName(v string) *SessionTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SessionTypeUpdateOne) SetNillableName(v *string) *SessionTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SessionTypeUpdateOne) SetDescription(v string) *SessionTypeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SessionTypeUpdateOne) SetNillableDescription(v *string) *SessionTypeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SessionTypeUpdateOne) ClearDescription() *SessionTypeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDefaultDurationMinutes sets the "default_duration_minutes" field.
func (_u *SessionTypeUpdateOne) SetDefaultDurationMinutes(v int) *SessionTypeUpdateOne {
	_u.mutation.ResetDefaultDurationMinutes()
	_u.mutation.SetDefaultDurationMinutes(v)
	return _u
}

// SetNillableDefaultDurationMinutes sets the "default_duration_minutes" field if the given value is not nil.
func (_u *SessionTypeUpdateOne) SetNillableDefaultDurationMinutes(v *int) *SessionTypeUpdateOne {
	if v != nil {
		_u.SetDefaultDurationMinutes(*v)
	}
	return _u
}

// AddDefaultDurationMinutes adds value to the "default_duration_minutes" field.
func (_u *SessionTypeUpdateOne) AddDefaultDurationMinutes(v int) *SessionTypeUpdateOne {
	_u.mutation.AddDefaultDurationMinutes(v)
	return _u
}

// SetIsTelemedicineAvailable sets the "is_telemedicine_available" field.
func (_u *SessionTypeUpdateOne) SetIsTelemedicineAvailable(v bool) *SessionTypeUpdateOne {
	_u.mutation.SetIsTelemedicineAvailable(v)
	return _u
}

// SetNillableIsTelemedicineAvailable sets the "is_telemedicine_available" field if the given value is not nil.
func (_u *SessionTypeUpdateOne) SetNillableIsTelemedicineAvailable(v *bool) *SessionTypeUpdateOne {
	if v != nil {
		_u.SetIsTelemedicineAvailable(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionTypeUpdateOne) SetStatus(v sessiontype.Status) *SessionTypeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionTypeUpdateOne) SetNillableStatus(v *sessiontype.Status) *SessionTypeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the SessionTypeMutation object of the builder.
func (_u *SessionTypeUpdateOne) Mutation() *SessionTypeMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionTypeUpdate builder.
func (_u *SessionTypeUpdateOne) Where(ps ...predicate.SessionType) *SessionTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionTypeUpdateOne) Select(field string, fields ...string) *SessionTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionType entity.
func (_u *SessionTypeUpdateOne) Save(ctx context.Context) (*SessionType, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionTypeUpdateOne) SaveX(ctx context.Context) *SessionType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionTypeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessiontype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := sessiontype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SessionType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sessiontype.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SessionType.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionTypeUpdateOne) sqlSave(ctx context.Context) (_node *SessionType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessiontype.Table, sessiontype.Columns, sqlgraph.NewFieldSpec(sessiontype.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SessionType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessiontype.FieldID)
		for _, f := range fields {
			if !sessiontype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != sessiontype.FieldID {
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
		_spec.SetField(sessiontype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sessiontype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(sessiontype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(sessiontype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultDurationMinutes(); ok {
		_spec.SetField(sessiontype.FieldDefaultDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMinutes(); ok {
		_spec.AddField(sessiontype.FieldDefaultDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsTelemedicineAvailable(); ok {
		_spec.SetField(sessiontype.FieldIsTelemedicineAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessiontype.FieldStatus, field.TypeEnum, value)
	}
	_node = &SessionType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessiontype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
