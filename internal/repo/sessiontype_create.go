// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/sessiontype"
)

// SessionTypeCreate is the builder for creating a SessionType entity.
type SessionTypeCreate struct {
	config
	mutation *SessionTypeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionTypeCreate) SetCreatedAt(v time.Time) *SessionTypeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionTypeCreate) SetNillableCreatedAt(v *time.Time) *SessionTypeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionTypeCreate) SetUpdatedAt(v time.Time) *SessionTypeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionTypeCreate) SetNillableUpdatedAt(v *time.Time) *SessionTypeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *SessionTypeCreate) SetName(v string) *SessionTypeCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SessionTypeCreate) SetDescription(v string) *SessionTypeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SessionTypeCreate) SetNillableDescription(v *string) *SessionTypeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDefaultDurationMinutes sets the "default_duration_minutes" field.
func (_c *SessionTypeCreate) SetDefaultDurationMinutes(v int) *SessionTypeCreate {
	_c.mutation.SetDefaultDurationMinutes(v)
	return _c
}

// SetIsTelemedicineAvailable sets the "is_telemedicine_available" field.
func (_c *SessionTypeCreate) SetIsTelemedicineAvailable(v bool) *SessionTypeCreate {
	_c.mutation.SetIsTelemedicineAvailable(v)
	return _c
}

// SetNillableIsTelemedicineAvailable sets the "is_telemedicine_available" field if the given value is not nil.
func (_c *SessionTypeCreate) SetNillableIsTelemedicineAvailable(v *bool) *SessionTypeCreate {
	if v != nil {
		_c.SetIsTelemedicineAvailable(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionTypeCreate) SetStatus(v sessiontype.Status) *SessionTypeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionTypeCreate) SetNillableStatus(v *sessiontype.Status) *SessionTypeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionTypeCreate) SetID(v uuid.UUID) *SessionTypeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionTypeCreate) SetNillableID(v *uuid.UUID) *SessionTypeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SessionTypeMutation object of the builder.
func (_c *SessionTypeCreate) Mutation() *SessionTypeMutation {
	return _c.mutation
}

// Save creates the SessionType in the database.
func (_c *SessionTypeCreate) Save(ctx context.Context) (*SessionType, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionTypeCreate) SaveX(ctx context.Context) *SessionType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionTypeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionTypeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionTypeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessiontype.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessiontype.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsTelemedicineAvailable(); !ok {
		v := sessiontype.DefaultIsTelemedicineAvailable
		_c.mutation.SetIsTelemedicineAvailable(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sessiontype.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sessiontype.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionTypeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SessionType.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SessionType.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "SessionType.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := sessiontype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SessionType.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultDurationMinutes(); !ok {
		return &ValidationError{Name: "default_duration_minutes", err: errors.New(`repo: missing required field "SessionType.default_duration_minutes"`)}
	}
	if _, ok := _c.mutation.IsTelemedicineAvailable(); !ok {
		return &ValidationError{Name: "is_telemedicine_available", err: errors.New(`repo: missing required field "SessionType.is_telemedicine_available"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "SessionType.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sessiontype.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SessionType.status": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionTypeCreate) sqlSave(ctx context.Context) (*SessionType, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionTypeCreate) createSpec() (*SessionType, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionType{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessiontype.Table, sqlgraph.NewFieldSpec(sessiontype.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessiontype.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessiontype.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sessiontype.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(sessiontype.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DefaultDurationMinutes(); ok {
		_spec.SetField(sessiontype.FieldDefaultDurationMinutes, field.TypeInt, value)
		_node.DefaultDurationMinutes = value
	}
	if value, ok := _c.mutation.IsTelemedicineAvailable(); ok {
		_spec.SetField(sessiontype.FieldIsTelemedicineAvailable, field.TypeBool, value)
		_node.IsTelemedicineAvailable = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sessiontype.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// SessionTypeCreateBulk is the builder for creating many SessionType entities in bulk.
type SessionTypeCreateBulk struct {
	config
	err      error
	builders []*SessionTypeCreate
}

// Save creates the SessionType entities in the database.
func (_c *SessionTypeCreateBulk) Save(ctx context.Context) ([]*SessionType, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionType, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionTypeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionTypeCreateBulk) SaveX(ctx context.Context) []*SessionType {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionTypeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionTypeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
