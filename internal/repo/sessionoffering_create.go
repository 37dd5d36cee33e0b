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
	"github.com/tinysteps/session-service/internal/repo/sessionoffering"
)

// SessionOfferingCreate is the builder for creating a SessionOffering entity.
type SessionOfferingCreate struct {
	config
	mutation *SessionOfferingMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionOfferingCreate) SetCreatedAt(v time.Time) *SessionOfferingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionOfferingCreate) SetNillableCreatedAt(v *time.Time) *SessionOfferingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionOfferingCreate) SetUpdatedAt(v time.Time) *SessionOfferingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionOfferingCreate) SetNillableUpdatedAt(v *time.Time) *SessionOfferingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *SessionOfferingCreate) SetDoctorID(v uuid.UUID) *SessionOfferingCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetBranchID sets the "branch_id" field.
func (_c *SessionOfferingCreate) SetBranchID(v uuid.UUID) *SessionOfferingCreate {
	_c.mutation.SetBranchID(v)
	return _c
}

// SetSessionTypeID sets the "session_type_id" field.
func (_c *SessionOfferingCreate) SetSessionTypeID(v uuid.UUID) *SessionOfferingCreate {
	_c.mutation.SetSessionTypeID(v)
	return _c
}

// SetSessionTypeName sets the "session_type_name" field.
func (_c *SessionOfferingCreate) SetSessionTypeName(v string) *SessionOfferingCreate {
	_c.mutation.SetSessionTypeName(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *SessionOfferingCreate) SetPrice(v int64) *SessionOfferingCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SessionOfferingCreate) SetIsActive(v bool) *SessionOfferingCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SessionOfferingCreate) SetNillableIsActive(v *bool) *SessionOfferingCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionOfferingCreate) SetID(v uuid.UUID) *SessionOfferingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionOfferingCreate) SetNillableID(v *uuid.UUID) *SessionOfferingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SessionOfferingMutation object of the builder.
func (_c *SessionOfferingCreate) Mutation() *SessionOfferingMutation {
	return _c.mutation
}

// Save creates the SessionOffering in the database.
func (_c *SessionOfferingCreate) Save(ctx context.Context) (*SessionOffering, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionOfferingCreate) SaveX(ctx context.Context) *SessionOffering {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionOfferingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionOfferingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionOfferingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionoffering.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionoffering.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := sessionoffering.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sessionoffering.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionOfferingCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SessionOffering.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SessionOffering.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "SessionOffering.doctor_id"`)}
	}
	if _, ok := _c.mutation.BranchID(); !ok {
		return &ValidationError{Name: "branch_id", err: errors.New(`repo: missing required field "SessionOffering.branch_id"`)}
	}
	if _, ok := _c.mutation.SessionTypeID(); !ok {
		return &ValidationError{Name: "session_type_id", err: errors.New(`repo: missing required field "SessionOffering.session_type_id"`)}
	}
	if _, ok := _c.mutation.SessionTypeName(); !ok {
		return &ValidationError{Name: "session_type_name", err: errors.New(`repo: missing required field "SessionOffering.session_type_name"`)}
	}
	if v, ok := _c.mutation.SessionTypeName(); ok {
		if err := sessionoffering.SessionTypeNameValidator(v); err != nil {
			return &ValidationError{Name: "session_type_name", err: fmt.Errorf(`repo: validator failed for field "SessionOffering.session_type_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "SessionOffering.price"`)}
	}
	if v, ok := _c.mutation.Price(); ok {
		if err := sessionoffering.PriceValidator(v); err != nil {
			return &ValidationError{Name: "price", err: fmt.Errorf(`repo: validator failed for field "SessionOffering.price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "SessionOffering.is_active"`)}
	}
	return nil
}

func (_c *SessionOfferingCreate) sqlSave(ctx context.Context) (*SessionOffering, error) {
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

func (_c *SessionOfferingCreate) createSpec() (*SessionOffering, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionOffering{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionoffering.Table, sqlgraph.NewFieldSpec(sessionoffering.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionoffering.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionoffering.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(sessionoffering.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.BranchID(); ok {
		_spec.SetField(sessionoffering.FieldBranchID, field.TypeUUID, value)
		_node.BranchID = value
	}
	if value, ok := _c.mutation.SessionTypeID(); ok {
		_spec.SetField(sessionoffering.FieldSessionTypeID, field.TypeUUID, value)
		_node.SessionTypeID = value
	}
	if value, ok := _c.mutation.SessionTypeName(); ok {
		_spec.SetField(sessionoffering.FieldSessionTypeName, field.TypeString, value)
		_node.SessionTypeName = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(sessionoffering.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(sessionoffering.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// SessionOfferingCreateBulk is the builder for creating many SessionOffering entities in bulk.
type SessionOfferingCreateBulk struct {
	config
	err      error
	builders []*SessionOfferingCreate
}

// Save creates the SessionOffering entities in the database.
func (_c *SessionOfferingCreateBulk) Save(ctx context.Context) ([]*SessionOffering, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionOffering, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionOfferingMutation)
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
func (_c *SessionOfferingCreateBulk) SaveX(ctx context.Context) []*SessionOffering {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionOfferingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionOfferingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
