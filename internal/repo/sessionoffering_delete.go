// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tinysteps/session-service/internal/repo/predicate"
	"github.com/tinysteps/session-service/internal/repo/sessionoffering"
)

// SessionOfferingDelete is the builder for deleting a SessionOffering entity.
type SessionOfferingDelete struct {
	config
	hooks    []Hook
	mutation *SessionOfferingMutation
}

// Where appends a list predicates to the SessionOfferingDelete builder.
func (_d *SessionOfferingDelete) Where(ps ...predicate.SessionOffering) *SessionOfferingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SessionOfferingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SessionOfferingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SessionOfferingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sessionoffering.Table, sqlgraph.NewFieldSpec(sessionoffering.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SessionOfferingDeleteOne is the builder for deleting a single SessionOffering entity.
type SessionOfferingDeleteOne struct {
	_d *SessionOfferingDelete
}

// Where appends a list predicates to the SessionOfferingDelete builder.
func (_d *SessionOfferingDeleteOne) Where(ps ...predicate.SessionOffering) *SessionOfferingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SessionOfferingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sessionoffering.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SessionOfferingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
