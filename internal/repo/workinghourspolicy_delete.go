// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnicahealth/arnica_backend/internal/repo/predicate"
	"github.com/arnicahealth/arnica_backend/internal/repo/workinghourspolicy"
)

// WorkingHoursPolicyDelete is the builder for deleting a WorkingHoursPolicy entity.
type WorkingHoursPolicyDelete struct {
	config
	hooks    []Hook
	mutation *WorkingHoursPolicyMutation
}

// Where appends a list predicates to the WorkingHoursPolicyDelete builder.
func (_d *WorkingHoursPolicyDelete) Where(ps ...predicate.WorkingHoursPolicy) *WorkingHoursPolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorkingHoursPolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkingHoursPolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorkingHoursPolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workinghourspolicy.Table, sqlgraph.NewFieldSpec(workinghourspolicy.FieldID, field.TypeUUID))
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

// WorkingHoursPolicyDeleteOne is the builder for deleting a single WorkingHoursPolicy entity.
type WorkingHoursPolicyDeleteOne struct {
	_d *WorkingHoursPolicyDelete
}

// Where appends a list predicates to the WorkingHoursPolicyDelete builder.
func (_d *WorkingHoursPolicyDeleteOne) Where(ps ...predicate.WorkingHoursPolicy) *WorkingHoursPolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorkingHoursPolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workinghourspolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkingHoursPolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
