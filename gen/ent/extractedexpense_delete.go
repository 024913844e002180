// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/gen/ent/predicate"
)

// ExtractedExpenseDelete is the builder for deleting a ExtractedExpense entity.
type ExtractedExpenseDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedExpenseMutation
}

// Where appends a list predicates to the ExtractedExpenseDelete builder.
func (_d *ExtractedExpenseDelete) Where(ps ...predicate.ExtractedExpense) *ExtractedExpenseDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedExpenseDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedExpenseDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedExpenseDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedexpense.Table, sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID))
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

// ExtractedExpenseDeleteOne is the builder for deleting a single ExtractedExpense entity.
type ExtractedExpenseDeleteOne struct {
	_d *ExtractedExpenseDelete
}

// Where appends a list predicates to the ExtractedExpenseDelete builder.
func (_d *ExtractedExpenseDeleteOne) Where(ps ...predicate.ExtractedExpense) *ExtractedExpenseDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedExpenseDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedexpense.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedExpenseDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
