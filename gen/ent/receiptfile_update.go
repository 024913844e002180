// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/gen/ent/job"
	"github.com/expenseworks/receipts-pipeline/gen/ent/predicate"
	"github.com/expenseworks/receipts-pipeline/gen/ent/receiptfile"
	"github.com/google/uuid"
)

// ReceiptFileUpdate is the builder for updating ReceiptFile entities.
type ReceiptFileUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptFileMutation
}

// Where appends a list predicates to the ReceiptFileUpdate builder.
func (_u *ReceiptFileUpdate) Where(ps ...predicate.ReceiptFile) *ReceiptFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ReceiptFileUpdate) SetJobID(v uuid.UUID) *ReceiptFileUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ReceiptFileUpdate) SetNillableJobID(v *uuid.UUID) *ReceiptFileUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *ReceiptFileUpdate) SetStorageKey(v string) *ReceiptFileUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *ReceiptFileUpdate) SetNillableStorageKey(v *string) *ReceiptFileUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ReceiptFileUpdate) SetOriginalFilename(v string) *ReceiptFileUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ReceiptFileUpdate) SetNillableOriginalFilename(v *string) *ReceiptFileUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *ReceiptFileUpdate) ClearOriginalFilename() *ReceiptFileUpdate {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReceiptFileUpdate) SetStatus(v string) *ReceiptFileUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReceiptFileUpdate) SetNillableStatus(v *string) *ReceiptFileUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReceiptFileUpdate) SetErrorMessage(v string) *ReceiptFileUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReceiptFileUpdate) SetNillableErrorMessage(v *string) *ReceiptFileUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReceiptFileUpdate) ClearErrorMessage() *ReceiptFileUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ReceiptFileUpdate) SetProcessedAt(v time.Time) *ReceiptFileUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ReceiptFileUpdate) SetNillableProcessedAt(v *time.Time) *ReceiptFileUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ReceiptFileUpdate) ClearProcessedAt() *ReceiptFileUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptFileUpdate) SetCreatedAt(v time.Time) *ReceiptFileUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptFileUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptFileUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptFileUpdate) SetUpdatedAt(v time.Time) *ReceiptFileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ReceiptFileUpdate) SetJob(v *Job) *ReceiptFileUpdate {
	return _u.SetJobID(v.ID)
}

// AddExpenseIDs adds the "expenses" edge to the ExtractedExpense entity by IDs.
func (_u *ReceiptFileUpdate) AddExpenseIDs(ids ...uuid.UUID) *ReceiptFileUpdate {
	_u.mutation.AddExpenseIDs(ids...)
	return _u
}

// AddExpenses adds the "expenses" edges to the ExtractedExpense entity.
func (_u *ReceiptFileUpdate) AddExpenses(v ...*ExtractedExpense) *ReceiptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExpenseIDs(ids...)
}

// Mutation returns the ReceiptFileMutation object of the builder.
func (_u *ReceiptFileUpdate) Mutation() *ReceiptFileMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ReceiptFileUpdate) ClearJob() *ReceiptFileUpdate {
	_u.mutation.ClearJob()
	return _u
}

// ClearExpenses clears all "expenses" edges to the ExtractedExpense entity.
func (_u *ReceiptFileUpdate) ClearExpenses() *ReceiptFileUpdate {
	_u.mutation.ClearExpenses()
	return _u
}

// RemoveExpenseIDs removes the "expenses" edge to ExtractedExpense entities by IDs.
func (_u *ReceiptFileUpdate) RemoveExpenseIDs(ids ...uuid.UUID) *ReceiptFileUpdate {
	_u.mutation.RemoveExpenseIDs(ids...)
	return _u
}

// RemoveExpenses removes "expenses" edges to ExtractedExpense entities.
func (_u *ReceiptFileUpdate) RemoveExpenses(v ...*ExtractedExpense) *ReceiptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExpenseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptFileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptFileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receiptfile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptFileUpdate) check() error {
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := receiptfile.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "ReceiptFile.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := receiptfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReceiptFile.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptFile.job"`)
	}
	return nil
}

func (_u *ReceiptFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptfile.Table, receiptfile.Columns, sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(receiptfile.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(receiptfile.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(receiptfile.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(receiptfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(receiptfile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(receiptfile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(receiptfile.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(receiptfile.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receiptfile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receiptfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptfile.JobTable,
			Columns: []string{receiptfile.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptfile.JobTable,
			Columns: []string{receiptfile.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExpensesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptfile.ExpensesTable,
			Columns: []string{receiptfile.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExpensesIDs(); len(nodes) > 0 && !_u.mutation.ExpensesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptfile.ExpensesTable,
			Columns: []string{receiptfile.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExpensesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptfile.ExpensesTable,
			Columns: []string{receiptfile.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptFileUpdateOne is the builder for updating a single ReceiptFile entity.
type ReceiptFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptFileMutation
}

// SetJobID sets the "job_id" field.
func (_u *ReceiptFileUpdateOne) SetJobID(v uuid.UUID) *ReceiptFileUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ReceiptFileUpdateOne) SetNillableJobID(v *uuid.UUID) *ReceiptFileUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *ReceiptFileUpdateOne) SetStorageKey(v string) *ReceiptFileUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *ReceiptFileUpdateOne) SetNillableStorageKey(v *string) *ReceiptFileUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *ReceiptFileUpdateOne) SetOriginalFilename(v string) *ReceiptFileUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *ReceiptFileUpdateOne) SetNillableOriginalFilename(v *string) *ReceiptFileUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (_u *ReceiptFileUpdateOne) ClearOriginalFilename() *ReceiptFileUpdateOne {
	_u.mutation.ClearOriginalFilename()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReceiptFileUpdateOne) SetStatus(v string) *ReceiptFileUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReceiptFileUpdateOne) SetNillableStatus(v *string) *ReceiptFileUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReceiptFileUpdateOne) SetErrorMessage(v string) *ReceiptFileUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReceiptFileUpdateOne) SetNillableErrorMessage(v *string) *ReceiptFileUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReceiptFileUpdateOne) ClearErrorMessage() *ReceiptFileUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ReceiptFileUpdateOne) SetProcessedAt(v time.Time) *ReceiptFileUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ReceiptFileUpdateOne) SetNillableProcessedAt(v *time.Time) *ReceiptFileUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ReceiptFileUpdateOne) ClearProcessedAt() *ReceiptFileUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptFileUpdateOne) SetCreatedAt(v time.Time) *ReceiptFileUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptFileUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptFileUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptFileUpdateOne) SetUpdatedAt(v time.Time) *ReceiptFileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *ReceiptFileUpdateOne) SetJob(v *Job) *ReceiptFileUpdateOne {
	return _u.SetJobID(v.ID)
}

// AddExpenseIDs adds the "expenses" edge to the ExtractedExpense entity by IDs.
func (_u *ReceiptFileUpdateOne) AddExpenseIDs(ids ...uuid.UUID) *ReceiptFileUpdateOne {
	_u.mutation.AddExpenseIDs(ids...)
	return _u
}

// AddExpenses adds the "expenses" edges to the ExtractedExpense entity.
func (_u *ReceiptFileUpdateOne) AddExpenses(v ...*ExtractedExpense) *ReceiptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExpenseIDs(ids...)
}

// Mutation returns the ReceiptFileMutation object of the builder.
func (_u *ReceiptFileUpdateOne) Mutation() *ReceiptFileMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *ReceiptFileUpdateOne) ClearJob() *ReceiptFileUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// ClearExpenses clears all "expenses" edges to the ExtractedExpense entity.
func (_u *ReceiptFileUpdateOne) ClearExpenses() *ReceiptFileUpdateOne {
	_u.mutation.ClearExpenses()
	return _u
}

// RemoveExpenseIDs removes the "expenses" edge to ExtractedExpense entities by IDs.
func (_u *ReceiptFileUpdateOne) RemoveExpenseIDs(ids ...uuid.UUID) *ReceiptFileUpdateOne {
	_u.mutation.RemoveExpenseIDs(ids...)
	return _u
}

// RemoveExpenses removes "expenses" edges to ExtractedExpense entities.
func (_u *ReceiptFileUpdateOne) RemoveExpenses(v ...*ExtractedExpense) *ReceiptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExpenseIDs(ids...)
}

// Where appends a list predicates to the ReceiptFileUpdate builder.
func (_u *ReceiptFileUpdateOne) Where(ps ...predicate.ReceiptFile) *ReceiptFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptFileUpdateOne) Select(field string, fields ...string) *ReceiptFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReceiptFile entity.
func (_u *ReceiptFileUpdateOne) Save(ctx context.Context) (*ReceiptFile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptFileUpdateOne) SaveX(ctx context.Context) *ReceiptFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptFileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receiptfile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptFileUpdateOne) check() error {
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := receiptfile.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`ent: validator failed for field "ReceiptFile.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := receiptfile.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReceiptFile.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptFile.job"`)
	}
	return nil
}

func (_u *ReceiptFileUpdateOne) sqlSave(ctx context.Context) (_node *ReceiptFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptfile.Table, receiptfile.Columns, sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReceiptFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptfile.FieldID)
		for _, f := range fields {
			if !receiptfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receiptfile.FieldID {
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
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(receiptfile.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(receiptfile.FieldOriginalFilename, field.TypeString, value)
	}
	if _u.mutation.OriginalFilenameCleared() {
		_spec.ClearField(receiptfile.FieldOriginalFilename, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(receiptfile.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(receiptfile.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(receiptfile.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(receiptfile.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(receiptfile.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receiptfile.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receiptfile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptfile.JobTable,
			Columns: []string{receiptfile.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptfile.JobTable,
			Columns: []string{receiptfile.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExpensesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptfile.ExpensesTable,
			Columns: []string{receiptfile.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExpensesIDs(); len(nodes) > 0 && !_u.mutation.ExpensesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptfile.ExpensesTable,
			Columns: []string{receiptfile.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExpensesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receiptfile.ExpensesTable,
			Columns: []string{receiptfile.ExpensesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReceiptFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
