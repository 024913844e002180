// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/gen/ent/predicate"
	"github.com/expenseworks/receipts-pipeline/gen/ent/receiptfile"
	"github.com/google/uuid"
)

// ExtractedExpenseUpdate is the builder for updating ExtractedExpense entities.
type ExtractedExpenseUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedExpenseMutation
}

// Where appends a list predicates to the ExtractedExpenseUpdate builder.
func (_u *ExtractedExpenseUpdate) Where(ps ...predicate.ExtractedExpense) *ExtractedExpenseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *ExtractedExpenseUpdate) SetReceiptID(v uuid.UUID) *ExtractedExpenseUpdate {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableReceiptID(v *uuid.UUID) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *ExtractedExpenseUpdate) SetMerchant(v string) *ExtractedExpenseUpdate {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableMerchant(v *string) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// ClearMerchant clears the value of the "merchant" field.
func (_u *ExtractedExpenseUpdate) ClearMerchant() *ExtractedExpenseUpdate {
	_u.mutation.ClearMerchant()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractedExpenseUpdate) SetDescription(v string) *ExtractedExpenseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableDescription(v *string) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractedExpenseUpdate) ClearDescription() *ExtractedExpenseUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDate sets the "date" field.
func (_u *ExtractedExpenseUpdate) SetDate(v time.Time) *ExtractedExpenseUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableDate(v *time.Time) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *ExtractedExpenseUpdate) ClearDate() *ExtractedExpenseUpdate {
	_u.mutation.ClearDate()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExtractedExpenseUpdate) SetAmount(v string) *ExtractedExpenseUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableAmount(v *string) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedExpenseUpdate) SetCategory(v string) *ExtractedExpenseUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableCategory(v *string) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTransportDetails sets the "transport_details" field.
func (_u *ExtractedExpenseUpdate) SetTransportDetails(v json.RawMessage) *ExtractedExpenseUpdate {
	_u.mutation.SetTransportDetails(v)
	return _u
}

// AppendTransportDetails appends value to the "transport_details" field.
func (_u *ExtractedExpenseUpdate) AppendTransportDetails(v json.RawMessage) *ExtractedExpenseUpdate {
	_u.mutation.AppendTransportDetails(v)
	return _u
}

// ClearTransportDetails clears the value of the "transport_details" field.
func (_u *ExtractedExpenseUpdate) ClearTransportDetails() *ExtractedExpenseUpdate {
	_u.mutation.ClearTransportDetails()
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *ExtractedExpenseUpdate) SetRawJSON(v json.RawMessage) *ExtractedExpenseUpdate {
	_u.mutation.SetRawJSON(v)
	return _u
}

// AppendRawJSON appends value to the "raw_json" field.
func (_u *ExtractedExpenseUpdate) AppendRawJSON(v json.RawMessage) *ExtractedExpenseUpdate {
	_u.mutation.AppendRawJSON(v)
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *ExtractedExpenseUpdate) ClearRawJSON() *ExtractedExpenseUpdate {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *ExtractedExpenseUpdate) SetModelVersion(v string) *ExtractedExpenseUpdate {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableModelVersion(v *string) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *ExtractedExpenseUpdate) SetIsCurrent(v bool) *ExtractedExpenseUpdate {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableIsCurrent(v *bool) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractedExpenseUpdate) SetCreatedAt(v time.Time) *ExtractedExpenseUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractedExpenseUpdate) SetNillableCreatedAt(v *time.Time) *ExtractedExpenseUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedExpenseUpdate) SetUpdatedAt(v time.Time) *ExtractedExpenseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReceipt sets the "receipt" edge to the ReceiptFile entity.
func (_u *ExtractedExpenseUpdate) SetReceipt(v *ReceiptFile) *ExtractedExpenseUpdate {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the ExtractedExpenseMutation object of the builder.
func (_u *ExtractedExpenseUpdate) Mutation() *ExtractedExpenseMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the ReceiptFile entity.
func (_u *ExtractedExpenseUpdate) ClearReceipt() *ExtractedExpenseUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedExpenseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedExpenseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedExpenseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedExpenseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedExpenseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractedexpense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedExpenseUpdate) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := extractedexpense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := extractedexpense.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelVersion(); ok {
		if err := extractedexpense.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.model_version": %w`, err)}
		}
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedExpense.receipt"`)
	}
	return nil
}

func (_u *ExtractedExpenseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedexpense.Table, extractedexpense.Columns, sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(extractedexpense.FieldMerchant, field.TypeString, value)
	}
	if _u.mutation.MerchantCleared() {
		_spec.ClearField(extractedexpense.FieldMerchant, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractedexpense.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extractedexpense.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(extractedexpense.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(extractedexpense.FieldDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(extractedexpense.FieldAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extractedexpense.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransportDetails(); ok {
		_spec.SetField(extractedexpense.FieldTransportDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTransportDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedexpense.FieldTransportDetails, value)
		})
	}
	if _u.mutation.TransportDetailsCleared() {
		_spec.ClearField(extractedexpense.FieldTransportDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(extractedexpense.FieldRawJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedexpense.FieldRawJSON, value)
		})
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(extractedexpense.FieldRawJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(extractedexpense.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(extractedexpense.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractedexpense.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedexpense.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedexpense.ReceiptTable,
			Columns: []string{extractedexpense.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedexpense.ReceiptTable,
			Columns: []string{extractedexpense.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedexpense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedExpenseUpdateOne is the builder for updating a single ExtractedExpense entity.
type ExtractedExpenseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedExpenseMutation
}

// SetReceiptID sets the "receipt_id" field.
func (_u *ExtractedExpenseUpdateOne) SetReceiptID(v uuid.UUID) *ExtractedExpenseUpdateOne {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableReceiptID(v *uuid.UUID) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetMerchant sets the "merchant" field.
func (_u *ExtractedExpenseUpdateOne) SetMerchant(v string) *ExtractedExpenseUpdateOne {
	_u.mutation.SetMerchant(v)
	return _u
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableMerchant(v *string) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetMerchant(*v)
	}
	return _u
}

// ClearMerchant clears the value of the "merchant" field.
func (_u *ExtractedExpenseUpdateOne) ClearMerchant() *ExtractedExpenseUpdateOne {
	_u.mutation.ClearMerchant()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractedExpenseUpdateOne) SetDescription(v string) *ExtractedExpenseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableDescription(v *string) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractedExpenseUpdateOne) ClearDescription() *ExtractedExpenseUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDate sets the "date" field.
func (_u *ExtractedExpenseUpdateOne) SetDate(v time.Time) *ExtractedExpenseUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableDate(v *time.Time) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// ClearDate clears the value of the "date" field.
func (_u *ExtractedExpenseUpdateOne) ClearDate() *ExtractedExpenseUpdateOne {
	_u.mutation.ClearDate()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ExtractedExpenseUpdateOne) SetAmount(v string) *ExtractedExpenseUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableAmount(v *string) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedExpenseUpdateOne) SetCategory(v string) *ExtractedExpenseUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableCategory(v *string) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTransportDetails sets the "transport_details" field.
func (_u *ExtractedExpenseUpdateOne) SetTransportDetails(v json.RawMessage) *ExtractedExpenseUpdateOne {
	_u.mutation.SetTransportDetails(v)
	return _u
}

// AppendTransportDetails appends value to the "transport_details" field.
func (_u *ExtractedExpenseUpdateOne) AppendTransportDetails(v json.RawMessage) *ExtractedExpenseUpdateOne {
	_u.mutation.AppendTransportDetails(v)
	return _u
}

// ClearTransportDetails clears the value of the "transport_details" field.
func (_u *ExtractedExpenseUpdateOne) ClearTransportDetails() *ExtractedExpenseUpdateOne {
	_u.mutation.ClearTransportDetails()
	return _u
}

// SetRawJSON sets the "raw_json" field.
func (_u *ExtractedExpenseUpdateOne) SetRawJSON(v json.RawMessage) *ExtractedExpenseUpdateOne {
	_u.mutation.SetRawJSON(v)
	return _u
}

// AppendRawJSON appends value to the "raw_json" field.
func (_u *ExtractedExpenseUpdateOne) AppendRawJSON(v json.RawMessage) *ExtractedExpenseUpdateOne {
	_u.mutation.AppendRawJSON(v)
	return _u
}

// ClearRawJSON clears the value of the "raw_json" field.
func (_u *ExtractedExpenseUpdateOne) ClearRawJSON() *ExtractedExpenseUpdateOne {
	_u.mutation.ClearRawJSON()
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *ExtractedExpenseUpdateOne) SetModelVersion(v string) *ExtractedExpenseUpdateOne {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableModelVersion(v *string) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetIsCurrent sets the "is_current" field.
func (_u *ExtractedExpenseUpdateOne) SetIsCurrent(v bool) *ExtractedExpenseUpdateOne {
	_u.mutation.SetIsCurrent(v)
	return _u
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableIsCurrent(v *bool) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetIsCurrent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractedExpenseUpdateOne) SetCreatedAt(v time.Time) *ExtractedExpenseUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractedExpenseUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractedExpenseUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractedExpenseUpdateOne) SetUpdatedAt(v time.Time) *ExtractedExpenseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReceipt sets the "receipt" edge to the ReceiptFile entity.
func (_u *ExtractedExpenseUpdateOne) SetReceipt(v *ReceiptFile) *ExtractedExpenseUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the ExtractedExpenseMutation object of the builder.
func (_u *ExtractedExpenseUpdateOne) Mutation() *ExtractedExpenseMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the ReceiptFile entity.
func (_u *ExtractedExpenseUpdateOne) ClearReceipt() *ExtractedExpenseUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// Where appends a list predicates to the ExtractedExpenseUpdate builder.
func (_u *ExtractedExpenseUpdateOne) Where(ps ...predicate.ExtractedExpense) *ExtractedExpenseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedExpenseUpdateOne) Select(field string, fields ...string) *ExtractedExpenseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedExpense entity.
func (_u *ExtractedExpenseUpdateOne) Save(ctx context.Context) (*ExtractedExpense, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedExpenseUpdateOne) SaveX(ctx context.Context) *ExtractedExpense {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedExpenseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedExpenseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedExpenseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractedexpense.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedExpenseUpdateOne) check() error {
	if v, ok := _u.mutation.Amount(); ok {
		if err := extractedexpense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := extractedexpense.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelVersion(); ok {
		if err := extractedexpense.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.model_version": %w`, err)}
		}
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedExpense.receipt"`)
	}
	return nil
}

func (_u *ExtractedExpenseUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedExpense, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedexpense.Table, extractedexpense.Columns, sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedExpense.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedexpense.FieldID)
		for _, f := range fields {
			if !extractedexpense.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedexpense.FieldID {
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
	if value, ok := _u.mutation.Merchant(); ok {
		_spec.SetField(extractedexpense.FieldMerchant, field.TypeString, value)
	}
	if _u.mutation.MerchantCleared() {
		_spec.ClearField(extractedexpense.FieldMerchant, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractedexpense.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extractedexpense.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(extractedexpense.FieldDate, field.TypeTime, value)
	}
	if _u.mutation.DateCleared() {
		_spec.ClearField(extractedexpense.FieldDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(extractedexpense.FieldAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extractedexpense.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransportDetails(); ok {
		_spec.SetField(extractedexpense.FieldTransportDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTransportDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedexpense.FieldTransportDetails, value)
		})
	}
	if _u.mutation.TransportDetailsCleared() {
		_spec.ClearField(extractedexpense.FieldTransportDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawJSON(); ok {
		_spec.SetField(extractedexpense.FieldRawJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedexpense.FieldRawJSON, value)
		})
	}
	if _u.mutation.RawJSONCleared() {
		_spec.ClearField(extractedexpense.FieldRawJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(extractedexpense.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCurrent(); ok {
		_spec.SetField(extractedexpense.FieldIsCurrent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractedexpense.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedexpense.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedexpense.ReceiptTable,
			Columns: []string{extractedexpense.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedexpense.ReceiptTable,
			Columns: []string{extractedexpense.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedExpense{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedexpense.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
