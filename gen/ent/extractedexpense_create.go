// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/gen/ent/receiptfile"
	"github.com/google/uuid"
)

// ExtractedExpenseCreate is the builder for creating a ExtractedExpense entity.
type ExtractedExpenseCreate struct {
	config
	mutation *ExtractedExpenseMutation
	hooks    []Hook
}

// SetReceiptID sets the "receipt_id" field.
func (_c *ExtractedExpenseCreate) SetReceiptID(v uuid.UUID) *ExtractedExpenseCreate {
	_c.mutation.SetReceiptID(v)
	return _c
}

// SetMerchant sets the "merchant" field.
func (_c *ExtractedExpenseCreate) SetMerchant(v string) *ExtractedExpenseCreate {
	_c.mutation.SetMerchant(v)
	return _c
}

// SetNillableMerchant sets the "merchant" field if the given value is not nil.
func (_c *ExtractedExpenseCreate) SetNillableMerchant(v *string) *ExtractedExpenseCreate {
	if v != nil {
		_c.SetMerchant(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExtractedExpenseCreate) SetDescription(v string) *ExtractedExpenseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExtractedExpenseCreate) SetNillableDescription(v *string) *ExtractedExpenseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *ExtractedExpenseCreate) SetDate(v time.Time) *ExtractedExpenseCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *ExtractedExpenseCreate) SetNillableDate(v *time.Time) *ExtractedExpenseCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ExtractedExpenseCreate) SetAmount(v string) *ExtractedExpenseCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExtractedExpenseCreate) SetCategory(v string) *ExtractedExpenseCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTransportDetails sets the "transport_details" field.
func (_c *ExtractedExpenseCreate) SetTransportDetails(v json.RawMessage) *ExtractedExpenseCreate {
	_c.mutation.SetTransportDetails(v)
	return _c
}

// SetRawJSON sets the "raw_json" field.
func (_c *ExtractedExpenseCreate) SetRawJSON(v json.RawMessage) *ExtractedExpenseCreate {
	_c.mutation.SetRawJSON(v)
	return _c
}

// SetModelVersion sets the "model_version" field.
func (_c *ExtractedExpenseCreate) SetModelVersion(v string) *ExtractedExpenseCreate {
	_c.mutation.SetModelVersion(v)
	return _c
}

// SetIsCurrent sets the "is_current" field.
func (_c *ExtractedExpenseCreate) SetIsCurrent(v bool) *ExtractedExpenseCreate {
	_c.mutation.SetIsCurrent(v)
	return _c
}

// SetNillableIsCurrent sets the "is_current" field if the given value is not nil.
func (_c *ExtractedExpenseCreate) SetNillableIsCurrent(v *bool) *ExtractedExpenseCreate {
	if v != nil {
		_c.SetIsCurrent(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedExpenseCreate) SetCreatedAt(v time.Time) *ExtractedExpenseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedExpenseCreate) SetNillableCreatedAt(v *time.Time) *ExtractedExpenseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractedExpenseCreate) SetUpdatedAt(v time.Time) *ExtractedExpenseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractedExpenseCreate) SetNillableUpdatedAt(v *time.Time) *ExtractedExpenseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedExpenseCreate) SetID(v uuid.UUID) *ExtractedExpenseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedExpenseCreate) SetNillableID(v *uuid.UUID) *ExtractedExpenseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReceipt sets the "receipt" edge to the ReceiptFile entity.
func (_c *ExtractedExpenseCreate) SetReceipt(v *ReceiptFile) *ExtractedExpenseCreate {
	return _c.SetReceiptID(v.ID)
}

// Mutation returns the ExtractedExpenseMutation object of the builder.
func (_c *ExtractedExpenseCreate) Mutation() *ExtractedExpenseMutation {
	return _c.mutation
}

// Save creates the ExtractedExpense in the database.
func (_c *ExtractedExpenseCreate) Save(ctx context.Context) (*ExtractedExpense, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedExpenseCreate) SaveX(ctx context.Context) *ExtractedExpense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedExpenseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedExpenseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedExpenseCreate) defaults() {
	if _, ok := _c.mutation.IsCurrent(); !ok {
		v := extractedexpense.DefaultIsCurrent
		_c.mutation.SetIsCurrent(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedexpense.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractedexpense.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedexpense.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedExpenseCreate) check() error {
	if _, ok := _c.mutation.ReceiptID(); !ok {
		return &ValidationError{Name: "receipt_id", err: errors.New(`ent: missing required field "ExtractedExpense.receipt_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "ExtractedExpense.amount"`)}
	}
	if v, ok := _c.mutation.Amount(); ok {
		if err := extractedexpense.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ExtractedExpense.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := extractedexpense.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelVersion(); !ok {
		return &ValidationError{Name: "model_version", err: errors.New(`ent: missing required field "ExtractedExpense.model_version"`)}
	}
	if v, ok := _c.mutation.ModelVersion(); ok {
		if err := extractedexpense.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "ExtractedExpense.model_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCurrent(); !ok {
		return &ValidationError{Name: "is_current", err: errors.New(`ent: missing required field "ExtractedExpense.is_current"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedExpense.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractedExpense.updated_at"`)}
	}
	if len(_c.mutation.ReceiptIDs()) == 0 {
		return &ValidationError{Name: "receipt", err: errors.New(`ent: missing required edge "ExtractedExpense.receipt"`)}
	}
	return nil
}

func (_c *ExtractedExpenseCreate) sqlSave(ctx context.Context) (*ExtractedExpense, error) {
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

func (_c *ExtractedExpenseCreate) createSpec() (*ExtractedExpense, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedExpense{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedexpense.Table, sqlgraph.NewFieldSpec(extractedexpense.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Merchant(); ok {
		_spec.SetField(extractedexpense.FieldMerchant, field.TypeString, value)
		_node.Merchant = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(extractedexpense.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(extractedexpense.FieldDate, field.TypeTime, value)
		_node.Date = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(extractedexpense.FieldAmount, field.TypeString, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(extractedexpense.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.TransportDetails(); ok {
		_spec.SetField(extractedexpense.FieldTransportDetails, field.TypeJSON, value)
		_node.TransportDetails = value
	}
	if value, ok := _c.mutation.RawJSON(); ok {
		_spec.SetField(extractedexpense.FieldRawJSON, field.TypeJSON, value)
		_node.RawJSON = value
	}
	if value, ok := _c.mutation.ModelVersion(); ok {
		_spec.SetField(extractedexpense.FieldModelVersion, field.TypeString, value)
		_node.ModelVersion = value
	}
	if value, ok := _c.mutation.IsCurrent(); ok {
		_spec.SetField(extractedexpense.FieldIsCurrent, field.TypeBool, value)
		_node.IsCurrent = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedexpense.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractedexpense.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReceiptIDs(); len(nodes) > 0 {
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
		_node.ReceiptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedExpenseCreateBulk is the builder for creating many ExtractedExpense entities in bulk.
type ExtractedExpenseCreateBulk struct {
	config
	err      error
	builders []*ExtractedExpenseCreate
}

// Save creates the ExtractedExpense entities in the database.
func (_c *ExtractedExpenseCreateBulk) Save(ctx context.Context) ([]*ExtractedExpense, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedExpense, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedExpenseMutation)
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
func (_c *ExtractedExpenseCreateBulk) SaveX(ctx context.Context) []*ExtractedExpense {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedExpenseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedExpenseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
