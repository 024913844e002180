// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/gen/ent/job"
	"github.com/expenseworks/receipts-pipeline/gen/ent/predicate"
	"github.com/expenseworks/receipts-pipeline/gen/ent/receiptfile"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractedExpense = "ExtractedExpense"
	TypeJob              = "Job"
	TypeReceiptFile      = "ReceiptFile"
)

// ExtractedExpenseMutation represents an operation that mutates the ExtractedExpense nodes in the graph.
type ExtractedExpenseMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	merchant                *string
	description             *string
	date                    *time.Time
	amount                  *string
	category                *string
	transport_details       *json.RawMessage
	appendtransport_details json.RawMessage
	raw_json                *json.RawMessage
	appendraw_json          json.RawMessage
	model_version           *string
	is_current              *bool
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	receipt                 *uuid.UUID
	clearedreceipt          bool
	done                    bool
	oldValue                func(context.Context) (*ExtractedExpense, error)
	predicates              []predicate.ExtractedExpense
}

var _ ent.Mutation = (*ExtractedExpenseMutation)(nil)

// extractedexpenseOption allows management of the mutation configuration using functional options.
type extractedexpenseOption func(*ExtractedExpenseMutation)

// newExtractedExpenseMutation creates new mutation for the ExtractedExpense entity.
func newExtractedExpenseMutation(c config, op Op, opts ...extractedexpenseOption) *ExtractedExpenseMutation {
	m := &ExtractedExpenseMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedExpense,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedExpenseID sets the ID field of the mutation.
func withExtractedExpenseID(id uuid.UUID) extractedexpenseOption {
	return func(m *ExtractedExpenseMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedExpense
		)
		m.oldValue = func(ctx context.Context) (*ExtractedExpense, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedExpense.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedExpense sets the old ExtractedExpense of the mutation.
func withExtractedExpense(node *ExtractedExpense) extractedexpenseOption {
	return func(m *ExtractedExpenseMutation) {
		m.oldValue = func(context.Context) (*ExtractedExpense, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedExpenseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedExpenseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedExpense entities.
func (m *ExtractedExpenseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedExpenseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedExpenseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedExpense.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReceiptID sets the "receipt_id" field.
func (m *ExtractedExpenseMutation) SetReceiptID(u uuid.UUID) {
	m.receipt = &u
}

// ReceiptID returns the value of the "receipt_id" field in the mutation.
func (m *ExtractedExpenseMutation) ReceiptID() (r uuid.UUID, exists bool) {
	v := m.receipt
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptID returns the old "receipt_id" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldReceiptID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptID: %w", err)
	}
	return oldValue.ReceiptID, nil
}

// ResetReceiptID resets all changes to the "receipt_id" field.
func (m *ExtractedExpenseMutation) ResetReceiptID() {
	m.receipt = nil
}

// SetMerchant sets the "merchant" field.
func (m *ExtractedExpenseMutation) SetMerchant(s string) {
	m.merchant = &s
}

// Merchant returns the value of the "merchant" field in the mutation.
func (m *ExtractedExpenseMutation) Merchant() (r string, exists bool) {
	v := m.merchant
	if v == nil {
		return
	}
	return *v, true
}

// OldMerchant returns the old "merchant" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldMerchant(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMerchant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMerchant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMerchant: %w", err)
	}
	return oldValue.Merchant, nil
}

// ClearMerchant clears the value of the "merchant" field.
func (m *ExtractedExpenseMutation) ClearMerchant() {
	m.merchant = nil
	m.clearedFields[extractedexpense.FieldMerchant] = struct{}{}
}

// MerchantCleared returns if the "merchant" field was cleared in this mutation.
func (m *ExtractedExpenseMutation) MerchantCleared() bool {
	_, ok := m.clearedFields[extractedexpense.FieldMerchant]
	return ok
}

// ResetMerchant resets all changes to the "merchant" field.
func (m *ExtractedExpenseMutation) ResetMerchant() {
	m.merchant = nil
	delete(m.clearedFields, extractedexpense.FieldMerchant)
}

// SetDescription sets the "description" field.
func (m *ExtractedExpenseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExtractedExpenseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExtractedExpenseMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[extractedexpense.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExtractedExpenseMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[extractedexpense.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExtractedExpenseMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, extractedexpense.FieldDescription)
}

// SetDate sets the "date" field.
func (m *ExtractedExpenseMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *ExtractedExpenseMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ClearDate clears the value of the "date" field.
func (m *ExtractedExpenseMutation) ClearDate() {
	m.date = nil
	m.clearedFields[extractedexpense.FieldDate] = struct{}{}
}

// DateCleared returns if the "date" field was cleared in this mutation.
func (m *ExtractedExpenseMutation) DateCleared() bool {
	_, ok := m.clearedFields[extractedexpense.FieldDate]
	return ok
}

// ResetDate resets all changes to the "date" field.
func (m *ExtractedExpenseMutation) ResetDate() {
	m.date = nil
	delete(m.clearedFields, extractedexpense.FieldDate)
}

// SetAmount sets the "amount" field.
func (m *ExtractedExpenseMutation) SetAmount(s string) {
	m.amount = &s
}

// Amount returns the value of the "amount" field in the mutation.
func (m *ExtractedExpenseMutation) Amount() (r string, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *ExtractedExpenseMutation) ResetAmount() {
	m.amount = nil
}

// SetCategory sets the "category" field.
func (m *ExtractedExpenseMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExtractedExpenseMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ExtractedExpenseMutation) ResetCategory() {
	m.category = nil
}

// SetTransportDetails sets the "transport_details" field.
func (m *ExtractedExpenseMutation) SetTransportDetails(jm json.RawMessage) {
	m.transport_details = &jm
	m.appendtransport_details = nil
}

// TransportDetails returns the value of the "transport_details" field in the mutation.
func (m *ExtractedExpenseMutation) TransportDetails() (r json.RawMessage, exists bool) {
	v := m.transport_details
	if v == nil {
		return
	}
	return *v, true
}

// OldTransportDetails returns the old "transport_details" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldTransportDetails(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransportDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransportDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransportDetails: %w", err)
	}
	return oldValue.TransportDetails, nil
}

// AppendTransportDetails adds jm to the "transport_details" field.
func (m *ExtractedExpenseMutation) AppendTransportDetails(jm json.RawMessage) {
	m.appendtransport_details = append(m.appendtransport_details, jm...)
}

// AppendedTransportDetails returns the list of values that were appended to the "transport_details" field in this mutation.
func (m *ExtractedExpenseMutation) AppendedTransportDetails() (json.RawMessage, bool) {
	if len(m.appendtransport_details) == 0 {
		return nil, false
	}
	return m.appendtransport_details, true
}

// ClearTransportDetails clears the value of the "transport_details" field.
func (m *ExtractedExpenseMutation) ClearTransportDetails() {
	m.transport_details = nil
	m.appendtransport_details = nil
	m.clearedFields[extractedexpense.FieldTransportDetails] = struct{}{}
}

// TransportDetailsCleared returns if the "transport_details" field was cleared in this mutation.
func (m *ExtractedExpenseMutation) TransportDetailsCleared() bool {
	_, ok := m.clearedFields[extractedexpense.FieldTransportDetails]
	return ok
}

// ResetTransportDetails resets all changes to the "transport_details" field.
func (m *ExtractedExpenseMutation) ResetTransportDetails() {
	m.transport_details = nil
	m.appendtransport_details = nil
	delete(m.clearedFields, extractedexpense.FieldTransportDetails)
}

// SetRawJSON sets the "raw_json" field.
func (m *ExtractedExpenseMutation) SetRawJSON(jm json.RawMessage) {
	m.raw_json = &jm
	m.appendraw_json = nil
}

// RawJSON returns the value of the "raw_json" field in the mutation.
func (m *ExtractedExpenseMutation) RawJSON() (r json.RawMessage, exists bool) {
	v := m.raw_json
	if v == nil {
		return
	}
	return *v, true
}

// OldRawJSON returns the old "raw_json" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldRawJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawJSON: %w", err)
	}
	return oldValue.RawJSON, nil
}

// AppendRawJSON adds jm to the "raw_json" field.
func (m *ExtractedExpenseMutation) AppendRawJSON(jm json.RawMessage) {
	m.appendraw_json = append(m.appendraw_json, jm...)
}

// AppendedRawJSON returns the list of values that were appended to the "raw_json" field in this mutation.
func (m *ExtractedExpenseMutation) AppendedRawJSON() (json.RawMessage, bool) {
	if len(m.appendraw_json) == 0 {
		return nil, false
	}
	return m.appendraw_json, true
}

// ClearRawJSON clears the value of the "raw_json" field.
func (m *ExtractedExpenseMutation) ClearRawJSON() {
	m.raw_json = nil
	m.appendraw_json = nil
	m.clearedFields[extractedexpense.FieldRawJSON] = struct{}{}
}

// RawJSONCleared returns if the "raw_json" field was cleared in this mutation.
func (m *ExtractedExpenseMutation) RawJSONCleared() bool {
	_, ok := m.clearedFields[extractedexpense.FieldRawJSON]
	return ok
}

// ResetRawJSON resets all changes to the "raw_json" field.
func (m *ExtractedExpenseMutation) ResetRawJSON() {
	m.raw_json = nil
	m.appendraw_json = nil
	delete(m.clearedFields, extractedexpense.FieldRawJSON)
}

// SetModelVersion sets the "model_version" field.
func (m *ExtractedExpenseMutation) SetModelVersion(s string) {
	m.model_version = &s
}

// ModelVersion returns the value of the "model_version" field in the mutation.
func (m *ExtractedExpenseMutation) ModelVersion() (r string, exists bool) {
	v := m.model_version
	if v == nil {
		return
	}
	return *v, true
}

// OldModelVersion returns the old "model_version" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldModelVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelVersion: %w", err)
	}
	return oldValue.ModelVersion, nil
}

// ResetModelVersion resets all changes to the "model_version" field.
func (m *ExtractedExpenseMutation) ResetModelVersion() {
	m.model_version = nil
}

// SetIsCurrent sets the "is_current" field.
func (m *ExtractedExpenseMutation) SetIsCurrent(b bool) {
	m.is_current = &b
}

// IsCurrent returns the value of the "is_current" field in the mutation.
func (m *ExtractedExpenseMutation) IsCurrent() (r bool, exists bool) {
	v := m.is_current
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCurrent returns the old "is_current" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldIsCurrent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCurrent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCurrent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCurrent: %w", err)
	}
	return oldValue.IsCurrent, nil
}

// ResetIsCurrent resets all changes to the "is_current" field.
func (m *ExtractedExpenseMutation) ResetIsCurrent() {
	m.is_current = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedExpenseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedExpenseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedExpenseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractedExpenseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractedExpenseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractedExpense entity.
// If the ExtractedExpense object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedExpenseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractedExpenseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearReceipt clears the "receipt" edge to the ReceiptFile entity.
func (m *ExtractedExpenseMutation) ClearReceipt() {
	m.clearedreceipt = true
	m.clearedFields[extractedexpense.FieldReceiptID] = struct{}{}
}

// ReceiptCleared reports if the "receipt" edge to the ReceiptFile entity was cleared.
func (m *ExtractedExpenseMutation) ReceiptCleared() bool {
	return m.clearedreceipt
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *ExtractedExpenseMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *ExtractedExpenseMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// Where appends a list predicates to the ExtractedExpenseMutation builder.
func (m *ExtractedExpenseMutation) Where(ps ...predicate.ExtractedExpense) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedExpenseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedExpenseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedExpense, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedExpenseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedExpenseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedExpense).
func (m *ExtractedExpenseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedExpenseMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.receipt != nil {
		fields = append(fields, extractedexpense.FieldReceiptID)
	}
	if m.merchant != nil {
		fields = append(fields, extractedexpense.FieldMerchant)
	}
	if m.description != nil {
		fields = append(fields, extractedexpense.FieldDescription)
	}
	if m.date != nil {
		fields = append(fields, extractedexpense.FieldDate)
	}
	if m.amount != nil {
		fields = append(fields, extractedexpense.FieldAmount)
	}
	if m.category != nil {
		fields = append(fields, extractedexpense.FieldCategory)
	}
	if m.transport_details != nil {
		fields = append(fields, extractedexpense.FieldTransportDetails)
	}
	if m.raw_json != nil {
		fields = append(fields, extractedexpense.FieldRawJSON)
	}
	if m.model_version != nil {
		fields = append(fields, extractedexpense.FieldModelVersion)
	}
	if m.is_current != nil {
		fields = append(fields, extractedexpense.FieldIsCurrent)
	}
	if m.created_at != nil {
		fields = append(fields, extractedexpense.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractedexpense.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedExpenseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedexpense.FieldReceiptID:
		return m.ReceiptID()
	case extractedexpense.FieldMerchant:
		return m.Merchant()
	case extractedexpense.FieldDescription:
		return m.Description()
	case extractedexpense.FieldDate:
		return m.Date()
	case extractedexpense.FieldAmount:
		return m.Amount()
	case extractedexpense.FieldCategory:
		return m.Category()
	case extractedexpense.FieldTransportDetails:
		return m.TransportDetails()
	case extractedexpense.FieldRawJSON:
		return m.RawJSON()
	case extractedexpense.FieldModelVersion:
		return m.ModelVersion()
	case extractedexpense.FieldIsCurrent:
		return m.IsCurrent()
	case extractedexpense.FieldCreatedAt:
		return m.CreatedAt()
	case extractedexpense.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedExpenseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedexpense.FieldReceiptID:
		return m.OldReceiptID(ctx)
	case extractedexpense.FieldMerchant:
		return m.OldMerchant(ctx)
	case extractedexpense.FieldDescription:
		return m.OldDescription(ctx)
	case extractedexpense.FieldDate:
		return m.OldDate(ctx)
	case extractedexpense.FieldAmount:
		return m.OldAmount(ctx)
	case extractedexpense.FieldCategory:
		return m.OldCategory(ctx)
	case extractedexpense.FieldTransportDetails:
		return m.OldTransportDetails(ctx)
	case extractedexpense.FieldRawJSON:
		return m.OldRawJSON(ctx)
	case extractedexpense.FieldModelVersion:
		return m.OldModelVersion(ctx)
	case extractedexpense.FieldIsCurrent:
		return m.OldIsCurrent(ctx)
	case extractedexpense.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractedexpense.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedExpense field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedExpenseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedexpense.FieldReceiptID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptID(v)
		return nil
	case extractedexpense.FieldMerchant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMerchant(v)
		return nil
	case extractedexpense.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case extractedexpense.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case extractedexpense.FieldAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case extractedexpense.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case extractedexpense.FieldTransportDetails:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransportDetails(v)
		return nil
	case extractedexpense.FieldRawJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawJSON(v)
		return nil
	case extractedexpense.FieldModelVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelVersion(v)
		return nil
	case extractedexpense.FieldIsCurrent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCurrent(v)
		return nil
	case extractedexpense.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractedexpense.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedExpense field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedExpenseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedExpenseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedExpenseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractedExpense numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedExpenseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedexpense.FieldMerchant) {
		fields = append(fields, extractedexpense.FieldMerchant)
	}
	if m.FieldCleared(extractedexpense.FieldDescription) {
		fields = append(fields, extractedexpense.FieldDescription)
	}
	if m.FieldCleared(extractedexpense.FieldDate) {
		fields = append(fields, extractedexpense.FieldDate)
	}
	if m.FieldCleared(extractedexpense.FieldTransportDetails) {
		fields = append(fields, extractedexpense.FieldTransportDetails)
	}
	if m.FieldCleared(extractedexpense.FieldRawJSON) {
		fields = append(fields, extractedexpense.FieldRawJSON)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedExpenseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedExpenseMutation) ClearField(name string) error {
	switch name {
	case extractedexpense.FieldMerchant:
		m.ClearMerchant()
		return nil
	case extractedexpense.FieldDescription:
		m.ClearDescription()
		return nil
	case extractedexpense.FieldDate:
		m.ClearDate()
		return nil
	case extractedexpense.FieldTransportDetails:
		m.ClearTransportDetails()
		return nil
	case extractedexpense.FieldRawJSON:
		m.ClearRawJSON()
		return nil
	}
	return fmt.Errorf("unknown ExtractedExpense nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedExpenseMutation) ResetField(name string) error {
	switch name {
	case extractedexpense.FieldReceiptID:
		m.ResetReceiptID()
		return nil
	case extractedexpense.FieldMerchant:
		m.ResetMerchant()
		return nil
	case extractedexpense.FieldDescription:
		m.ResetDescription()
		return nil
	case extractedexpense.FieldDate:
		m.ResetDate()
		return nil
	case extractedexpense.FieldAmount:
		m.ResetAmount()
		return nil
	case extractedexpense.FieldCategory:
		m.ResetCategory()
		return nil
	case extractedexpense.FieldTransportDetails:
		m.ResetTransportDetails()
		return nil
	case extractedexpense.FieldRawJSON:
		m.ResetRawJSON()
		return nil
	case extractedexpense.FieldModelVersion:
		m.ResetModelVersion()
		return nil
	case extractedexpense.FieldIsCurrent:
		m.ResetIsCurrent()
		return nil
	case extractedexpense.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractedexpense.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedExpense field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedExpenseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receipt != nil {
		edges = append(edges, extractedexpense.EdgeReceipt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedExpenseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedexpense.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedExpenseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedExpenseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedExpenseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceipt {
		edges = append(edges, extractedexpense.EdgeReceipt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedExpenseMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedexpense.EdgeReceipt:
		return m.clearedreceipt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedExpenseMutation) ClearEdge(name string) error {
	switch name {
	case extractedexpense.EdgeReceipt:
		m.ClearReceipt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedExpense unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedExpenseMutation) ResetEdge(name string) error {
	switch name {
	case extractedexpense.EdgeReceipt:
		m.ResetReceipt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedExpense edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	user_id         *uuid.UUID
	title           *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	receipts        map[uuid.UUID]struct{}
	removedreceipts map[uuid.UUID]struct{}
	clearedreceipts bool
	done            bool
	oldValue        func(context.Context) (*Job, error)
	predicates      []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *JobMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *JobMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *JobMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *JobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobMutation) ResetTitle() {
	m.title = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddReceiptIDs adds the "receipts" edge to the ReceiptFile entity by ids.
func (m *JobMutation) AddReceiptIDs(ids ...uuid.UUID) {
	if m.receipts == nil {
		m.receipts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.receipts[ids[i]] = struct{}{}
	}
}

// ClearReceipts clears the "receipts" edge to the ReceiptFile entity.
func (m *JobMutation) ClearReceipts() {
	m.clearedreceipts = true
}

// ReceiptsCleared reports if the "receipts" edge to the ReceiptFile entity was cleared.
func (m *JobMutation) ReceiptsCleared() bool {
	return m.clearedreceipts
}

// RemoveReceiptIDs removes the "receipts" edge to the ReceiptFile entity by IDs.
func (m *JobMutation) RemoveReceiptIDs(ids ...uuid.UUID) {
	if m.removedreceipts == nil {
		m.removedreceipts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.receipts, ids[i])
		m.removedreceipts[ids[i]] = struct{}{}
	}
}

// RemovedReceipts returns the removed IDs of the "receipts" edge to the ReceiptFile entity.
func (m *JobMutation) RemovedReceiptsIDs() (ids []uuid.UUID) {
	for id := range m.removedreceipts {
		ids = append(ids, id)
	}
	return
}

// ReceiptsIDs returns the "receipts" edge IDs in the mutation.
func (m *JobMutation) ReceiptsIDs() (ids []uuid.UUID) {
	for id := range m.receipts {
		ids = append(ids, id)
	}
	return
}

// ResetReceipts resets all changes to the "receipts" edge.
func (m *JobMutation) ResetReceipts() {
	m.receipts = nil
	m.clearedreceipts = false
	m.removedreceipts = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, job.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, job.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldUserID:
		return m.UserID()
	case job.FieldTitle:
		return m.Title()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldUserID:
		return m.OldUserID(ctx)
	case job.FieldTitle:
		return m.OldTitle(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case job.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldUserID:
		m.ResetUserID()
		return nil
	case job.FieldTitle:
		m.ResetTitle()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receipts != nil {
		edges = append(edges, job.EdgeReceipts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeReceipts:
		ids := make([]ent.Value, 0, len(m.receipts))
		for id := range m.receipts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedreceipts != nil {
		edges = append(edges, job.EdgeReceipts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeReceipts:
		ids := make([]ent.Value, 0, len(m.removedreceipts))
		for id := range m.removedreceipts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceipts {
		edges = append(edges, job.EdgeReceipts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeReceipts:
		return m.clearedreceipts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeReceipts:
		m.ResetReceipts()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// ReceiptFileMutation represents an operation that mutates the ReceiptFile nodes in the graph.
type ReceiptFileMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	storage_key       *string
	original_filename *string
	status            *string
	error_message     *string
	processed_at      *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	job               *uuid.UUID
	clearedjob        bool
	expenses          map[uuid.UUID]struct{}
	removedexpenses   map[uuid.UUID]struct{}
	clearedexpenses   bool
	done              bool
	oldValue          func(context.Context) (*ReceiptFile, error)
	predicates        []predicate.ReceiptFile
}

var _ ent.Mutation = (*ReceiptFileMutation)(nil)

// receiptfileOption allows management of the mutation configuration using functional options.
type receiptfileOption func(*ReceiptFileMutation)

// newReceiptFileMutation creates new mutation for the ReceiptFile entity.
func newReceiptFileMutation(c config, op Op, opts ...receiptfileOption) *ReceiptFileMutation {
	m := &ReceiptFileMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiptFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptFileID sets the ID field of the mutation.
func withReceiptFileID(id uuid.UUID) receiptfileOption {
	return func(m *ReceiptFileMutation) {
		var (
			err   error
			once  sync.Once
			value *ReceiptFile
		)
		m.oldValue = func(ctx context.Context) (*ReceiptFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReceiptFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiptFile sets the old ReceiptFile of the mutation.
func withReceiptFile(node *ReceiptFile) receiptfileOption {
	return func(m *ReceiptFileMutation) {
		m.oldValue = func(context.Context) (*ReceiptFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReceiptFile entities.
func (m *ReceiptFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReceiptFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ReceiptFileMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ReceiptFileMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ReceiptFileMutation) ResetJobID() {
	m.job = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *ReceiptFileMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *ReceiptFileMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *ReceiptFileMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *ReceiptFileMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *ReceiptFileMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldOriginalFilename(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ClearOriginalFilename clears the value of the "original_filename" field.
func (m *ReceiptFileMutation) ClearOriginalFilename() {
	m.original_filename = nil
	m.clearedFields[receiptfile.FieldOriginalFilename] = struct{}{}
}

// OriginalFilenameCleared returns if the "original_filename" field was cleared in this mutation.
func (m *ReceiptFileMutation) OriginalFilenameCleared() bool {
	_, ok := m.clearedFields[receiptfile.FieldOriginalFilename]
	return ok
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *ReceiptFileMutation) ResetOriginalFilename() {
	m.original_filename = nil
	delete(m.clearedFields, receiptfile.FieldOriginalFilename)
}

// SetStatus sets the "status" field.
func (m *ReceiptFileMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ReceiptFileMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ReceiptFileMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ReceiptFileMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ReceiptFileMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ReceiptFileMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[receiptfile.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ReceiptFileMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[receiptfile.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ReceiptFileMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, receiptfile.FieldErrorMessage)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ReceiptFileMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ReceiptFileMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *ReceiptFileMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[receiptfile.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *ReceiptFileMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[receiptfile.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ReceiptFileMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, receiptfile.FieldProcessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReceiptFileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReceiptFileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReceiptFileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReceiptFileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReceiptFileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReceiptFile entity.
// If the ReceiptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptFileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReceiptFileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *ReceiptFileMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[receiptfile.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *ReceiptFileMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ReceiptFileMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ReceiptFileMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// AddExpenseIDs adds the "expenses" edge to the ExtractedExpense entity by ids.
func (m *ReceiptFileMutation) AddExpenseIDs(ids ...uuid.UUID) {
	if m.expenses == nil {
		m.expenses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.expenses[ids[i]] = struct{}{}
	}
}

// ClearExpenses clears the "expenses" edge to the ExtractedExpense entity.
func (m *ReceiptFileMutation) ClearExpenses() {
	m.clearedexpenses = true
}

// ExpensesCleared reports if the "expenses" edge to the ExtractedExpense entity was cleared.
func (m *ReceiptFileMutation) ExpensesCleared() bool {
	return m.clearedexpenses
}

// RemoveExpenseIDs removes the "expenses" edge to the ExtractedExpense entity by IDs.
func (m *ReceiptFileMutation) RemoveExpenseIDs(ids ...uuid.UUID) {
	if m.removedexpenses == nil {
		m.removedexpenses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.expenses, ids[i])
		m.removedexpenses[ids[i]] = struct{}{}
	}
}

// RemovedExpenses returns the removed IDs of the "expenses" edge to the ExtractedExpense entity.
func (m *ReceiptFileMutation) RemovedExpensesIDs() (ids []uuid.UUID) {
	for id := range m.removedexpenses {
		ids = append(ids, id)
	}
	return
}

// ExpensesIDs returns the "expenses" edge IDs in the mutation.
func (m *ReceiptFileMutation) ExpensesIDs() (ids []uuid.UUID) {
	for id := range m.expenses {
		ids = append(ids, id)
	}
	return
}

// ResetExpenses resets all changes to the "expenses" edge.
func (m *ReceiptFileMutation) ResetExpenses() {
	m.expenses = nil
	m.clearedexpenses = false
	m.removedexpenses = nil
}

// Where appends a list predicates to the ReceiptFileMutation builder.
func (m *ReceiptFileMutation) Where(ps ...predicate.ReceiptFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReceiptFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReceiptFile).
func (m *ReceiptFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptFileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.job != nil {
		fields = append(fields, receiptfile.FieldJobID)
	}
	if m.storage_key != nil {
		fields = append(fields, receiptfile.FieldStorageKey)
	}
	if m.original_filename != nil {
		fields = append(fields, receiptfile.FieldOriginalFilename)
	}
	if m.status != nil {
		fields = append(fields, receiptfile.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, receiptfile.FieldErrorMessage)
	}
	if m.processed_at != nil {
		fields = append(fields, receiptfile.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, receiptfile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, receiptfile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiptfile.FieldJobID:
		return m.JobID()
	case receiptfile.FieldStorageKey:
		return m.StorageKey()
	case receiptfile.FieldOriginalFilename:
		return m.OriginalFilename()
	case receiptfile.FieldStatus:
		return m.Status()
	case receiptfile.FieldErrorMessage:
		return m.ErrorMessage()
	case receiptfile.FieldProcessedAt:
		return m.ProcessedAt()
	case receiptfile.FieldCreatedAt:
		return m.CreatedAt()
	case receiptfile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiptfile.FieldJobID:
		return m.OldJobID(ctx)
	case receiptfile.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case receiptfile.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case receiptfile.FieldStatus:
		return m.OldStatus(ctx)
	case receiptfile.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case receiptfile.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case receiptfile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case receiptfile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReceiptFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiptfile.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case receiptfile.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case receiptfile.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case receiptfile.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case receiptfile.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case receiptfile.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case receiptfile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case receiptfile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptFileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptFileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ReceiptFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receiptfile.FieldOriginalFilename) {
		fields = append(fields, receiptfile.FieldOriginalFilename)
	}
	if m.FieldCleared(receiptfile.FieldErrorMessage) {
		fields = append(fields, receiptfile.FieldErrorMessage)
	}
	if m.FieldCleared(receiptfile.FieldProcessedAt) {
		fields = append(fields, receiptfile.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptFileMutation) ClearField(name string) error {
	switch name {
	case receiptfile.FieldOriginalFilename:
		m.ClearOriginalFilename()
		return nil
	case receiptfile.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case receiptfile.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptFileMutation) ResetField(name string) error {
	switch name {
	case receiptfile.FieldJobID:
		m.ResetJobID()
		return nil
	case receiptfile.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case receiptfile.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case receiptfile.FieldStatus:
		m.ResetStatus()
		return nil
	case receiptfile.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case receiptfile.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case receiptfile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case receiptfile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.job != nil {
		edges = append(edges, receiptfile.EdgeJob)
	}
	if m.expenses != nil {
		edges = append(edges, receiptfile.EdgeExpenses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiptfile.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case receiptfile.EdgeExpenses:
		ids := make([]ent.Value, 0, len(m.expenses))
		for id := range m.expenses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexpenses != nil {
		edges = append(edges, receiptfile.EdgeExpenses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case receiptfile.EdgeExpenses:
		ids := make([]ent.Value, 0, len(m.removedexpenses))
		for id := range m.removedexpenses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjob {
		edges = append(edges, receiptfile.EdgeJob)
	}
	if m.clearedexpenses {
		edges = append(edges, receiptfile.EdgeExpenses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptFileMutation) EdgeCleared(name string) bool {
	switch name {
	case receiptfile.EdgeJob:
		return m.clearedjob
	case receiptfile.EdgeExpenses:
		return m.clearedexpenses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptFileMutation) ClearEdge(name string) error {
	switch name {
	case receiptfile.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptFileMutation) ResetEdge(name string) error {
	switch name {
	case receiptfile.EdgeJob:
		m.ResetJob()
		return nil
	case receiptfile.EdgeExpenses:
		m.ResetExpenses()
		return nil
	}
	return fmt.Errorf("unknown ReceiptFile edge %s", name)
}
