// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/gen/ent/receiptfile"
	"github.com/google/uuid"
)

// ExtractedExpense is the model entity for the ExtractedExpense schema.
type ExtractedExpense struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReceiptID holds the value of the "receipt_id" field.
	ReceiptID uuid.UUID `json:"receipt_id,omitempty"`
	// Merchant holds the value of the "merchant" field.
	Merchant *string `json:"merchant,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Date holds the value of the "date" field.
	Date *time.Time `json:"date,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount string `json:"amount,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// TransportDetails holds the value of the "transport_details" field.
	TransportDetails json.RawMessage `json:"transport_details,omitempty"`
	// RawJSON holds the value of the "raw_json" field.
	RawJSON json.RawMessage `json:"raw_json,omitempty"`
	// ModelVersion holds the value of the "model_version" field.
	ModelVersion string `json:"model_version,omitempty"`
	// IsCurrent holds the value of the "is_current" field.
	IsCurrent bool `json:"is_current,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedExpenseQuery when eager-loading is set.
	Edges        ExtractedExpenseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedExpenseEdges holds the relations/edges for other nodes in the graph.
type ExtractedExpenseEdges struct {
	// Receipt holds the value of the receipt edge.
	Receipt *ReceiptFile `json:"receipt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedExpenseEdges) ReceiptOrErr() (*ReceiptFile, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: receiptfile.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedExpense) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedexpense.FieldTransportDetails, extractedexpense.FieldRawJSON:
			values[i] = new([]byte)
		case extractedexpense.FieldIsCurrent:
			values[i] = new(sql.NullBool)
		case extractedexpense.FieldMerchant, extractedexpense.FieldDescription, extractedexpense.FieldAmount, extractedexpense.FieldCategory, extractedexpense.FieldModelVersion:
			values[i] = new(sql.NullString)
		case extractedexpense.FieldDate, extractedexpense.FieldCreatedAt, extractedexpense.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractedexpense.FieldID, extractedexpense.FieldReceiptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedExpense fields.
func (_m *ExtractedExpense) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedexpense.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedexpense.FieldReceiptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_id", values[i])
			} else if value != nil {
				_m.ReceiptID = *value
			}
		case extractedexpense.FieldMerchant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field merchant", values[i])
			} else if value.Valid {
				_m.Merchant = new(string)
				*_m.Merchant = value.String
			}
		case extractedexpense.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case extractedexpense.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = new(time.Time)
				*_m.Date = value.Time
			}
		case extractedexpense.FieldAmount:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.String
			}
		case extractedexpense.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case extractedexpense.FieldTransportDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transport_details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TransportDetails); err != nil {
					return fmt.Errorf("unmarshal field transport_details: %w", err)
				}
			}
		case extractedexpense.FieldRawJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawJSON); err != nil {
					return fmt.Errorf("unmarshal field raw_json: %w", err)
				}
			}
		case extractedexpense.FieldModelVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_version", values[i])
			} else if value.Valid {
				_m.ModelVersion = value.String
			}
		case extractedexpense.FieldIsCurrent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_current", values[i])
			} else if value.Valid {
				_m.IsCurrent = value.Bool
			}
		case extractedexpense.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractedexpense.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractedExpense.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedExpense) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReceipt queries the "receipt" edge of the ExtractedExpense entity.
func (_m *ExtractedExpense) QueryReceipt() *ReceiptFileQuery {
	return NewExtractedExpenseClient(_m.config).QueryReceipt(_m)
}

// Update returns a builder for updating this ExtractedExpense.
// Note that you need to call ExtractedExpense.Unwrap() before calling this method if this ExtractedExpense
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedExpense) Update() *ExtractedExpenseUpdateOne {
	return NewExtractedExpenseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedExpense entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedExpense) Unwrap() *ExtractedExpense {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedExpense is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedExpense) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedExpense(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("receipt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReceiptID))
	builder.WriteString(", ")
	if v := _m.Merchant; v != nil {
		builder.WriteString("merchant=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Date; v != nil {
		builder.WriteString("date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(_m.Amount)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("transport_details=")
	builder.WriteString(fmt.Sprintf("%v", _m.TransportDetails))
	builder.WriteString(", ")
	builder.WriteString("raw_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawJSON))
	builder.WriteString(", ")
	builder.WriteString("model_version=")
	builder.WriteString(_m.ModelVersion)
	builder.WriteString(", ")
	builder.WriteString("is_current=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCurrent))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedExpenses is a parsable slice of ExtractedExpense.
type ExtractedExpenses []*ExtractedExpense
