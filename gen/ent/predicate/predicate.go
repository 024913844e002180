// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractedExpense is the predicate function for extractedexpense builders.
type ExtractedExpense func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// ReceiptFile is the predicate function for receiptfile builders.
type ReceiptFile func(*sql.Selector)
