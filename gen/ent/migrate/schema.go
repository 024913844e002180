// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractedExpensesColumns holds the columns for the "extracted_expenses" table.
	ExtractedExpensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "merchant", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeString, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "category", Type: field.TypeString},
		{Name: "transport_details", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_json", Type: field.TypeJSON, Nullable: true},
		{Name: "model_version", Type: field.TypeString},
		{Name: "is_current", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "receipt_id", Type: field.TypeUUID},
	}
	// ExtractedExpensesTable holds the schema information for the "extracted_expenses" table.
	ExtractedExpensesTable = &schema.Table{
		Name:       "extracted_expenses",
		Columns:    ExtractedExpensesColumns,
		PrimaryKey: []*schema.Column{ExtractedExpensesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_expenses_receipt_files_expenses",
				Columns:    []*schema.Column{ExtractedExpensesColumns[12]},
				RefColumns: []*schema.Column{ReceiptFilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedexpense_receipt_id",
				Unique:  true,
				Columns: []*schema.Column{ExtractedExpensesColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "is_current",
				},
			},
			{
				Name:    "extractedexpense_receipt_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractedExpensesColumns[12], ExtractedExpensesColumns[10]},
			},
		},
	}
	// ExpenseReportJobsColumns holds the columns for the "expense_report_jobs" table.
	ExpenseReportJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString, Default: "Expense report"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExpenseReportJobsTable holds the schema information for the "expense_report_jobs" table.
	ExpenseReportJobsTable = &schema.Table{
		Name:       "expense_report_jobs",
		Columns:    ExpenseReportJobsColumns,
		PrimaryKey: []*schema.Column{ExpenseReportJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExpenseReportJobsColumns[1], ExpenseReportJobsColumns[3]},
			},
		},
	}
	// ReceiptFilesColumns holds the columns for the "receipt_files" table.
	ReceiptFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "storage_key", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ReceiptFilesTable holds the schema information for the "receipt_files" table.
	ReceiptFilesTable = &schema.Table{
		Name:       "receipt_files",
		Columns:    ReceiptFilesColumns,
		PrimaryKey: []*schema.Column{ReceiptFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_files_expense_report_jobs_receipts",
				Columns:    []*schema.Column{ReceiptFilesColumns[8]},
				RefColumns: []*schema.Column{ExpenseReportJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receiptfile_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{ReceiptFilesColumns[8], ReceiptFilesColumns[3]},
			},
			{
				Name:    "receiptfile_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReceiptFilesColumns[8], ReceiptFilesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractedExpensesTable,
		ExpenseReportJobsTable,
		ReceiptFilesTable,
	}
)

func init() {
	ExtractedExpensesTable.ForeignKeys[0].RefTable = ReceiptFilesTable
	ExtractedExpensesTable.Annotation = &entsql.Annotation{
		Table: "extracted_expenses",
	}
	ExpenseReportJobsTable.Annotation = &entsql.Annotation{
		Table: "expense_report_jobs",
	}
	ReceiptFilesTable.ForeignKeys[0].RefTable = ExpenseReportJobsTable
	ReceiptFilesTable.Annotation = &entsql.Annotation{
		Table: "receipt_files",
	}
}
