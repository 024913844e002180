// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/expenseworks/receipts-pipeline/db/ent/schema"
	"github.com/expenseworks/receipts-pipeline/gen/ent/extractedexpense"
	"github.com/expenseworks/receipts-pipeline/gen/ent/job"
	"github.com/expenseworks/receipts-pipeline/gen/ent/receiptfile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractedexpenseFields := schema.ExtractedExpense{}.Fields()
	_ = extractedexpenseFields
	// extractedexpenseDescAmount is the schema descriptor for amount field.
	extractedexpenseDescAmount := extractedexpenseFields[5].Descriptor()
	// extractedexpense.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	extractedexpense.AmountValidator = extractedexpenseDescAmount.Validators[0].(func(string) error)
	// extractedexpenseDescCategory is the schema descriptor for category field.
	extractedexpenseDescCategory := extractedexpenseFields[6].Descriptor()
	// extractedexpense.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	extractedexpense.CategoryValidator = extractedexpenseDescCategory.Validators[0].(func(string) error)
	// extractedexpenseDescModelVersion is the schema descriptor for model_version field.
	extractedexpenseDescModelVersion := extractedexpenseFields[9].Descriptor()
	// extractedexpense.ModelVersionValidator is a validator for the "model_version" field. It is called by the builders before save.
	extractedexpense.ModelVersionValidator = extractedexpenseDescModelVersion.Validators[0].(func(string) error)
	// extractedexpenseDescIsCurrent is the schema descriptor for is_current field.
	extractedexpenseDescIsCurrent := extractedexpenseFields[10].Descriptor()
	// extractedexpense.DefaultIsCurrent holds the default value on creation for the is_current field.
	extractedexpense.DefaultIsCurrent = extractedexpenseDescIsCurrent.Default.(bool)
	// extractedexpenseDescCreatedAt is the schema descriptor for created_at field.
	extractedexpenseDescCreatedAt := extractedexpenseFields[11].Descriptor()
	// extractedexpense.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedexpense.DefaultCreatedAt = extractedexpenseDescCreatedAt.Default.(func() time.Time)
	// extractedexpenseDescUpdatedAt is the schema descriptor for updated_at field.
	extractedexpenseDescUpdatedAt := extractedexpenseFields[12].Descriptor()
	// extractedexpense.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractedexpense.DefaultUpdatedAt = extractedexpenseDescUpdatedAt.Default.(func() time.Time)
	// extractedexpense.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractedexpense.UpdateDefaultUpdatedAt = extractedexpenseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractedexpenseDescID is the schema descriptor for id field.
	extractedexpenseDescID := extractedexpenseFields[0].Descriptor()
	// extractedexpense.DefaultID holds the default value on creation for the id field.
	extractedexpense.DefaultID = extractedexpenseDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescTitle is the schema descriptor for title field.
	jobDescTitle := jobFields[2].Descriptor()
	// job.DefaultTitle holds the default value on creation for the title field.
	job.DefaultTitle = jobDescTitle.Default.(string)
	// job.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	job.TitleValidator = jobDescTitle.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[3].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[4].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	receiptfileFields := schema.ReceiptFile{}.Fields()
	_ = receiptfileFields
	// receiptfileDescStorageKey is the schema descriptor for storage_key field.
	receiptfileDescStorageKey := receiptfileFields[2].Descriptor()
	// receiptfile.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	receiptfile.StorageKeyValidator = receiptfileDescStorageKey.Validators[0].(func(string) error)
	// receiptfileDescStatus is the schema descriptor for status field.
	receiptfileDescStatus := receiptfileFields[4].Descriptor()
	// receiptfile.DefaultStatus holds the default value on creation for the status field.
	receiptfile.DefaultStatus = receiptfileDescStatus.Default.(string)
	// receiptfile.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	receiptfile.StatusValidator = receiptfileDescStatus.Validators[0].(func(string) error)
	// receiptfileDescCreatedAt is the schema descriptor for created_at field.
	receiptfileDescCreatedAt := receiptfileFields[7].Descriptor()
	// receiptfile.DefaultCreatedAt holds the default value on creation for the created_at field.
	receiptfile.DefaultCreatedAt = receiptfileDescCreatedAt.Default.(func() time.Time)
	// receiptfileDescUpdatedAt is the schema descriptor for updated_at field.
	receiptfileDescUpdatedAt := receiptfileFields[8].Descriptor()
	// receiptfile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receiptfile.DefaultUpdatedAt = receiptfileDescUpdatedAt.Default.(func() time.Time)
	// receiptfile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receiptfile.UpdateDefaultUpdatedAt = receiptfileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptfileDescID is the schema descriptor for id field.
	receiptfileDescID := receiptfileFields[0].Descriptor()
	// receiptfile.DefaultID holds the default value on creation for the id field.
	receiptfile.DefaultID = receiptfileDescID.Default.(func() uuid.UUID)
}
