package worker

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
	"github.com/expenseworks/receipts-pipeline/internal/extract"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// memFiles is an in-memory ReceiptFileRepository with the same claim and
// transition semantics as the SQL implementation.
type memFiles struct {
	rows map[uuid.UUID]*entity.ReceiptFile
}

func newMemFiles() *memFiles { return &memFiles{rows: map[uuid.UUID]*entity.ReceiptFile{}} }

func (m *memFiles) add(status constants.ReceiptStatus, updatedAt time.Time) *entity.ReceiptFile {
	r := &entity.ReceiptFile{
		ID:         uuid.New(),
		JobID:      uuid.New(),
		StorageKey: "receipts/job/object.jpg",
		Status:     status,
		UpdatedAt:  updatedAt,
	}
	m.rows[r.ID] = r
	return r
}

func (m *memFiles) Create(context.Context, uuid.UUID, string, string) (*entity.ReceiptFile, error) {
	return nil, errors.New("not used")
}

func (m *memFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.ReceiptFile, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, common.NewAppError("RECEIPT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	cp := *r
	return &cp, nil
}

func (m *memFiles) ListByJob(context.Context, uuid.UUID) ([]*entity.ReceiptFile, error) {
	return nil, errors.New("not used")
}

func (m *memFiles) ClaimProcessing(_ context.Context, id uuid.UUID, staleBefore time.Time) (repository.ClaimOutcome, *entity.ReceiptFile, error) {
	r, ok := m.rows[id]
	if !ok {
		return 0, nil, common.NewAppError("RECEIPT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	switch {
	case r.Status.Terminal():
		return repository.SkippedTerminal, nil, nil
	case r.Status == constants.ReceiptProcessing && r.UpdatedAt.After(staleBefore):
		return repository.SkippedInFlight, nil, nil
	}
	r.Status = constants.ReceiptProcessing
	r.UpdatedAt = time.Now()
	cp := *r
	return repository.Claimed, &cp, nil
}

func (m *memFiles) MarkComplete(_ context.Context, id uuid.UUID) error {
	return m.settle(id, constants.ReceiptComplete, nil)
}

func (m *memFiles) MarkFailed(_ context.Context, id uuid.UUID, msg string) error {
	return m.settle(id, constants.ReceiptFailed, &msg)
}

func (m *memFiles) settle(id uuid.UUID, status constants.ReceiptStatus, msg *string) error {
	r, ok := m.rows[id]
	if !ok {
		return common.NewAppError("RECEIPT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	if r.Status != constants.ReceiptProcessing {
		return common.NewAppError("RECEIPT_BAD_TRANSITION", string(r.Status), common.ErrInvariant)
	}
	now := time.Now()
	r.Status = status
	r.ErrorMessage = msg
	r.ProcessedAt = &now
	return nil
}

func (m *memFiles) JobProgress(context.Context, uuid.UUID) (entity.JobProgress, error) {
	return entity.JobProgress{}, errors.New("not used")
}
func (m *memFiles) Delete(context.Context, uuid.UUID) error { return errors.New("not used") }

// memExpenses enforces the one-current-row rule.
type memExpenses struct {
	repository.ExpenseRepository
	current map[uuid.UUID]*entity.ExtractedExpense
}

func newMemExpenses() *memExpenses {
	return &memExpenses{current: map[uuid.UUID]*entity.ExtractedExpense{}}
}

func (m *memExpenses) CreateCurrent(_ context.Context, p repository.CreateExpenseParams) (*entity.ExtractedExpense, error) {
	if _, exists := m.current[p.ReceiptID]; exists {
		return nil, common.NewAppError("EXPENSE_DUPLICATE_CURRENT", p.ReceiptID.String(), common.ErrInvariant)
	}
	e := &entity.ExtractedExpense{
		ID:        uuid.New(),
		ReceiptID: p.ReceiptID,
		Amount:    p.Fields.Amount,
		Category:  p.Fields.Category,
		IsCurrent: true,
	}
	m.current[p.ReceiptID] = e
	return e, nil
}

type blobStore struct {
	blobs map[string][]byte
	err   error
}

func (b *blobStore) Get(_ context.Context, key string) ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	data, ok := b.blobs[key]
	if !ok {
		return nil, common.NewAppError("OBJECT_NOT_FOUND", key, common.ErrNotFound)
	}
	return data, nil
}
func (b *blobStore) Put(context.Context, string, string, []byte) error { return errors.New("not used") }
func (b *blobStore) Delete(context.Context, string) error              { return errors.New("not used") }
func (b *blobStore) SignedReadURL(context.Context, string, time.Duration) (string, error) {
	return "", errors.New("not used")
}
func (b *blobStore) ListKeys(context.Context, string) ([]storage.StoredObject, error) {
	return nil, errors.New("not used")
}

type stubExtractor struct {
	calls  int
	fields extract.ReceiptFields
	err    error
}

func (s *stubExtractor) Extract(context.Context, []byte) (extract.ReceiptFields, []byte, error) {
	s.calls++
	if s.err != nil {
		return extract.ReceiptFields{}, nil, s.err
	}
	return s.fields, []byte(`{"amount":12.5}`), nil
}

func goodFields() extract.ReceiptFields {
	return extract.ReceiptFields{Amount: "12.50", Category: constants.Meals}
}

func newTestProcessor(files *memFiles, expenses *memExpenses, store *blobStore, ex extract.Extractor) *Processor {
	return NewProcessor(files, expenses, store, ex, 10*time.Minute, "gpt-4o-mini", slog.Default())
}

func storeFor(files *memFiles) *blobStore {
	blobs := map[string][]byte{}
	for _, r := range files.rows {
		blobs[r.StorageKey] = []byte("image-bytes")
	}
	return &blobStore{blobs: blobs}
}

func TestProcess_HappyPath(t *testing.T) {
	files := newMemFiles()
	receipt := files.add(constants.ReceiptPending, time.Now())
	expenses := newMemExpenses()
	ex := &stubExtractor{fields: goodFields()}

	err := newTestProcessor(files, expenses, storeFor(files), ex).Process(context.Background(), receipt.ID)
	require.NoError(t, err)

	row := files.rows[receipt.ID]
	assert.Equal(t, constants.ReceiptComplete, row.Status)
	assert.NotNil(t, row.ProcessedAt)
	require.Contains(t, expenses.current, receipt.ID)
	assert.Equal(t, "12.50", expenses.current[receipt.ID].Amount)
	assert.Equal(t, 1, ex.calls)
}

func TestProcess_DuplicateDeliveryIsNoOp(t *testing.T) {
	files := newMemFiles()
	receipt := files.add(constants.ReceiptPending, time.Now())
	expenses := newMemExpenses()
	ex := &stubExtractor{fields: goodFields()}
	p := newTestProcessor(files, expenses, storeFor(files), ex)

	require.NoError(t, p.Process(context.Background(), receipt.ID))
	require.NoError(t, p.Process(context.Background(), receipt.ID), "redelivery settles without error")

	assert.Equal(t, 1, ex.calls, "extraction runs exactly once")
	assert.Len(t, expenses.current, 1)
	assert.Equal(t, constants.ReceiptComplete, files.rows[receipt.ID].Status)
}

func TestProcess_InFlightDeliveryIsDropped(t *testing.T) {
	files := newMemFiles()
	receipt := files.add(constants.ReceiptProcessing, time.Now())
	ex := &stubExtractor{fields: goodFields()}

	err := newTestProcessor(files, newMemExpenses(), storeFor(files), ex).Process(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, ex.calls)
	assert.Equal(t, constants.ReceiptProcessing, files.rows[receipt.ID].Status)
}

func TestProcess_StaleProcessingIsReclaimed(t *testing.T) {
	files := newMemFiles()
	receipt := files.add(constants.ReceiptProcessing, time.Now().Add(-time.Hour))
	expenses := newMemExpenses()
	ex := &stubExtractor{fields: goodFields()}

	err := newTestProcessor(files, expenses, storeFor(files), ex).Process(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, ex.calls, "abandoned claim is taken over")
	assert.Equal(t, constants.ReceiptComplete, files.rows[receipt.ID].Status)
}

func TestProcess_ClassifiedFailureSettlesAsFailed(t *testing.T) {
	files := newMemFiles()
	receipt := files.add(constants.ReceiptPending, time.Now())
	ex := &stubExtractor{err: &extract.Error{Kind: extract.KindSchemaViolation, Msg: "bad shape"}}

	err := newTestProcessor(files, newMemExpenses(), storeFor(files), ex).Process(context.Background(), receipt.ID)
	require.NoError(t, err, "permanent failures settle the message")

	row := files.rows[receipt.ID]
	assert.Equal(t, constants.ReceiptFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "bad shape")
}

func TestProcess_TransientFailureRetries(t *testing.T) {
	files := newMemFiles()
	receipt := files.add(constants.ReceiptPending, time.Now())
	ex := &stubExtractor{err: errors.New("openai status 503")}

	err := newTestProcessor(files, newMemExpenses(), storeFor(files), ex).Process(context.Background(), receipt.ID)
	require.Error(t, err, "transient failures must redeliver")
	assert.Equal(t, constants.ReceiptProcessing, files.rows[receipt.ID].Status,
		"row stays claimed until the stale window passes")
}

func TestProcess_MissingRowSettles(t *testing.T) {
	files := newMemFiles()
	ex := &stubExtractor{}

	err := newTestProcessor(files, newMemExpenses(), &blobStore{}, ex).Process(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, ex.calls)
}

func TestProcess_MissingBlobFailsPermanently(t *testing.T) {
	files := newMemFiles()
	receipt := files.add(constants.ReceiptPending, time.Now())
	ex := &stubExtractor{fields: goodFields()}

	err := newTestProcessor(files, newMemExpenses(), &blobStore{blobs: map[string][]byte{}}, ex).Process(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ReceiptFailed, files.rows[receipt.ID].Status)
	assert.Equal(t, 0, ex.calls)
}

func TestProcess_ExistingExpenseFinishesCompletion(t *testing.T) {
	// A previous attempt persisted the expense but crashed before marking the
	// row complete; the retry should only finish the status transition.
	files := newMemFiles()
	receipt := files.add(constants.ReceiptProcessing, time.Now().Add(-time.Hour))
	expenses := newMemExpenses()
	_, err := expenses.CreateCurrent(context.Background(), repository.CreateExpenseParams{
		ReceiptID: receipt.ID,
		Fields:    goodFields(),
	})
	require.NoError(t, err)
	ex := &stubExtractor{fields: goodFields()}

	err = newTestProcessor(files, expenses, storeFor(files), ex).Process(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ReceiptComplete, files.rows[receipt.ID].Status)
	assert.Len(t, expenses.current, 1, "no second expense row")
}
