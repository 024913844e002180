package ingest

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
	"github.com/expenseworks/receipts-pipeline/internal/entity"
	"github.com/expenseworks/receipts-pipeline/internal/imaging"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

type fakeJobs struct {
	existing map[uuid.UUID]bool
}

func (f *fakeJobs) Create(context.Context, uuid.UUID, string) (*entity.Job, error) { return nil, nil }
func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*entity.Job, error)        { return nil, nil }
func (f *fakeJobs) Exists(_ context.Context, id uuid.UUID) (bool, error)           { return f.existing[id], nil }
func (f *fakeJobs) ListIDs(context.Context) ([]uuid.UUID, error)                   { return nil, nil }
func (f *fakeJobs) Delete(context.Context, uuid.UUID) error                        { return nil }

type fakeFiles struct {
	repository.ReceiptFileRepository
	created   []*entity.ReceiptFile
	createErr error
}

func (f *fakeFiles) Create(_ context.Context, jobID uuid.UUID, filename, storageKey string) (*entity.ReceiptFile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	r := &entity.ReceiptFile{
		ID:               uuid.New(),
		JobID:            jobID,
		StorageKey:       storageKey,
		OriginalFilename: filename,
		Status:           constants.ReceiptPending,
	}
	f.created = append(f.created, r)
	return r, nil
}

type fakeStore struct {
	objects map[string][]byte
	putErr  error
}

func newFakeStore() *fakeStore { return &fakeStore{objects: map[string][]byte{}} }

func (f *fakeStore) Put(_ context.Context, key, _ string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = data
	return nil
}
func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) { return f.objects[key], nil }
func (f *fakeStore) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}
func (f *fakeStore) SignedReadURL(context.Context, string, time.Duration) (string, error) {
	return "", nil
}
func (f *fakeStore) ListKeys(context.Context, string) ([]storage.StoredObject, error) {
	return nil, nil
}

type fakeEnqueuer struct {
	enqueued []uuid.UUID
	err      error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, receiptID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, receiptID)
	return nil
}

type passthroughNormalizer struct{ err error }

func (p passthroughNormalizer) Normalize(_ context.Context, data []byte, contentType string) (imaging.NormalizedImage, error) {
	if p.err != nil {
		return imaging.NormalizedImage{}, p.err
	}
	return imaging.NormalizedImage{Data: data, ContentType: contentType}, nil
}

func newTestCoordinator(jobs *fakeJobs, files *fakeFiles, store *fakeStore, enq *fakeEnqueuer) *Coordinator {
	return NewCoordinator(jobs, files, store, enq, passthroughNormalizer{}, slog.Default())
}

func TestIngest_HappyPath(t *testing.T) {
	jobID := uuid.New()
	jobs := &fakeJobs{existing: map[uuid.UUID]bool{jobID: true}}
	files := &fakeFiles{}
	store := newFakeStore()
	enq := &fakeEnqueuer{}
	c := newTestCoordinator(jobs, files, store, enq)

	receipt, err := c.Ingest(context.Background(), jobID, Upload{
		Filename:    "receipt.png",
		ContentType: constants.MIMEPNG,
		Data:        pngBytes,
	})
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Equal(t, constants.ReceiptPending, receipt.Status)
	assert.Contains(t, store.objects, receipt.StorageKey, "blob stored under the row's key")
	require.Len(t, enq.enqueued, 1)
	assert.Equal(t, receipt.ID, enq.enqueued[0], "message carries the row id")
}

func TestIngest_RejectsBeforeAnyIO(t *testing.T) {
	jobID := uuid.New()
	store := newFakeStore()
	files := &fakeFiles{}
	enq := &fakeEnqueuer{}
	c := newTestCoordinator(&fakeJobs{}, files, store, enq)

	tests := []struct {
		name   string
		upload Upload
	}{
		{"disallowed declared type", Upload{Filename: "doc.pdf", ContentType: "application/pdf", Data: pngBytes}},
		{"content does not match an image", Upload{Filename: "fake.png", ContentType: constants.MIMEPNG, Data: []byte("plain text pretending")}},
		{"empty data", Upload{Filename: "empty.png", ContentType: constants.MIMEPNG, Data: nil}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Ingest(context.Background(), jobID, tc.upload)
			require.Error(t, err)
		})
	}
	assert.Empty(t, store.objects, "rejected uploads must not touch storage")
	assert.Empty(t, files.created)
	assert.Empty(t, enq.enqueued)
}

func TestIngest_StoreFailureLeavesNoRow(t *testing.T) {
	jobID := uuid.New()
	store := newFakeStore()
	store.putErr = errors.New("bucket unavailable")
	files := &fakeFiles{}
	enq := &fakeEnqueuer{}
	c := newTestCoordinator(&fakeJobs{}, files, store, enq)

	_, err := c.Ingest(context.Background(), jobID, Upload{
		Filename:    "receipt.png",
		ContentType: constants.MIMEPNG,
		Data:        pngBytes,
	})
	require.Error(t, err)
	assert.Empty(t, files.created, "no row without a stored blob")
	assert.Empty(t, enq.enqueued)
}

func TestIngest_EnqueueFailureKeepsPendingRow(t *testing.T) {
	jobID := uuid.New()
	files := &fakeFiles{}
	enq := &fakeEnqueuer{err: errors.New("queue unavailable")}
	c := newTestCoordinator(&fakeJobs{}, files, newFakeStore(), enq)

	receipt, err := c.Ingest(context.Background(), jobID, Upload{
		Filename:    "receipt.png",
		ContentType: constants.MIMEPNG,
		Data:        pngBytes,
	})
	require.Error(t, err)
	require.NotNil(t, receipt, "the row survives; a later requeue can pick it up")
	assert.Len(t, files.created, 1)
	assert.Equal(t, constants.ReceiptPending, receipt.Status)
}

func TestIngestBatch_IsolatesFailures(t *testing.T) {
	jobID := uuid.New()
	jobs := &fakeJobs{existing: map[uuid.UUID]bool{jobID: true}}
	files := &fakeFiles{}
	store := newFakeStore()
	enq := &fakeEnqueuer{}
	c := newTestCoordinator(jobs, files, store, enq)

	results, err := c.IngestBatch(context.Background(), jobID, []Upload{
		{Filename: "a.png", ContentType: constants.MIMEPNG, Data: pngBytes},
		{Filename: "b.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")},
		{Filename: "c.png", ContentType: constants.MIMEPNG, Data: pngBytes},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)

	assert.Len(t, files.created, 2, "good siblings of a bad file still land")
	assert.Len(t, enq.enqueued, 2)
	assert.Len(t, store.objects, 2)
}

func TestIngestBatch_UnknownJob(t *testing.T) {
	c := newTestCoordinator(&fakeJobs{}, &fakeFiles{}, newFakeStore(), &fakeEnqueuer{})

	_, err := c.IngestBatch(context.Background(), uuid.New(), []Upload{
		{Filename: "a.png", ContentType: constants.MIMEPNG, Data: pngBytes},
	})
	require.Error(t, err)
}
