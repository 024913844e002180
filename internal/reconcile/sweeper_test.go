package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseworks/receipts-pipeline/internal/entity"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

type fakeJobs struct {
	repository.JobRepository
	ids []uuid.UUID
}

func (f *fakeJobs) ListIDs(context.Context) ([]uuid.UUID, error) { return f.ids, nil }

type fakeFiles struct {
	repository.ReceiptFileRepository
	byJob map[uuid.UUID][]*entity.ReceiptFile
	err   error
}

func (f *fakeFiles) ListByJob(_ context.Context, jobID uuid.UUID) ([]*entity.ReceiptFile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byJob[jobID], nil
}

type fakeStore struct {
	storage.Store
	objects map[string]time.Time
	deleted []string
}

func (f *fakeStore) ListKeys(_ context.Context, prefix string) ([]storage.StoredObject, error) {
	var out []storage.StoredObject
	for key, mod := range f.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			out = append(out, storage.StoredObject{Key: key, LastModified: mod})
		}
	}
	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func TestSweepJob(t *testing.T) {
	jobID := uuid.New()
	old := time.Now().Add(-2 * time.Hour)

	referencedKey := storage.BuildReceiptKey(jobID, "image/jpeg")
	orphanKey := storage.BuildReceiptKey(jobID, "image/jpeg")
	freshOrphanKey := storage.BuildReceiptKey(jobID, "image/jpeg")

	files := &fakeFiles{byJob: map[uuid.UUID][]*entity.ReceiptFile{
		jobID: {{ID: uuid.New(), JobID: jobID, StorageKey: referencedKey}},
	}}
	store := &fakeStore{objects: map[string]time.Time{
		referencedKey:  old,
		orphanKey:      old,
		freshOrphanKey: time.Now(),
	}}

	s := NewSweeper(&fakeJobs{}, files, store, time.Hour, false, slog.Default())
	report, err := s.SweepJob(context.Background(), jobID)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 1, report.Orphans)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, []string{orphanKey}, store.deleted)
	assert.Contains(t, store.objects, referencedKey, "referenced objects survive")
	assert.Contains(t, store.objects, freshOrphanKey, "grace window protects in-flight ingestions")
}

func TestSweepJob_DryRun(t *testing.T) {
	jobID := uuid.New()
	orphanKey := storage.BuildReceiptKey(jobID, "image/png")

	files := &fakeFiles{byJob: map[uuid.UUID][]*entity.ReceiptFile{}}
	store := &fakeStore{objects: map[string]time.Time{
		orphanKey: time.Now().Add(-2 * time.Hour),
	}}

	s := NewSweeper(&fakeJobs{}, files, store, time.Hour, true, slog.Default())
	report, err := s.SweepJob(context.Background(), jobID)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Orphans)
	assert.Equal(t, 0, report.Deleted)
	assert.Empty(t, store.deleted)
}

func TestSweepAll_AggregatesAcrossJobs(t *testing.T) {
	jobA, jobB := uuid.New(), uuid.New()
	old := time.Now().Add(-2 * time.Hour)

	orphanA := storage.BuildReceiptKey(jobA, "image/jpeg")
	orphanB := storage.BuildReceiptKey(jobB, "image/jpeg")

	files := &fakeFiles{byJob: map[uuid.UUID][]*entity.ReceiptFile{}}
	store := &fakeStore{objects: map[string]time.Time{
		orphanA: old,
		orphanB: old,
	}}

	s := NewSweeper(&fakeJobs{ids: []uuid.UUID{jobA, jobB}}, files, store, time.Hour, false, slog.Default())
	report, err := s.SweepAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Deleted)
	assert.Empty(t, store.objects)
}

func TestSweepAll_SkipsFailingJob(t *testing.T) {
	jobA := uuid.New()
	files := &fakeFiles{err: errors.New("db down")}
	store := &fakeStore{objects: map[string]time.Time{}}

	s := NewSweeper(&fakeJobs{ids: []uuid.UUID{jobA}}, files, store, time.Hour, false, slog.Default())
	report, err := s.SweepAll(context.Background())
	require.NoError(t, err, "per-job failures are logged, not fatal")
	assert.Equal(t, 0, report.Scanned)
}
