package receipts

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
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

type fakeJobs struct {
	repository.JobRepository
	existing map[uuid.UUID]bool
}

func (f *fakeJobs) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

type fakeFiles struct {
	repository.ReceiptFileRepository
	rows     map[uuid.UUID]*entity.ReceiptFile
	progress entity.JobProgress
	deleted  []uuid.UUID
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.ReceiptFile, error) {
	r, ok := f.rows[id]
	if !ok {
		return nil, common.NewAppError("RECEIPT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return r, nil
}

func (f *fakeFiles) JobProgress(context.Context, uuid.UUID) (entity.JobProgress, error) {
	return f.progress, nil
}

func (f *fakeFiles) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return common.NewAppError("RECEIPT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeStore struct {
	storage.Store
	deleted   []string
	deleteErr error
	signedURL string
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeStore) SignedReadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return f.signedURL + key, nil
}

func seedReceipt(files *fakeFiles, status constants.ReceiptStatus) *entity.ReceiptFile {
	r := &entity.ReceiptFile{
		ID:         uuid.New(),
		JobID:      uuid.New(),
		StorageKey: "receipts/job/blob.jpg",
		Status:     status,
	}
	files.rows[r.ID] = r
	return r
}

func newTestService(jobs *fakeJobs, files *fakeFiles, store *fakeStore) *Service {
	return NewService(jobs, files, store, time.Minute, slog.Default())
}

func TestStatus(t *testing.T) {
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ReceiptFile{}}
	msg := "schema validation failed"
	now := time.Now()
	r := seedReceipt(files, constants.ReceiptFailed)
	r.ErrorMessage = &msg
	r.ProcessedAt = &now

	svc := newTestService(&fakeJobs{}, files, &fakeStore{})
	view, err := svc.Status(context.Background(), r.ID)
	require.NoError(t, err)

	assert.Equal(t, r.ID, view.ReceiptID)
	assert.Equal(t, constants.ReceiptFailed, view.Status)
	require.NotNil(t, view.ErrorMessage)
	assert.Equal(t, msg, *view.ErrorMessage)
	assert.Equal(t, &now, view.ProcessedAt)
}

func TestStatus_NotFound(t *testing.T) {
	svc := newTestService(&fakeJobs{}, &fakeFiles{rows: map[uuid.UUID]*entity.ReceiptFile{}}, &fakeStore{})
	_, err := svc.Status(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, common.IsNotFound(err))
}

func TestOverview(t *testing.T) {
	jobID := uuid.New()
	jobs := &fakeJobs{existing: map[uuid.UUID]bool{jobID: true}}
	files := &fakeFiles{
		rows:     map[uuid.UUID]*entity.ReceiptFile{},
		progress: entity.JobProgress{Total: 4, Processed: 4, Failed: 1},
	}

	svc := newTestService(jobs, files, &fakeStore{})
	overview, err := svc.Overview(context.Background(), jobID)
	require.NoError(t, err)

	assert.Equal(t, jobID, overview.JobID)
	assert.Equal(t, constants.JobFailed, overview.Status)
	assert.Equal(t, 4, overview.Progress.Total)
}

func TestOverview_UnknownJob(t *testing.T) {
	svc := newTestService(&fakeJobs{}, &fakeFiles{rows: map[uuid.UUID]*entity.ReceiptFile{}}, &fakeStore{})
	_, err := svc.Overview(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestImageURL(t *testing.T) {
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ReceiptFile{}}
	r := seedReceipt(files, constants.ReceiptComplete)

	svc := newTestService(&fakeJobs{}, files, &fakeStore{signedURL: "https://signed.example/"})
	url, err := svc.ImageURL(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example/"+r.StorageKey, url)
}

func TestDelete(t *testing.T) {
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ReceiptFile{}}
	r := seedReceipt(files, constants.ReceiptComplete)
	store := &fakeStore{}

	svc := newTestService(&fakeJobs{}, files, store)
	require.NoError(t, svc.Delete(context.Background(), r.ID))

	assert.Equal(t, []string{r.StorageKey}, store.deleted)
	assert.Equal(t, []uuid.UUID{r.ID}, files.deleted)
}

func TestDelete_StorageFailureStillDeletesRow(t *testing.T) {
	files := &fakeFiles{rows: map[uuid.UUID]*entity.ReceiptFile{}}
	r := seedReceipt(files, constants.ReceiptComplete)
	store := &fakeStore{deleteErr: errors.New("bucket unavailable")}

	svc := newTestService(&fakeJobs{}, files, store)
	require.NoError(t, svc.Delete(context.Background(), r.ID),
		"blob deletion is best effort; the sweep catches leftovers")
	assert.Equal(t, []uuid.UUID{r.ID}, files.deleted)
}
