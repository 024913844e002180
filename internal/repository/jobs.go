package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/gen/ent"
	"github.com/expenseworks/receipts-pipeline/gen/ent/job"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/entity"
)

type JobRepository interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	// Delete removes the job; its receipt rows cascade in the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepo{client: client, logger: logger}
}

func (r *jobRepo) Create(ctx context.Context, userID uuid.UUID, title string) (*entity.Job, error) {
	builder := r.client.Job.Create().SetUserID(userID)
	if title != "" {
		builder = builder.SetTitle(title)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("job create failed", "user_id", userID, "error", err)
		return nil, err
	}
	r.logger.Info("job created", "job_id", row.ID, "user_id", userID)
	return toJob(row), nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.client.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("JOB_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return nil, err
	}
	return toJob(row), nil
}

func (r *jobRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Job.Query().Where(job.ID(id)).Exist(ctx)
}

func (r *jobRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	return r.client.Job.Query().IDs(ctx)
}

func (r *jobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Job.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("JOB_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.logger.Error("job delete failed", "job_id", id, "error", err)
		return err
	}
	r.logger.Info("job deleted", "job_id", id)
	return nil
}
