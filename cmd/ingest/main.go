package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/imaging"
	"github.com/expenseworks/receipts-pipeline/internal/ingest"
	"github.com/expenseworks/receipts-pipeline/internal/queue"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
	"github.com/expenseworks/receipts-pipeline/internal/worker"
)

// Local CLI for pushing receipt files into the pipeline without the upload
// API: creates or reuses a job, then ingests each file argument.
func main() {
	var (
		jobFlag     = flag.String("job", "", "existing job id; a new job is created when empty")
		userFlag    = flag.String("user", "", "user id for a newly created job")
		titleFlag   = flag.String("title", "Expense report", "title for a newly created job")
		requeueFlag = flag.String("requeue", "", "re-enqueue an existing receipt id and exit")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := run(context.Background(), cfg, logger, *jobFlag, *userFlag, *titleFlag, *requeueFlag, flag.Args()); err != nil {
		logger.Error("ingest failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *common.Config, logger *slog.Logger, jobArg, userArg, title, requeueArg string, paths []string) error {
	if cfg.Database.DSN == "" || cfg.Storage.Bucket == "" || cfg.Queue.URL == "" {
		return fmt.Errorf("DB_URL, S3_BUCKET and SQS_QUEUE_URL are required")
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repository.Close(entc, pool, logger)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Queue.Region))
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	s3c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = &cfg.Storage.Endpoint
			o.UsePathStyle = true
		}
	})
	sqsc := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = &cfg.Storage.Endpoint
		}
	})

	store := storage.NewClient(s3c, cfg.Storage.Bucket, logger)
	enqueuer := queue.NewClient(sqsc, cfg.Queue.URL, cfg.Queue.MessageGroup, logger)

	if requeueArg != "" {
		receiptID, err := worker.ParseReceiptID(requeueArg)
		if err != nil {
			return err
		}
		if err := enqueuer.Enqueue(ctx, receiptID); err != nil {
			return fmt.Errorf("requeue receipt: %w", err)
		}
		logger.Info("receipt re-enqueued", "receipt_id", receiptID)
		return nil
	}

	if len(paths) == 0 {
		return fmt.Errorf("no files given")
	}

	jobsRepo := repository.NewJobRepository(entc, logger)
	filesRepo := repository.NewReceiptFileRepository(entc, logger)

	jobID, err := resolveJob(ctx, jobsRepo, jobArg, userArg, title, logger)
	if err != nil {
		return err
	}

	converter := os.Getenv("HEIC_CONVERTER")
	if converter == "" {
		converter = "magick"
	}
	normalizer := imaging.NewNormalizer(imaging.NewExecRunner(), converter, logger)
	coordinator := ingest.NewCoordinator(jobsRepo, filesRepo, store, enqueuer, normalizer, logger)

	uploads := make([]ingest.Upload, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		uploads = append(uploads, ingest.Upload{
			Filename:    filepath.Base(path),
			ContentType: mimetype.Detect(data).String(),
			Data:        data,
		})
	}

	start := time.Now()
	results, err := coordinator.IngestBatch(ctx, jobID, uploads)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.Error("file rejected", "filename", res.Filename, "error", res.Err)
			continue
		}
		logger.Info("file ingested", "filename", res.Filename, "receipt_id", res.Receipt.ID)
	}
	logger.Info("batch done",
		"job_id", jobID, "total", len(results), "failed", failed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func resolveJob(ctx context.Context, jobs repository.JobRepository, jobArg, userArg, title string, logger *slog.Logger) (uuid.UUID, error) {
	if jobArg != "" {
		jobID, err := uuid.Parse(jobArg)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid job id %q: %w", jobArg, err)
		}
		return jobID, nil
	}

	userID := uuid.New()
	if userArg != "" {
		parsed, err := uuid.Parse(userArg)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid user id %q: %w", userArg, err)
		}
		userID = parsed
	}
	job, err := jobs.Create(ctx, userID, title)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create job: %w", err)
	}
	logger.Info("job created", "job_id", job.ID, "user_id", userID, "title", title)
	return job.ID, nil
}
