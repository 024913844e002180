package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/reconcile"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// One-shot sweep of orphaned storage objects, intended for cron.
func main() {
	var (
		jobFlag   = flag.String("job", "", "sweep a single job id instead of all jobs")
		graceFlag = flag.Duration("grace", time.Hour, "leave objects newer than this untouched")
		dryRun    = flag.Bool("dry-run", false, "report orphans without deleting them")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" || cfg.Storage.Bucket == "" {
		logger.Error("DB_URL and S3_BUCKET are required")
		os.Exit(1)
	}

	ctx := context.Background()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		logger.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}
	s3c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = &cfg.Storage.Endpoint
			o.UsePathStyle = true
		}
	})
	store := storage.NewClient(s3c, cfg.Storage.Bucket, logger)

	jobsRepo := repository.NewJobRepository(entc, logger)
	filesRepo := repository.NewReceiptFileRepository(entc, logger)
	sweeper := reconcile.NewSweeper(jobsRepo, filesRepo, store, *graceFlag, *dryRun, logger)

	var report reconcile.SweepReport
	if *jobFlag != "" {
		jobID, err := uuid.Parse(*jobFlag)
		if err != nil {
			logger.Error("invalid job id", "job", *jobFlag, "error", err)
			os.Exit(1)
		}
		report, err = sweeper.SweepJob(ctx, jobID)
		if err != nil {
			logger.Error("sweep failed", "job_id", jobID, "error", err)
			os.Exit(1)
		}
	} else {
		report, err = sweeper.SweepAll(ctx)
		if err != nil {
			logger.Error("sweep failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("done", "scanned", report.Scanned, "orphans", report.Orphans, "deleted", report.Deleted)
}
