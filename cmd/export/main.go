package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/expenseworks/receipts-pipeline/constants"
	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/export"
	"github.com/expenseworks/receipts-pipeline/internal/receipts"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
)

// Exports a job's expenses as an XLSX workbook. Refuses jobs that are still
// processing unless -partial is given.
func main() {
	var (
		jobFlag     = flag.String("job", "", "job id to export (required)")
		outFlag     = flag.String("out", "expenses.xlsx", "output file path")
		partialFlag = flag.Bool("partial", false, "export even while receipts are still processing")
		embedFlag   = flag.Bool("embed-images", true, "embed receipt images in the workbook")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(context.Background(), *jobFlag, *outFlag, *partialFlag, *embedFlag, logger); err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, jobArg, outPath string, partial, embed bool, logger *slog.Logger) error {
	if jobArg == "" {
		return fmt.Errorf("-job is required")
	}
	jobID, err := uuid.Parse(jobArg)
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", jobArg, err)
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" || cfg.Storage.Bucket == "" {
		return fmt.Errorf("DB_URL and S3_BUCKET are required")
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

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Storage.Region))
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
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
	expensesRepo := repository.NewExpenseRepository(entc, logger)

	view := receipts.NewService(jobsRepo, filesRepo, store, 15*time.Minute, logger)
	overview, err := view.Overview(ctx, jobID)
	if err != nil {
		return fmt.Errorf("job overview: %w", err)
	}
	logger.Info("job state",
		"status", string(overview.Status),
		"total", overview.Progress.Total,
		"processed", overview.Progress.Processed,
		"failed", overview.Progress.Failed,
	)
	if overview.Status == constants.JobProcessing && !partial {
		return fmt.Errorf("job still processing (%d of %d done); pass -partial to export anyway",
			overview.Progress.Processed, overview.Progress.Total)
	}

	svc := export.NewService(filesRepo, expensesRepo, store, embed, logger)
	data, err := svc.ExportJobXLSX(ctx, jobID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	logger.Info("workbook written", "path", outPath, "bytes", len(data))
	return nil
}
