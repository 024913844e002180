package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/expenseworks/receipts-pipeline/internal/common"
	"github.com/expenseworks/receipts-pipeline/internal/extract/openai"
	"github.com/expenseworks/receipts-pipeline/internal/repository"
	"github.com/expenseworks/receipts-pipeline/internal/storage"
	"github.com/expenseworks/receipts-pipeline/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

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

	filesRepo := repository.NewReceiptFileRepository(entc, logger)
	expensesRepo := repository.NewExpenseRepository(entc, logger)

	extractor := openai.NewClient(openai.Config{
		Model:       cfg.Extractor.Model,
		APIKey:      cfg.Extractor.APIKey,
		BaseURL:     cfg.Extractor.BaseURL,
		Temperature: cfg.Extractor.Temperature,
		Timeout:     cfg.Extractor.Timeout,
	}, logger)

	processor := worker.NewProcessor(
		filesRepo, expensesRepo, store, extractor,
		cfg.Worker.StaleAfter, extractor.Model(), logger,
	)
	handler := worker.NewHandler(processor, logger,
		worker.WithConcurrency(cfg.Worker.Concurrency),
	)

	logger.Info("worker starting",
		"bucket", cfg.Storage.Bucket,
		"model", extractor.Model(),
		"concurrency", cfg.Worker.Concurrency,
	)
	lambda.StartWithOptions(handler.HandleSQSEvent, lambda.WithContext(ctx))
}
