package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mrled/addrbook/internal/config"
	"github.com/mrled/addrbook/internal/logger"
	"github.com/mrled/addrbook/internal/repository"
)

// Handler copies the DynamoDB address book to an S3 object whenever the
// table's stream reports a change
type Handler struct {
	source repository.DirectoryStore
	target repository.DirectoryStore
	log    *slog.Logger
}

// NewHandler creates a mirror handler from the environment.
// Both a DynamoDB table and an S3 bucket must be configured.
func NewHandler(ctx context.Context) (*Handler, error) {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "mirror")
	logger.SetDefault(log)

	cfg, err := config.Load(os.Getenv(config.EnvConfig))
	if err != nil {
		return nil, err
	}
	if cfg.Storage.DynamoTable == "" {
		return nil, fmt.Errorf("%s environment variable is required", config.EnvDynamoTable)
	}
	if cfg.Storage.S3Bucket == "" {
		return nil, fmt.Errorf("%s environment variable is required", config.EnvS3Bucket)
	}

	sourceCfg := repository.RepositoryConfig{
		DynamoTable:    cfg.Storage.DynamoTable,
		DynamoEndpoint: cfg.Storage.DynamoEndpoint,
	}
	source, err := repository.NewRepository(ctx, sourceCfg)
	if err != nil {
		return nil, err
	}

	targetCfg := repository.RepositoryConfig{
		S3Bucket: cfg.Storage.S3Bucket,
		S3Key:    cfg.Storage.S3Key,
	}
	target, err := repository.NewRepository(ctx, targetCfg)
	if err != nil {
		return nil, err
	}

	log.Info("Mirror configured",
		slog.String("source", sourceCfg.Describe()),
		slog.String("target", targetCfg.Describe()))

	return NewHandlerWithStores(source, target, log), nil
}

// NewHandlerWithStores creates a handler that copies source to target
func NewHandlerWithStores(source, target repository.DirectoryStore, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		source: source,
		target: target,
		log:    log,
	}
}

// Handle processes DynamoDB stream events. The whole address book is copied
// once per batch; an empty batch does nothing.
func (h *Handler) Handle(ctx context.Context, event events.DynamoDBEvent) error {
	if len(event.Records) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, record := range event.Records {
		counts[record.EventName]++
	}
	h.log.Info("Processing stream batch",
		slog.Int("records", len(event.Records)),
		slog.Int("inserts", counts[string(events.DynamoDBOperationTypeInsert)]),
		slog.Int("modifies", counts[string(events.DynamoDBOperationTypeModify)]),
		slog.Int("removes", counts[string(events.DynamoDBOperationTypeRemove)]))

	book, err := h.source.Load(ctx)
	if err != nil {
		h.log.Error("Failed to load address book",
			slog.String("error", err.Error()),
			slog.Bool("notify", true))
		return fmt.Errorf("failed to load address book: %w", err)
	}

	if err := h.target.Save(ctx, book); err != nil {
		h.log.Error("Failed to write mirror",
			slog.String("error", err.Error()),
			slog.Bool("notify", true))
		return fmt.Errorf("failed to write mirror: %w", err)
	}

	h.log.Info("Mirror updated", slog.Int("contacts", book.Len()))
	return nil
}
