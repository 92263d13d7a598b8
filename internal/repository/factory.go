package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mrled/addrbook/internal/repository/dynamorepo"
	"github.com/mrled/addrbook/internal/repository/memrepo"
	"github.com/mrled/addrbook/internal/repository/s3repo"
)

// RepositoryConfig holds configuration for creating a repository
type RepositoryConfig struct {
	// FilePath for JSON file persistence (used when no remote store is configured)
	FilePath string

	// DynamoTable is the DynamoDB table name for persistence
	DynamoTable string

	// DynamoEndpoint is an optional custom DynamoDB endpoint URL
	DynamoEndpoint string

	// S3Bucket is the bucket holding the address book object
	S3Bucket string

	// S3Key is the object key inside S3Bucket
	S3Key string

	// NoPersist keeps the address book in memory only
	NoPersist bool
}

// Describe returns a short human-readable name for the configured store
func (cfg RepositoryConfig) Describe() string {
	switch {
	case cfg.NoPersist:
		return "in-memory storage (no persistence)"
	case cfg.DynamoTable != "":
		return "DynamoDB table " + cfg.DynamoTable
	case cfg.S3Bucket != "":
		key := cfg.S3Key
		if key == "" {
			key = s3repo.DefaultKey
		}
		return fmt.Sprintf("s3://%s/%s", cfg.S3Bucket, key)
	default:
		return "JSON file " + cfg.FilePath
	}
}

// NewRepository creates a DirectoryStore based on the provided configuration.
// DynamoDB takes precedence over S3, which takes precedence over the JSON file.
// It returns an error if no store is configured or if creating it fails,
// including when an existing JSON file cannot be decoded.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (DirectoryStore, error) {
	if cfg.NoPersist {
		return memrepo.NewMemoryRepository(), nil
	}

	if cfg.DynamoTable != "" {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		// Create DynamoDB client
		var client *dynamodb.Client
		if cfg.DynamoEndpoint != "" {
			// Use custom endpoint if specified
			client = dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
				o.BaseEndpoint = &cfg.DynamoEndpoint
			})
			slog.Debug("Using DynamoDB endpoint", slog.String("endpoint", cfg.DynamoEndpoint))
		} else {
			// Use default endpoint discovery
			client = dynamodb.NewFromConfig(awsCfg)
		}

		slog.Debug("Using DynamoDB table", slog.String("table", cfg.DynamoTable))
		return dynamorepo.NewDynamoRepository(client, cfg.DynamoTable), nil
	}

	if cfg.S3Bucket != "" {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		repo := s3repo.New(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Key)
		slog.Debug("Using S3 persistence", slog.String("location", repo.Location()))
		return repo, nil
	}

	if cfg.FilePath != "" {
		memRepo, err := memrepo.NewMemoryRepositoryWithPersistence(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", cfg.FilePath, err)
		}
		slog.Debug("Using JSON persistence", slog.String("file", cfg.FilePath))
		return memRepo, nil
	}

	return nil, fmt.Errorf("must specify a file path, DynamoDB table or S3 bucket in repository configuration")
}
