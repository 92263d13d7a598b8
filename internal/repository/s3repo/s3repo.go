package s3repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/mrled/addrbook/internal/model"
	"github.com/mrled/addrbook/internal/repository/codec"
)

// DefaultKey is the object key used when none is configured
const DefaultKey = "addressbook.json"

// S3API is the subset of *s3.Client the repository uses
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Repository stores the whole address book as a single JSON object
type S3Repository struct {
	s3Client    S3API
	bucketName  string
	key         string
	contentType string
}

// New creates a new S3Repository
func New(s3Client S3API, bucketName, key string) *S3Repository {
	if key == "" {
		key = DefaultKey
	}
	return &S3Repository{
		s3Client:    s3Client,
		bucketName:  bucketName,
		key:         key,
		contentType: "application/json",
	}
}

// Location returns the object address as s3://bucket/key
func (s *S3Repository) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucketName, s.key)
}

// Load reads the address book object. A missing object is an empty address book.
func (s *S3Repository) Load(ctx context.Context) (*model.Directory, error) {
	result, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucketName,
		Key:    &s.key,
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return model.NewDirectory(), nil
		}
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer result.Body.Close()

	book, err := codec.Decode(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Location(), err)
	}
	return book, nil
}

// Save overwrites the address book object
func (s *S3Repository) Save(ctx context.Context, book *model.Directory) error {
	if book == nil {
		return errors.New("address book cannot be nil")
	}

	jsonData, err := codec.Marshal(book)
	if err != nil {
		return fmt.Errorf("failed to marshal address book: %w", err)
	}

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucketName,
		Key:         &s.key,
		Body:        bytes.NewReader(jsonData),
		ContentType: &s.contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	slog.Debug("Saved address book to S3",
		slog.String("bucket", s.bucketName),
		slog.String("key", s.key),
		slog.Int("record_count", book.Len()))
	return nil
}
