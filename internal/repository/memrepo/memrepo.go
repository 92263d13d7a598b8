package memrepo

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mrled/addrbook/internal/model"
	"github.com/mrled/addrbook/internal/repository/codec"
)

// MemoryRepository is an in-memory DirectoryStore optionally backed by a JSON file.
// It keeps the encoded document rather than a live directory, so every Load
// returns an independent copy.
type MemoryRepository struct {
	mu       sync.Mutex
	snapshot []byte
	filePath string
}

// NewMemoryRepository creates a new in-memory repository without persistence.
// Data is stored only in memory and will be lost when the process terminates.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// NewMemoryRepositoryWithPersistence creates a new in-memory repository backed by a JSON file.
// Existing data is read and validated immediately: a missing or empty file yields
// an empty address book, while a corrupt file is an error so it is never overwritten.
func NewMemoryRepositoryWithPersistence(filePath string) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		filePath: filePath,
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	if err := repo.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return repo, nil
}

// NewMemoryRepositoryFromJsonString creates a new in-memory repository initialized with data from a JSON string.
// The repository will not be backed by a file and will not persist changes.
func NewMemoryRepositoryFromJsonString(jsonString string) (*MemoryRepository, error) {
	if _, err := codec.Decode(strings.NewReader(jsonString)); err != nil {
		return nil, err
	}
	return &MemoryRepository{snapshot: []byte(jsonString)}, nil
}

// FilePath returns the backing file, or "" for a memory-only repository
func (r *MemoryRepository) FilePath() string {
	return r.filePath
}

// load reads the JSON file and keeps it as the snapshot after checking it decodes
func (r *MemoryRepository) load() error {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if _, err := codec.Decode(bytes.NewReader(data)); err != nil {
		return err
	}
	r.snapshot = data
	return nil
}

// save writes data to the JSON file.
// If filePath is empty, this is a no-op.
func (r *MemoryRepository) save(data []byte) error {
	// Skip persistence if no file path is configured
	if r.filePath == "" {
		return nil
	}

	// Write next to the target and rename, so a failed write leaves the old file intact
	tmp, err := os.CreateTemp(filepath.Dir(r.filePath), filepath.Base(r.filePath)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, r.filePath)
}

// Load returns the stored address book, or an empty one if nothing was saved yet
func (r *MemoryRepository) Load(ctx context.Context) (*model.Directory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.snapshot) == 0 {
		return model.NewDirectory(), nil
	}
	return codec.Decode(bytes.NewReader(r.snapshot))
}

// Save replaces the stored address book with book.
// The in-memory snapshot changes only after the file write succeeds.
func (r *MemoryRepository) Save(ctx context.Context, book *model.Directory) error {
	if book == nil {
		return errors.New("address book cannot be nil")
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, book); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(buf.Bytes()); err != nil {
		return err
	}
	r.snapshot = buf.Bytes()
	return nil
}
