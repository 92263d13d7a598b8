package repository

import (
	"context"

	"github.com/mrled/addrbook/internal/model"
)

// DirectoryStore loads and saves the whole address book.
// Save is a full-state overwrite; there is no incremental journal.
type DirectoryStore interface {
	// Load returns the stored address book, or an empty one if none was saved yet
	Load(ctx context.Context) (*model.Directory, error)

	// Save replaces the stored address book
	Save(ctx context.Context, book *model.Directory) error
}
