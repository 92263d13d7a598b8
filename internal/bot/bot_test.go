package bot

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrled/addrbook/internal/handler"
	"github.com/mrled/addrbook/internal/model"
	"github.com/mrled/addrbook/internal/repository/memrepo"
)

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func run(t *testing.T, store *memrepo.MemoryRepository, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	b := New(store, strings.NewReader(input), &out, handler.WithClock(fixedClock))
	err := b.Run(context.Background())
	return out.String(), err
}

func TestRun_SessionIsPersisted(t *testing.T) {
	store := memrepo.NewMemoryRepository()

	out, err := run(t, store, "hello\nadd Alice 0123456789\n\nadd-birthday Alice 03.06.1990\nexit\nadd Ignored 0123456789\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, Welcome+"\n"))
	assert.Contains(t, out, "How can I help you?")
	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "Birthday added for Alice.")
	assert.Contains(t, out, "Good bye!")

	book, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, book.Len())

	record, ok := book.Find("Alice")
	require.True(t, ok)
	birthday, ok := record.Birthday()
	require.True(t, ok)
	assert.Equal(t, "03.06.1990", birthday.String())

	_, ok = book.Find("Ignored")
	assert.False(t, ok, "input after exit is not processed")
}

func TestRun_ResumesFromStore(t *testing.T) {
	store := memrepo.NewMemoryRepository()
	_, err := run(t, store, "add Alice 0123456789\nclose\n")
	require.NoError(t, err)

	out, err := run(t, store, "phone Alice\n")
	require.NoError(t, err)
	assert.Contains(t, out, "0123456789")
}

func TestRun_ErrorsDoNotStopTheLoop(t *testing.T) {
	store := memrepo.NewMemoryRepository()

	out, err := run(t, store, "frobnicate\nadd Al 0123456789\nadd Alice 12345\nall\n")
	require.NoError(t, err, "EOF ends the session cleanly")

	assert.Contains(t, out, "Invalid command.")
	assert.Contains(t, out, "Name 'Al' was not added. It must be at least 3 characters long.")
	assert.Contains(t, out, "Phone number 12345 was not added. It must be 10 digits")
	assert.Contains(t, out, "No records")
}

type failingStore struct {
	*memrepo.MemoryRepository
}

var errDiskFull = errors.New("disk full")

func (failingStore) Save(ctx context.Context, book *model.Directory) error {
	return errDiskFull
}

func TestRun_SaveFailureEndsLoop(t *testing.T) {
	store := failingStore{memrepo.NewMemoryRepository()}
	var out bytes.Buffer

	err := New(store, strings.NewReader("add Alice 0123456789\nall\n"), &out).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.NotContains(t, out.String(), "Contact name: Alice", "loop stops before the second command")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(memrepo.NewMemoryRepository(), strings.NewReader("hello\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, out.String(), "How can I help you?")
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in, w := io.Pipe()
	defer w.Close()

	done := make(chan error, 1)
	var out bytes.Buffer
	go func() {
		done <- New(memrepo.NewMemoryRepository(), in, &out).Run(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
