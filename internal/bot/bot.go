// Package bot runs the interactive read-dispatch-save loop.
package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mrled/addrbook/internal/handler"
	"github.com/mrled/addrbook/internal/repository"
)

const (
	Welcome = "Welcome to the assistant bot!"
	Prompt  = "Enter a command: "
)

// Bot reads commands from in, writes results to out and saves the address
// book through store after every command.
type Bot struct {
	store repository.DirectoryStore
	in    io.Reader
	out   io.Writer
	opts  []handler.Option
	log   *slog.Logger
}

// New creates a bot. Dispatcher options are applied to the dispatcher built in Run.
func New(store repository.DirectoryStore, in io.Reader, out io.Writer, opts ...handler.Option) *Bot {
	return &Bot{
		store: store,
		in:    in,
		out:   out,
		opts:  opts,
		log:   slog.Default(),
	}
}

// Run loads the address book and processes input until close/exit, EOF or
// cancellation of ctx. Cancellation is observed even while waiting for input.
// It returns the first load, read or save error.
func (b *Bot) Run(ctx context.Context) error {
	book, err := b.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load address book: %w", err)
	}
	dispatcher := handler.NewDispatcher(book, b.opts...)

	fmt.Fprintln(b.out, Welcome)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := b.readLines(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(b.out, Prompt)
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(b.out)
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			fmt.Fprintln(b.out)
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := <-readErr; err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			b.log.Debug("Input closed")
			return nil
		}

		command, _ := handler.ParseInput(line)
		if command == "" {
			continue
		}

		result := dispatcher.Handle(line)
		if result.Output != "" {
			fmt.Fprintln(b.out, result.Output)
		}

		if err := b.store.Save(ctx, book); err != nil {
			return fmt.Errorf("failed to save address book: %w", err)
		}

		if result.Exit {
			return nil
		}
	}
}

// readLines scans input on its own goroutine. The lines channel is closed at
// EOF or cancellation; the scanner error is then available on the error channel.
// A goroutine blocked inside a Read stays blocked until that Read returns.
func (b *Bot) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(b.in)
		defer func() {
			readErr <- scanner.Err()
			close(lines)
		}()

		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines, readErr
}
