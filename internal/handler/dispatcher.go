// Package handler translates tokenized commands into directory operations
// and human-readable results.
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mrled/addrbook/internal/model"
)

// ErrNotEnoughArgs is returned when a command gets fewer arguments than it needs
var ErrNotEnoughArgs = errors.New("not enough arguments")

// Result is the outcome of one command
type Result struct {
	// Output is the text to show the user; for failures it is the error message
	Output string

	// Err is set when the command failed validation or a state rule
	Err error

	// Exit is set by the close and exit commands
	Exit bool
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithClock sets the source of today's date for the birthdays command
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		d.now = now
	}
}

// WithBirthdayWindow sets the default look-ahead for the birthdays command
func WithBirthdayWindow(days int) Option {
	return func(d *Dispatcher) {
		if days > 0 {
			d.window = days
		}
	}
}

// WithLogger sets the logger used for command tracing
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = log
	}
}

// Dispatcher owns the command table and runs commands against one directory
type Dispatcher struct {
	book     *model.Directory
	commands map[string]Command
	order    []string
	now      func() time.Time
	window   int
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher operating on book
func NewDispatcher(book *model.Directory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:     book,
		commands: make(map[string]Command),
		now:      time.Now,
		window:   model.DefaultBirthdayWindow,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, cmd := range d.table() {
		d.register(cmd)
	}
	return d
}

func (d *Dispatcher) register(cmd Command) {
	for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
		d.commands[name] = cmd
	}
	d.order = append(d.order, cmd.Name)
}

// Commands returns the registered commands in table order
func (d *Dispatcher) Commands() []Command {
	result := make([]Command, 0, len(d.order))
	for _, name := range d.order {
		result = append(result, d.commands[name])
	}
	return result
}

// ParseInput splits a line into a lower-cased command and its arguments.
// Tokens are separated by whitespace; there is no quoting.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Handle parses and runs one input line
func (d *Dispatcher) Handle(line string) Result {
	command, args := ParseInput(line)
	return d.Run(command, args)
}

// Run executes a command by name. Errors never escape: they are
// returned in the Result with their message as the output.
func (d *Dispatcher) Run(command string, args []string) Result {
	cmd, ok := d.commands[command]
	if !ok {
		d.log.Debug("Unknown command", slog.String("command", command))
		return Result{Output: "Invalid command."}
	}

	if len(args) < cmd.MinArgs {
		err := fmt.Errorf("%w. Usage: %s", ErrNotEnoughArgs, cmd.Usage)
		return Result{Output: capitalize(err.Error()), Err: err}
	}

	output, err := cmd.Run(args, d.book)
	if err != nil {
		d.log.Debug("Command failed",
			slog.String("command", cmd.Name),
			slog.String("error", err.Error()))
		return Result{Output: err.Error(), Err: err}
	}

	d.log.Debug("Command succeeded", slog.String("command", cmd.Name))
	return Result{Output: output, Exit: cmd.Exit}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
