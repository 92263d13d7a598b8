package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrled/addrbook/internal/bot"
	"github.com/mrled/addrbook/internal/config"
	"github.com/mrled/addrbook/internal/handler"
	"github.com/mrled/addrbook/internal/logger"
	"github.com/mrled/addrbook/internal/model"
	"github.com/mrled/addrbook/internal/repository"
)

const contactsGroup = "contacts"

// app is the state shared by the root command and its subcommands
type app struct {
	flags PersistenceFlags
	cfg   *config.Config
}

// NewRootCmd builds the addrbook command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "addrbook",
		Short: "Addrbook is a command-line address book",
		Long: `A command-line address book for contacts, phone numbers and birthdays.

Run without a subcommand to start the interactive assistant, which reads one
command per line and saves the address book after every command. Subcommands
run a single command and save.

Examples:
  # Start the interactive assistant with the default JSON file
  addrbook

  # Add a contact to a specific file
  addrbook --file ./contacts.json add Alice 0123456789

  # Show the next two weeks of birthdays from DynamoDB
  addrbook --dynamodb-table contacts birthdays --days 14`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{err}
	})
	addPersistenceFlags(rootCmd, &a.flags)

	rootCmd.AddGroup(&cobra.Group{ID: contactsGroup, Title: "Contact Commands:"})
	rootCmd.AddCommand(newContactCmds(a)...)
	rootCmd.AddCommand(newAllCmd(a))
	rootCmd.AddCommand(newBirthdaysCmd(a))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and installs the logger before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	path := a.flags.ConfigPath
	if path == "" {
		path = os.Getenv(config.EnvConfig)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.flags.apply(cfg)
	a.cfg = cfg

	logCfg := cfg.LoggerConfig()
	logCfg.Output = cmd.ErrOrStderr()
	log := logger.WithExecutable(logger.NewLogger(logCfg), "addrbook")
	logger.SetDefault(log)

	return nil
}

func (a *app) store(ctx context.Context) (repository.DirectoryStore, error) {
	repoCfg := a.cfg.RepositoryConfig()
	repoCfg.NoPersist = a.flags.NoPersist

	store, err := repository.NewRepository(ctx, repoCfg)
	if err != nil {
		return nil, ExitWithCode(1, err)
	}
	slog.Debug("Opened address book", slog.String("store", repoCfg.Describe()))
	return store, nil
}

// load opens the configured store and reads the address book from it
func (a *app) load(ctx context.Context) (repository.DirectoryStore, *model.Directory, error) {
	store, err := a.store(ctx)
	if err != nil {
		return nil, nil, err
	}
	book, err := store.Load(ctx)
	if err != nil {
		return nil, nil, ExitWithCode(1, fmt.Errorf("failed to load address book: %w", err))
	}
	return store, book, nil
}

func (a *app) dispatcherOptions() []handler.Option {
	return []handler.Option{
		handler.WithBirthdayWindow(a.cfg.Birthdays.WindowDays),
		handler.WithLogger(slog.Default()),
	}
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	store, err := a.store(cmd.Context())
	if err != nil {
		return err
	}

	b := bot.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), a.dispatcherOptions()...)
	if err := b.Run(cmd.Context()); err != nil {
		return ExitWithCode(1, err)
	}
	return nil
}
