package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mrled/addrbook/internal/config"
	"github.com/mrled/addrbook/internal/logger"
	"github.com/mrled/addrbook/internal/model"
	"github.com/mrled/addrbook/internal/presenter"
	"github.com/mrled/addrbook/internal/repository"
)

// Reminder is one upcoming birthday in the handler's summary
type Reminder struct {
	Name      string `json:"name"`
	Birthday  string `json:"birthday"`
	DaysUntil int    `json:"days_until"`
	When      string `json:"when"`
}

// Summary is returned to the Lambda runtime after each run
type Summary struct {
	Contacts   int        `json:"contacts"`
	WindowDays int        `json:"window_days"`
	Upcoming   []Reminder `json:"upcoming"`
}

// Handler holds the dependencies for the reminder Lambda handler
type Handler struct {
	log    *slog.Logger
	store  repository.DirectoryStore
	window int
	now    func() time.Time
}

// NewHandler creates a reminder handler from the environment.
// A DynamoDB table or S3 bucket must be configured; a Lambda has no durable local file.
func NewHandler(ctx context.Context) (*Handler, error) {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "reminder")
	logger.SetDefault(log)

	cfg, err := config.Load(os.Getenv(config.EnvConfig))
	if err != nil {
		return nil, err
	}

	repoCfg := cfg.RepositoryConfig()
	if repoCfg.DynamoTable == "" && repoCfg.S3Bucket == "" {
		return nil, fmt.Errorf("%s or %s environment variable is required",
			config.EnvDynamoTable, config.EnvS3Bucket)
	}

	store, err := repository.NewRepository(ctx, repoCfg)
	if err != nil {
		return nil, err
	}
	log.Info("Using address book store", slog.String("store", repoCfg.Describe()))

	return NewHandlerWithStore(store, cfg.Birthdays.WindowDays, time.Now, log), nil
}

// NewHandlerWithStore creates a handler around an existing store
func NewHandlerWithStore(store repository.DirectoryStore, window int, now func() time.Time, log *slog.Logger) *Handler {
	if window <= 0 {
		window = model.DefaultBirthdayWindow
	}
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		log:    log,
		store:  store,
		window: window,
		now:    now,
	}
}

// Handle processes a scheduled event: it logs and returns every birthday in the window
func (h *Handler) Handle(ctx context.Context, event events.CloudWatchEvent) (*Summary, error) {
	requestLogger := logger.WithLambda(h.log,
		os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		event.ID)

	requestLogger.Info("Scheduled reminder triggered",
		slog.String("source", event.Source),
		slog.Time("event_time", event.Time))

	book, err := h.store.Load(ctx)
	if err != nil {
		requestLogger.Error("Failed to load address book",
			slog.Bool("notify", true),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load address book: %w", err)
	}

	summary := &Summary{
		Contacts:   book.Len(),
		WindowDays: h.window,
		Upcoming:   []Reminder{},
	}

	for _, upcoming := range book.UpcomingBirthdaysDetailed(h.now(), h.window) {
		birthday, _ := upcoming.Record.Birthday()
		reminder := Reminder{
			Name:      upcoming.Record.Name(),
			Birthday:  birthday.String(),
			DaysUntil: upcoming.DaysUntil,
			When:      presenter.FormatDaysUntil(upcoming.DaysUntil),
		}
		summary.Upcoming = append(summary.Upcoming, reminder)

		requestLogger.Info("Upcoming birthday",
			slog.String("name", reminder.Name),
			slog.String("birthday", reminder.Birthday),
			slog.Int("days_until", reminder.DaysUntil))
	}

	requestLogger.Info("Reminder run complete",
		slog.Int("contacts", summary.Contacts),
		slog.Int("upcoming", len(summary.Upcoming)))

	return summary, nil
}
