// Package bootstrap wires the application together.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/tabmaster/internal/application/usecase"
	"github.com/bnema/tabmaster/internal/config"
	"github.com/bnema/tabmaster/internal/domain/review"
	"github.com/bnema/tabmaster/internal/infrastructure/clipboard"
	"github.com/bnema/tabmaster/internal/infrastructure/persist"
	"github.com/bnema/tabmaster/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabmaster/internal/infrastructure/storage"
	"github.com/bnema/tabmaster/internal/logging"
	"github.com/bnema/tabmaster/internal/store"
	"github.com/bnema/tabmaster/internal/ui/component"
)

const logFileName = "tabmaster.log"

// Options controls how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config file location.
	ConfigFile string
	// LogToFile sends logs to the rotating log file instead of stderr.
	// The terminal UI needs this because it owns the screen.
	LogToFile bool
	// LogOutput overrides stderr when LogToFile is false.
	LogOutput io.Writer
	// Now overrides the wall clock.
	Now func() time.Time
}

// UseCases groups the application use cases.
type UseCases struct {
	Hydrate    *usecase.HydrateUseCase
	Review     *usecase.ReviewPromptUseCase
	Tabs       *usecase.ManageTabsUseCase
	History    *usecase.HistoryUseCase
	Navigation *usecase.NavigationUseCase
	Notify     *usecase.NotifyUseCase
	Transfer   *usecase.TransferUseCase
	Purge      *usecase.PurgeDataUseCase
	Save       *usecase.SaveUseCase
	CopyURL    *usecase.CopyURLUseCase
}

// App holds every long-lived dependency.
type App struct {
	Config  *config.Config
	Manager *config.Manager
	Logger  zerolog.Logger

	Store     *store.Store
	Gateway   *storage.Gateway
	Persister *persist.Service
	Toaster   *component.Toaster
	UseCases  UseCases

	db      *sqlite.LazyDB
	logFile *logging.FileWriter
	ctx     context.Context
}

// New loads the configuration and builds the object graph. Nothing touches
// the database until Startup or a use case needs it.
func New(opts Options) (*App, error) {
	var managerOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}
	manager, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}
	cfg := manager.Get()

	app := &App{Config: cfg, Manager: manager}
	if err := app.initLogger(opts); err != nil {
		return nil, err
	}
	app.ctx = logging.WithContext(context.Background(), app.Logger)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	app.db = sqlite.NewLazyDB(cfg.Database.Path)
	app.Gateway = storage.NewGateway(sqlite.NewKeyValueRepository(app.db))
	app.Store = store.New(store.WithMaxHistory(cfg.History.MaxUndoSteps))
	app.Persister = persist.NewService(app.Store, app.Gateway, persist.Options{
		AutoFlush: cfg.Persistence.AutoFlush,
		Debounce:  cfg.Persistence.Debounce.Std(),
	})
	app.Toaster = component.NewToaster(app.Store, component.WithDefaultDuration(cfg.Toast.Duration.Std()))

	policy := review.Policy{
		GracePeriod: cfg.Review.GracePeriod.Std(),
		Cooldown:    cfg.Review.Cooldown.Std(),
	}
	app.UseCases = UseCases{
		Hydrate:    usecase.NewHydrateUseCase(app.Store, app.Gateway),
		Review:     usecase.NewReviewPromptUseCase(app.Store, app.Gateway, policy, now),
		Tabs:       usecase.NewManageTabsUseCase(app.Store, uuid.NewString),
		History:    usecase.NewHistoryUseCase(app.Store),
		Navigation: usecase.NewNavigationUseCase(app.Store),
		Notify:     usecase.NewNotifyUseCase(app.Toaster),
		Transfer:   usecase.NewTransferUseCase(app.Store, uuid.NewString),
		Purge:      usecase.NewPurgeDataUseCase(app.Store, app.Gateway),
		Save:       usecase.NewSaveUseCase(app.Persister, app.Toaster),
		CopyURL:    usecase.NewCopyURLUseCase(app.Store, clipboard.New()),
	}

	app.Logger.Debug().
		Str("config", manager.ConfigFile()).
		Str("database", cfg.Database.Path).
		Msg("application wired")
	return app, nil
}

func (a *App) initLogger(opts Options) error {
	cfg := a.Config.Logging
	if opts.LogToFile || cfg.EnableFileLog {
		w, err := logging.NewFileWriter(cfg.LogDir, logFileName, cfg.MaxSizeMB, cfg.MaxBackups)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = w
	}

	var out io.Writer = os.Stderr
	if opts.LogOutput != nil {
		out = opts.LogOutput
	}
	switch {
	case opts.LogToFile:
		out = a.logFile
	case a.logFile != nil:
		out = io.MultiWriter(out, a.logFile)
	}

	a.Logger = logging.NewWithOutput(cfg.Level, cfg.Format, out)
	return nil
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// StartupOptions selects the optional startup steps.
type StartupOptions struct {
	// EvaluateReview records the install time and may open the review modal.
	EvaluateReview bool
}

// Startup hydrates the store, starts auto-flush and optionally evaluates the
// review prompt.
func (a *App) Startup(ctx context.Context, opts StartupOptions) error {
	timer := NewStartupTimer()

	if _, err := a.UseCases.Hydrate.Execute(ctx); err != nil {
		return fmt.Errorf("hydrate state: %w", err)
	}
	timer.Mark("hydrate")

	a.Persister.Start(ctx)

	if opts.EvaluateReview {
		if _, err := a.UseCases.Review.Evaluate(ctx); err != nil {
			// the prompt is best effort; a failed settings write must not stop startup
			logging.FromContext(ctx).Warn().Err(err).Msg("review prompt evaluation failed")
		}
		timer.Mark("review")
	}

	timer.Log(ctx)
	return nil
}

// Shutdown cancels timers, flushes pending tab data and closes storage.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	a.Toaster.Stop()
	if err := a.Persister.Stop(ctx); err != nil {
		errs = append(errs, err)
	}

	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close log file: %w", err))
		}
	}
	return errors.Join(errs...)
}
