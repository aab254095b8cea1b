package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/mindful/internal/client/config"
	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/client/repositories/checkins"
	"github.com/dmitrijs2005/mindful/internal/client/repositories/session"
	"github.com/dmitrijs2005/mindful/internal/client/services"
	"github.com/dmitrijs2005/mindful/internal/kv"
	"github.com/dmitrijs2005/mindful/internal/logging"
)

type App struct {
	config         *config.Config
	store          kv.Store
	authService    services.AuthService
	checkInService services.CheckInService
	logger         logging.Logger

	reader *bufio.Reader
	out    io.Writer

	screen  Screen
	user    *models.User
	history []models.CheckIn
}

// NewApp opens the configured store and builds the services on top of it.
// Diagnostics go to stderr at the configured level so they do not mix with
// the prompt.
func NewApp(c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	ctx := context.Background()
	store, err := kv.Open(ctx, c.KVOptions(), logger)
	if err != nil {
		logger.Error(ctx, "error initializing storage", "error", err)
		return nil, err
	}

	return newApp(c, store, logger, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, store kv.Store, logger logging.Logger, in *bufio.Reader, out io.Writer) *App {
	latency := services.Latency{}
	if c.SimulateLatency {
		latency = services.DefaultLatency()
	}
	scope, _ := checkins.ParseSeedScope(c.SeedScope)

	as := services.NewAuthService(session.NewKVRepository(store, c.KeyPrefix), latency, logger)
	cs := services.NewCheckInService(checkins.NewKVRepository(store, c.KeyPrefix), latency, logger,
		services.WithSeedScope(scope))

	return &App{
		config:         c,
		store:          store,
		authService:    as,
		checkInService: cs,
		logger:         logger,
		reader:         in,
		out:            out,
		screen:         ScreenAuth,
	}
}

// Run restores the session, then serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(ctx, "closing storage", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "MindfulStudent journal (type 'help' for commands)")
	a.Start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) currentScreen() Screen {
	return a.screen
}

func (a *App) getStatus() string {
	if a.user == nil {
		return a.screen.String()
	}
	return fmt.Sprintf("%s %s", a.user.Greeting(), a.screen)
}
