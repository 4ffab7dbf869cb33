// Package server wires the SkillSwap stores, reducers and gRPC transport
// together and runs them until the process is told to stop.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/skillswap/internal/ids"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/server/ai"
	"github.com/dmitrijs2005/skillswap/internal/server/config"
	"github.com/dmitrijs2005/skillswap/internal/server/events"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillswap/internal/server/seed"
	"github.com/dmitrijs2005/skillswap/internal/server/services"
	"github.com/dmitrijs2005/skillswap/internal/server/session"

	gs "github.com/dmitrijs2005/skillswap/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	sessions *session.Manager
	hub      *events.Hub
	services gs.Services
}

// newCollaborator returns the Gemini client, or a collaborator that always
// fails when no API key is configured.
func newCollaborator(c *config.Config, logger logging.Logger) ai.Collaborator {
	if c.GeminiAPIKey == "" {
		return ai.Unavailable{}
	}
	return ai.NewGeminiClient(ai.GeminiConfig{
		APIKey:            c.GeminiAPIKey,
		BaseURL:           c.GeminiBaseURL,
		Model:             c.GeminiModel,
		ChatTemperature:   c.ChatTemperature,
		LessonTemperature: c.LessonTemperature,
	}, logger)
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))))
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	rm, err := repomanager.New(ctx, c.IdentityBackend, c.SQLiteDSN)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	n, err := repomanager.Seed(ctx, rm.Users(), seed.Personas())
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("seed error: %w", err)
	}
	logger.Info(ctx, "Personas seeded", "count", n, "backend", c.IdentityBackend)

	collab := newCollaborator(c, logger)
	if _, ok := collab.(ai.Unavailable); ok {
		logger.Warn(ctx, "No Gemini API key configured, persona replies will use the fallback text")
	}

	gen := ids.UUIDv7{}
	sessions := session.NewManager(gen)
	hub := events.NewHub()

	identity := services.NewIdentityService(rm, logger)
	chat := services.NewChatService(rm, collab, gen, hub, sessions, logger)

	svc := gs.Services{
		Identity: identity,
		Match:    services.NewMatchService(rm, gen, hub, logger),
		Chat:     chat,
		View:     services.NewViewService(identity, chat, logger),
		Coach:    services.NewCoachService(collab, logger),
		Media:    services.NewMediaService(c),
	}

	return &App{config: c, logger: logger, repos: rm, sessions: sessions, hub: hub, services: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessions, app.hub, app.services,
		app.config.SecretKey, app.config.SessionValidityDuration)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// waits for pending persona replies and closes the stores.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "Waiting for pending persona replies...")
	app.services.Chat.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing stores", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
