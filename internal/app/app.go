// Package app assembles the activity board's service graph.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/activityboard/internal/activities"
	"github.com/nfrund/activityboard/internal/board"
	"github.com/nfrund/activityboard/internal/config"
	"github.com/nfrund/activityboard/internal/i18n"
	"github.com/nfrund/activityboard/internal/live"
	"github.com/nfrund/activityboard/internal/logging"
	"github.com/nfrund/activityboard/internal/pubsub"
	"github.com/nfrund/activityboard/internal/rendering"
	"github.com/nfrund/activityboard/internal/server"
	"github.com/nfrund/activityboard/internal/static"
	"github.com/nfrund/activityboard/web"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// App owns the injector holding every service. Services are built lazily,
// so the CLI commands only construct what they use.
type App struct {
	injector do.Injector
	cfg      config.Provider
}

// New registers all providers for cfg.
func New(cfg config.Provider) *App {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, provideLogger)
	do.Provide(i, provideClient)
	do.Provide(i, provideTranslator)
	do.Provide(i, provideBus)
	do.Provide(i, provideBoard)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideStatic)
	do.Provide(i, provideHub)
	do.Provide(i, provideBroadcaster)
	do.Provide(i, provideLiveHandler)
	do.Provide(i, provideServer)
	return &App{injector: i, cfg: cfg}
}

// Board returns the activity board controller.
func (a *App) Board() (*board.ActivityBoard, error) {
	return do.Invoke[*board.ActivityBoard](a.injector)
}

// Translator returns the shared translator.
func (a *App) Translator() (*i18n.Translator, error) {
	return do.Invoke[*i18n.Translator](a.injector)
}

// Server returns the HTTP server.
func (a *App) Server() (*server.Server, error) {
	return do.Invoke[*server.Server](a.injector)
}

// Run serves the board until ctx is canceled. With live updates enabled the
// hub and the change broadcaster run alongside the server.
func (a *App) Run(ctx context.Context) error {
	srv, err := a.Server()
	if err != nil {
		return err
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](a.injector)
	if err != nil {
		return err
	}
	defer bus.Close()

	if a.cfg.GetLiveUpdates() {
		hub, err := do.Invoke[*live.Hub](a.injector)
		if err != nil {
			return err
		}
		broadcaster, err := do.Invoke[*live.Broadcaster](a.injector)
		if err != nil {
			return err
		}
		go hub.Run(ctx)
		if err := broadcaster.Start(ctx, bus); err != nil {
			return fmt.Errorf("start live broadcaster: %w", err)
		}
	}

	return srv.Start(ctx)
}

func provideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return logging.New(cfg.GetLogFormat(), cfg.GetLogLevel()), nil
}

func provideClient(i do.Injector) (*activities.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return activities.NewClient(cfg.GetAPIURL(),
		activities.WithTimeout(cfg.GetAPITimeout()),
		activities.WithLogger(do.MustInvoke[*slog.Logger](i)),
	)
}

func provideTranslator(i do.Injector) (*i18n.Translator, error) {
	return i18n.NewTranslator(do.MustInvoke[config.Provider](i).GetDefaultLocale()), nil
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func provideBoard(i do.Injector) (*board.ActivityBoard, error) {
	client, err := do.Invoke[*activities.Client](i)
	if err != nil {
		return nil, fmt.Errorf("activities client: %w", err)
	}
	return board.New(board.Dependencies{
		Service:    client,
		Translator: do.MustInvoke[*i18n.Translator](i),
		Publisher:  do.MustInvoke[*pubsub.WatermillBridge](i),
	}), nil
}

func provideRenderer(i do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideStatic(i do.Injector) (afero.Fs, error) {
	return static.New(web.Static(), do.MustInvoke[config.Provider](i).GetStaticDir()), nil
}

func provideHub(i do.Injector) (*live.Hub, error) {
	return live.NewHub(do.MustInvoke[*slog.Logger](i)), nil
}

func provideBroadcaster(i do.Injector) (*live.Broadcaster, error) {
	b, err := do.Invoke[*board.ActivityBoard](i)
	if err != nil {
		return nil, err
	}
	return live.NewBroadcaster(b,
		do.MustInvoke[*live.Hub](i),
		do.MustInvoke[*rendering.UniversalRenderer](i),
		do.MustInvoke[*i18n.Translator](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}

func provideLiveHandler(i do.Injector) (*live.Handler, error) {
	return live.NewHandler(do.MustInvoke[*live.Hub](i), do.MustInvoke[*i18n.Translator](i).DefaultLocale()), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	cfg := do.MustInvoke[config.Provider](i)
	b, err := do.Invoke[*board.ActivityBoard](i)
	if err != nil {
		return nil, err
	}

	deps := server.Dependencies{
		Config:     cfg,
		Board:      b,
		Translator: do.MustInvoke[*i18n.Translator](i),
		Renderer:   do.MustInvoke[*rendering.UniversalRenderer](i),
		Static:     do.MustInvoke[afero.Fs](i),
	}
	if cfg.GetLiveUpdates() {
		deps.Live = do.MustInvoke[*live.Handler](i)
	}
	return server.New(deps), nil
}
