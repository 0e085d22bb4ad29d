package live

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nfrund/activityboard/internal/board"
	"github.com/nfrund/activityboard/internal/pubsub"
	"github.com/nfrund/activityboard/internal/rendering"
	"github.com/nfrund/activityboard/internal/view"
)

// Broadcaster reloads the activities whenever a change event arrives and
// pushes the fresh list to every live subscriber, rendered per locale.
type Broadcaster struct {
	board    *board.ActivityBoard
	hub      *Hub
	renderer rendering.Renderer
	tr       view.Translator
	logger   *slog.Logger

	// mu orders accept and broadcast, so an accepted reload is also the
	// last one sent.
	mu sync.Mutex
}

// NewBroadcaster creates a Broadcaster.
func NewBroadcaster(b *board.ActivityBoard, hub *Hub, renderer rendering.Renderer, tr view.Translator, logger *slog.Logger) *Broadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broadcaster{board: b, hub: hub, renderer: renderer, tr: tr, logger: logger}
}

// Start subscribes to activity change events. Delivery runs in the
// background until ctx is canceled.
func (b *Broadcaster) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, board.ActivitiesChanged, b.handle)
}

// handle starts the reload in the background so a slow service does not hold
// up later events. It never returns an error; a nack would only replay the
// same failure.
func (b *Broadcaster) handle(ctx context.Context, ev board.ChangeEvent) error {
	go b.push(ctx, ev)
	return nil
}

// push reloads the board and sends it out, unless a reload started later
// has already been sent.
func (b *Broadcaster) push(ctx context.Context, ev board.ChangeEvent) {
	logger := b.logger.With("action", ev.Action, "activity", ev.Activity)

	locales := b.hub.Locales()
	if len(locales) == 0 {
		logger.Debug("No live subscribers, skipping push")
		return
	}

	res := b.board.LoadActivities(ctx, locales[0])
	if res.Failed {
		logger.Warn("Skipping live push, reload failed", "error", res.Err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.board.Accept(res) {
		logger.Debug("Dropping superseded reload", "generation", res.Generation)
		return
	}

	for _, locale := range locales {
		payload, err := b.renderer.RenderComponent(ctx, view.ListPush(view.NewStrings(b.tr, locale), res.Board))
		if err != nil {
			logger.Error("Failed to render live push", "locale", locale, "error", err)
			continue
		}
		b.hub.Broadcast(locale, payload)
	}
	logger.Info("Pushed activity list", "generation", res.Generation, "locales", locales)
}
