// Package live pushes activity list updates to connected browsers over
// websockets, so every open board reflects changes made anywhere.
package live

import (
	"context"
	"log/slog"
	"slices"
)

// Subscriber is a single connected browser. The Hub delivers rendered
// fragments for the subscriber's locale on Send.
type Subscriber struct {
	ID     string
	Locale string
	// Send is closed by the Hub once the subscriber is dropped.
	Send chan []byte
}

// NewSubscriber creates a subscriber with a send buffer of the given size.
func NewSubscriber(id, locale string, buffer int) *Subscriber {
	return &Subscriber{ID: id, Locale: locale, Send: make(chan []byte, buffer)}
}

type frame struct {
	locale  string
	payload []byte
}

// Hub maintains the set of live subscribers and fans fragments out to them.
// All state is owned by the Run loop.
type Hub struct {
	subscribers map[*Subscriber]bool

	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan frame
	locales    chan chan []string
	done       chan struct{}

	logger *slog.Logger
}

// NewHub creates a Hub. It does nothing until Run is started.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan frame),
		locales:     make(chan chan []string),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// Run processes registrations and broadcasts until ctx is canceled, then
// drops every remaining subscriber.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for s := range h.subscribers {
				h.drop(s)
			}
			h.logger.Info("Live hub stopped")
			return

		case s := <-h.register:
			h.subscribers[s] = true
			h.logger.Info("Live subscriber registered", "subscriber_id", s.ID, "locale", s.Locale, "total_subscribers", len(h.subscribers))

		case s := <-h.unregister:
			if h.subscribers[s] {
				h.drop(s)
				h.logger.Info("Live subscriber unregistered", "subscriber_id", s.ID, "total_subscribers", len(h.subscribers))
			}

		case reply := <-h.locales:
			reply <- h.localeSet()

		case f := <-h.broadcast:
			h.logger.Debug("Broadcasting fragment", "locale", f.locale, "bytes", len(f.payload))
			for s := range h.subscribers {
				if s.Locale != f.locale {
					continue
				}
				// A full buffer means the browser stopped reading.
				select {
				case s.Send <- f.payload:
				default:
					h.drop(s)
					h.logger.Warn("Dropping slow live subscriber", "subscriber_id", s.ID, "total_subscribers", len(h.subscribers))
				}
			}
		}
	}
}

// Register adds s to the hub. It reports false once the hub has stopped.
func (h *Hub) Register(s *Subscriber) bool {
	select {
	case h.register <- s:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes s and closes its Send channel. It is safe to call for
// a subscriber the hub already dropped.
func (h *Hub) Unregister(s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Broadcast delivers payload to every subscriber using locale.
func (h *Hub) Broadcast(locale string, payload []byte) {
	select {
	case h.broadcast <- frame{locale: locale, payload: payload}:
	case <-h.done:
	}
}

// Locales returns the distinct locales of the current subscribers, sorted.
func (h *Hub) Locales() []string {
	reply := make(chan []string, 1)
	select {
	case h.locales <- reply:
	case <-h.done:
		return nil
	}
	select {
	case locales := <-reply:
		return locales
	case <-h.done:
		return nil
	}
}

func (h *Hub) drop(s *Subscriber) {
	delete(h.subscribers, s)
	close(s.Send)
}

func (h *Hub) localeSet() []string {
	var locales []string
	for s := range h.subscribers {
		if !slices.Contains(locales, s.Locale) {
			locales = append(locales, s.Locale)
		}
	}
	slices.Sort(locales)
	return locales
}
