// Package board holds the ActivityBoard controller: the three user-facing
// operations of the activity sign-up page, expressed as plain outcomes that
// the HTTP layer, the live broadcaster and the CLI render in their own way.
package board

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/activityboard/internal/domain"
	"github.com/nfrund/activityboard/internal/i18n"
	"github.com/nfrund/activityboard/internal/middleware"
	"github.com/nfrund/activityboard/internal/pubsub"
)

// MessageTimeout is how long a sign-up message stays visible.
const MessageTimeout = 5 * time.Second

// Service is the sign-up service the board talks to.
type Service interface {
	List(ctx context.Context) (domain.Board, error)
	Signup(ctx context.Context, activity, email string) (string, error)
	Unregister(ctx context.Context, activity, email string) (string, error)
}

// Translator renders user-visible text.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// MessageKind is the style of the message area.
type MessageKind string

const (
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
)

// Message is the outcome of a sign-up submission.
type Message struct {
	ID        string
	Kind      MessageKind
	Text      string
	HideAfter time.Duration
	// ResetForm asks the view to clear the sign-up form.
	ResetForm bool
	// Reload asks the view to load the activity list again.
	Reload bool
}

// ListResult is the outcome of loading the activities.
type ListResult struct {
	Board      domain.Board
	Generation uint64
	Failed     bool
	// Notice replaces the list when Failed is set.
	Notice string
	Err    error
}

// Removal is the outcome of removing a participant.
type Removal struct {
	Reload bool
	// Text is the service's confirmation on success.
	Text string
	// Alert is the blocking error text on failure.
	Alert string
}

// Failed reports whether the removal was rejected.
func (r Removal) Failed() bool { return r.Alert != "" }

// ChangeAction names what changed on an activity.
type ChangeAction string

const (
	ActionSignup     ChangeAction = "signup"
	ActionUnregister ChangeAction = "unregister"
)

// ChangeEvent is published after the service accepted a change.
type ChangeEvent struct {
	Action   ChangeAction `json:"action"`
	Activity string       `json:"activity"`
	Email    string       `json:"email"`
}

// ActivitiesChanged is the topic carrying ChangeEvents.
var ActivitiesChanged = pubsub.NewEvent[ChangeEvent]("activities.changed")

// Dependencies holds what the board needs. Publisher may be nil, in which
// case no change events are emitted.
type Dependencies struct {
	Service    Service
	Translator Translator
	Publisher  pubsub.Publisher
}

// ActivityBoard loads activities and submits sign-up changes.
type ActivityBoard struct {
	svc   Service
	tr    Translator
	pub   pubsub.Publisher
	seq   *Sequencer
	newID func() string
}

// New creates an ActivityBoard.
func New(deps Dependencies) *ActivityBoard {
	return &ActivityBoard{
		svc:   deps.Service,
		tr:    deps.Translator,
		pub:   deps.Publisher,
		seq:   &Sequencer{},
		newID: uuid.NewString,
	}
}

// LoadActivities fetches the activity collection. Each call is stamped with
// a generation so callers that apply results asynchronously can drop the
// ones overtaken by a newer load (see Accept).
func (b *ActivityBoard) LoadActivities(ctx context.Context, locale string) ListResult {
	gen := b.seq.Next()
	activities, err := b.svc.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).ErrorContext(ctx, "Error fetching activities", "error", err, "generation", gen)
		return ListResult{
			Generation: gen,
			Failed:     true,
			Notice:     b.tr.T(locale, i18n.LoadFailed, nil),
			Err:        err,
		}
	}
	return ListResult{Board: activities, Generation: gen}
}

// Accept reports whether res is the newest load applied so far and records
// it as applied. Results from an older generation are rejected.
func (b *ActivityBoard) Accept(res ListResult) bool {
	return b.seq.Commit(res.Generation)
}

// SubmitSignup registers email on activity. Both values are forwarded as
// entered; the service is the only validator.
func (b *ActivityBoard) SubmitSignup(ctx context.Context, locale, email, activity string) Message {
	logger := middleware.FromContext(ctx).With("activity", activity)

	text, err := b.svc.Signup(ctx, activity, email)
	if err != nil {
		if domain.IsAPIError(err) {
			logger.InfoContext(ctx, "Signup rejected", "error", err)
			detail, ok := domain.DetailOf(err)
			if !ok {
				detail = b.tr.T(locale, i18n.SignupError, nil)
			}
			return b.message(KindError, detail)
		}
		logger.ErrorContext(ctx, "Error signing up", "error", err)
		return b.message(KindError, b.tr.T(locale, i18n.SignupFailed, nil))
	}

	b.publish(ctx, ChangeEvent{Action: ActionSignup, Activity: activity, Email: email})

	msg := b.message(KindSuccess, text)
	msg.ResetForm = true
	msg.Reload = true
	return msg
}

// RemoveParticipant unregisters email from activity. The roster is only
// refreshed from the service afterwards; nothing is removed ahead of the
// service's answer.
func (b *ActivityBoard) RemoveParticipant(ctx context.Context, locale, activity, email string) Removal {
	logger := middleware.FromContext(ctx).With("activity", activity)

	text, err := b.svc.Unregister(ctx, activity, email)
	if err != nil {
		if domain.IsAPIError(err) {
			logger.WarnContext(ctx, "Failed to unregister", "error", err)
			detail, ok := domain.DetailOf(err)
			if !ok {
				detail = b.tr.T(locale, i18n.RemoveError, nil)
			}
			return Removal{Alert: detail}
		}
		logger.ErrorContext(ctx, "Error unregistering participant", "error", err)
		return Removal{Alert: b.tr.T(locale, i18n.RemoveFailed, nil)}
	}

	b.publish(ctx, ChangeEvent{Action: ActionUnregister, Activity: activity, Email: email})
	if text == "" {
		text = b.tr.T(locale, i18n.Removed, nil)
	}
	return Removal{Reload: true, Text: text}
}

func (b *ActivityBoard) message(kind MessageKind, text string) Message {
	return Message{
		ID:        b.newID(),
		Kind:      kind,
		Text:      text,
		HideAfter: MessageTimeout,
	}
}

func (b *ActivityBoard) publish(ctx context.Context, ev ChangeEvent) {
	if b.pub == nil {
		return
	}
	// Detached from the request so a client disconnect cannot drop the event.
	if err := pubsub.Publish(context.WithoutCancel(ctx), b.pub, ActivitiesChanged, ev); err != nil {
		middleware.FromContext(ctx).WarnContext(ctx, "Failed to publish change event", "action", ev.Action, "error", err)
	}
}
