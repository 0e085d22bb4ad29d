package view

import (
	"strings"
	"unicode/utf8"

	"github.com/nfrund/activityboard/internal/activities"
	"github.com/nfrund/activityboard/internal/domain"
	"github.com/nfrund/activityboard/internal/i18n"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// DOM ids shared with the page markup and the htmx attributes.
const (
	ActivitiesListID = "activities-list"
	ActivitySelectID = "activity"
	SignupFormID     = "signup-form"
	MessageID        = "message"
)

// Routes the views post to.
const (
	ListPath    = "/activities/list"
	SignupPath  = "/signup"
	RemovePath  = "/participants/remove"
	DismissPath = "/message/dismiss"
	LivePath    = "/ws/board"
)

// Client-side events raised through the HX-Trigger response header.
const (
	EventReload         = "activities-reload"
	EventSignupAccepted = "signup-accepted"
	EventAlert          = "board-alert"
)

var upper = cases.Upper(language.Und)

// Badge is the avatar letter for a participant: the upper-cased first
// character of the trimmed email.
func Badge(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return upper.String(string(r))
}

// ActivityCards renders one card per activity, in board order.
func ActivityCards(s Strings, board domain.Board) g.Node {
	return g.Map(board, func(a domain.Activity) g.Node {
		return ActivityCard(s, a)
	})
}

// ActivityCard renders a single activity with its roster.
func ActivityCard(s Strings, a domain.Activity) g.Node {
	return Div(
		Class("activity-card"),
		H4(g.Text(a.Name)),
		P(g.Text(a.Description)),
		P(Strong(g.Text(s.T(i18n.Schedule))), g.Text(" "+a.Schedule)),
		P(Strong(g.Text(s.T(i18n.Availability))), g.Text(" "+s.Count(i18n.SpotsLeft, a.SpotsLeft()))),
		Div(
			Class("participants-section"),
			H5(Class("participants-title"), g.Text(s.T(i18n.Participants))),
			Roster(s, a),
		),
	)
}

// Roster renders the participant list, or the empty state.
func Roster(s Strings, a domain.Activity) g.Node {
	if len(a.Participants) == 0 {
		return P(Class("no-participants"), g.Text(s.T(i18n.NoParticipants)))
	}
	return Ul(
		Class("participants-list"),
		g.Map(a.Participants, func(email string) g.Node {
			return participantRow(s, a.Name, email)
		}),
	)
}

func participantRow(s Strings, activity, email string) g.Node {
	return Li(
		Span(Class("participant-badge"), g.Text(Badge(email))),
		Span(Class("participant-name"), g.Text(email)),
		Form(
			Class("participant-remove-form"),
			Method("post"),
			Action(RemovePath),
			hx.Post(RemovePath),
			hx.Swap("none"),
			Input(Type("hidden"), Name("activity"), Value(activity)),
			Input(Type("hidden"), Name("email"), Value(email)),
			Button(
				Type("submit"),
				Class("participant-remove"),
				Data("activity", activities.EncodeComponent(activity)),
				Data("email", activities.EncodeComponent(email)),
				Aria("label", s.With(i18n.RemoveParticipant, map[string]any{"Email": email})),
				g.Text("🗑️"),
			),
		),
	)
}

// ActivityOptions renders the activity select control: a single blank
// placeholder followed by one option per activity. With oob set it replaces
// the control already on the page.
func ActivityOptions(s Strings, board domain.Board, oob bool) g.Node {
	return Select(
		ID(ActivitySelectID),
		Name("activity"),
		g.If(oob, hx.SwapOOB("true")),
		Option(Value(""), g.Text(s.T(i18n.SelectPlaceholder))),
		g.Map(board, func(a domain.Activity) g.Node {
			return Option(Value(a.Name), g.Text(a.Name))
		}),
	)
}

// ListFragment is the response to a list load: the cards for the list area
// plus the refreshed select control.
func ListFragment(s Strings, board domain.Board) g.Node {
	return g.Group{
		ActivityCards(s, board),
		ActivityOptions(s, board, true),
	}
}

// ListPush is the live-update form of ListFragment, addressed by id. It
// leaves the select alone so a half-filled form keeps its choice.
func ListPush(s Strings, board domain.Board) g.Node {
	return Div(ID(ActivitiesListID), hx.SwapOOB("innerHTML"), ActivityCards(s, board))
}

// LoadFailure replaces the list contents when loading failed.
func LoadFailure(notice string) g.Node {
	return P(g.Text(notice))
}
