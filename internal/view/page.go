package view

import (
	"github.com/nfrund/activityboard/internal/board"
	"github.com/nfrund/activityboard/internal/domain"
	"github.com/nfrund/activityboard/internal/i18n"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	htmxSrc   = "https://unpkg.com/htmx.org@2.0.4"
	htmxWSSrc = "https://unpkg.com/htmx-ext-ws@2.0.2/ws.js"
)

// alertScript shows the blocking alert requested by a failed removal.
const alertScript = `document.body.addEventListener("` + EventAlert + `", function (evt) { alert(evt.detail.value); });`

// PageData is everything the full page needs besides the strings.
type PageData struct {
	// Activities is the initial load. When nil the list loads itself once
	// the page is ready.
	Activities *board.ListResult
	// Message, when set, is shown in the message area on load.
	Message *board.Message
	// LiveUpdates connects the page to the live websocket feed.
	LiveUpdates bool
}

// Page renders the complete activity board document.
func Page(s Strings, data PageData) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    s.T(i18n.PageTitle),
		Language: s.Locale(),
		Head: []g.Node{
			Link(Rel("stylesheet"), Href("/static/styles.css")),
			Script(Src(htmxSrc)),
			g.If(data.LiveUpdates, Script(Src(htmxWSSrc))),
		},
		Body: []g.Node{
			Header(
				H1(g.Text(s.T(i18n.PageTitle))),
				H2(g.Text(s.T(i18n.PageSubtitle))),
			),
			Main(
				g.If(data.LiveUpdates, g.Group{g.Attr("hx-ext", "ws"), g.Attr("ws-connect", LivePath)}),
				Section(
					ID("activities-container"),
					H3(g.Text(s.T(i18n.AvailableActivities))),
					ActivitiesList(s, data.Activities),
				),
				Section(
					ID("signup-container"),
					H3(g.Text(s.T(i18n.SignupHeading))),
					SignupForm(s, initialBoard(data.Activities)),
					messageArea(data.Message),
				),
			),
			Script(g.Raw(alertScript)),
		},
	})
}

// ActivitiesList renders the list area. It reloads whenever an
// activities-reload event reaches the body, and on page ready when no
// initial load is given; a new load aborts one still in flight.
func ActivitiesList(s Strings, initial *board.ListResult) g.Node {
	trigger := EventReload + " from:body"
	var content g.Node
	switch {
	case initial == nil:
		trigger = "load, " + trigger
		content = P(g.Text(s.T(i18n.Loading)))
	case initial.Failed:
		content = LoadFailure(initial.Notice)
	default:
		content = ActivityCards(s, initial.Board)
	}
	return Div(
		ID(ActivitiesListID),
		hx.Get(ListPath),
		hx.Trigger(trigger),
		g.Attr("hx-sync", "this:replace"),
		hx.Swap("innerHTML"),
		content,
	)
}

// SignupForm renders the sign-up form. It works as a plain form post and,
// with htmx, swaps the message area and resets itself once accepted.
func SignupForm(s Strings, activities domain.Board) g.Node {
	return Form(
		ID(SignupFormID),
		Method("post"),
		Action(SignupPath),
		hx.Post(SignupPath),
		hx.Target("#"+MessageID),
		hx.Swap("outerHTML"),
		g.Attr("hx-on:"+EventSignupAccepted, "this.reset()"),
		Div(
			Class("form-group"),
			Label(For("email"), g.Text(s.T(i18n.EmailLabel))),
			Input(
				Type("text"),
				ID("email"),
				Name("email"),
				AutoComplete("email"),
				Placeholder(s.T(i18n.EmailPlaceholder)),
			),
		),
		Div(
			Class("form-group"),
			Label(For(ActivitySelectID), g.Text(s.T(i18n.ActivityLabel))),
			ActivityOptions(s, activities, false),
		),
		Button(Type("submit"), g.Text(s.T(i18n.SignupButton))),
	)
}

func initialBoard(res *board.ListResult) domain.Board {
	if res == nil || res.Failed {
		return nil
	}
	return res.Board
}

func messageArea(m *board.Message) g.Node {
	if m == nil {
		return HiddenMessage()
	}
	return Message(*m)
}

// FlashMessage turns pending flashes into a message for the page, preferring
// errors. It returns nil when there is nothing to show.
func FlashMessage(f FlashData, id string) *board.Message {
	switch {
	case len(f.Error) > 0:
		return &board.Message{ID: id, Kind: board.KindError, Text: f.Error[0], HideAfter: board.MessageTimeout}
	case len(f.Success) > 0:
		return &board.Message{ID: id, Kind: board.KindSuccess, Text: f.Success[0], HideAfter: board.MessageTimeout}
	}
	return nil
}
