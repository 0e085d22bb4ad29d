package view

import (
	"fmt"

	"github.com/nfrund/activityboard/internal/board"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// Message renders the message area showing m. The element fetches its
// hidden replacement after m.HideAfter; since the request swaps the element
// itself, a newer message that replaced it is never hidden by this timer.
func Message(m board.Message) g.Node {
	return Div(
		ID(MessageID),
		Class(string(m.Kind)),
		Data("message-id", m.ID),
		hx.Get(DismissPath),
		hx.Trigger(fmt.Sprintf("load delay:%dms", m.HideAfter.Milliseconds())),
		hx.Swap("outerHTML"),
		g.Text(m.Text),
	)
}

// HiddenMessage renders the empty, hidden message area.
func HiddenMessage() g.Node {
	return Div(ID(MessageID), Class("hidden"))
}
