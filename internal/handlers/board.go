package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/activityboard/internal/board"
	"github.com/nfrund/activityboard/internal/middleware"
	"github.com/nfrund/activityboard/internal/rendering"
	"github.com/nfrund/activityboard/internal/view"
)

// Translator is what the board pages need to localize; *i18n.Translator
// satisfies it.
type Translator interface {
	view.Translator
	DefaultLocale() string
}

// BoardHandler serves the activity board page and its htmx endpoints.
type BoardHandler struct {
	board       *board.ActivityBoard
	tr          Translator
	renderer    rendering.Renderer
	liveUpdates bool
}

// NewBoardHandler creates a BoardHandler. liveUpdates makes the page
// connect to the websocket feed.
func NewBoardHandler(b *board.ActivityBoard, tr Translator, renderer rendering.Renderer, liveUpdates bool) *BoardHandler {
	return &BoardHandler{board: b, tr: tr, renderer: renderer, liveUpdates: liveUpdates}
}

func (h *BoardHandler) locale(c echo.Context) string {
	if locale := middleware.LocaleFrom(c); locale != "" {
		return locale
	}
	return h.tr.DefaultLocale()
}

func (h *BoardHandler) strings(c echo.Context) view.Strings {
	return view.NewStrings(h.tr, h.locale(c))
}

// Index renders the full page with the first activity load already in
// place, plus any message left behind by a plain form post.
func (h *BoardHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()
	res := h.board.LoadActivities(ctx, h.locale(c))
	data := view.PageData{
		Activities:  &res,
		Message:     view.FlashMessage(view.GetFlashData(c), uuid.NewString()),
		LiveUpdates: h.liveUpdates,
	}
	return h.renderer.RenderPage(c, http.StatusOK, view.Page(h.strings(c), data))
}

// List renders the activity cards plus the refreshed select control, or the
// failure notice in place of the list.
func (h *BoardHandler) List(c echo.Context) error {
	res := h.board.LoadActivities(c.Request().Context(), h.locale(c))
	if res.Failed {
		return h.renderer.RenderPage(c, http.StatusOK, view.LoadFailure(res.Notice))
	}
	return h.renderer.RenderPage(c, http.StatusOK, view.ListFragment(h.strings(c), res.Board))
}

// Signup submits the sign-up form. htmx gets the message fragment and the
// follow-up events; a plain form post is redirected back to the page.
func (h *BoardHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}

	msg := h.board.SubmitSignup(c.Request().Context(), h.locale(c), req.Email, req.Activity)

	if !isHTMX(c) {
		if msg.Kind == board.KindError {
			view.SetFlashError(c, msg.Text)
		} else {
			view.SetFlashSuccess(c, msg.Text)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	events := map[string]any{}
	if msg.ResetForm {
		events[view.EventSignupAccepted] = nil
	}
	if msg.Reload {
		events[view.EventReload] = nil
	}
	if err := setTriggers(c, events); err != nil {
		return err
	}
	return h.renderer.RenderPage(c, http.StatusOK, view.Message(msg))
}

// Remove unregisters a participant. The page only learns the outcome
// through events: a reload on success, a blocking alert on failure.
func (h *BoardHandler) Remove(c echo.Context) error {
	var req RemoveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format.")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.board.RemoveParticipant(c.Request().Context(), h.locale(c), req.Activity, req.Email)

	if !isHTMX(c) {
		if res.Failed() {
			view.SetFlashError(c, res.Alert)
		} else {
			view.SetFlashSuccess(c, res.Text)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	events := map[string]any{view.EventReload: nil}
	if res.Failed() {
		events = map[string]any{view.EventAlert: res.Alert}
	}
	if err := setTriggers(c, events); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Dismiss empties and hides the message area. It is requested by the
// message's own timer, so it only ever replaces that message.
func (h *BoardHandler) Dismiss(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, view.HiddenMessage())
}

// Health reports that the server is up.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
