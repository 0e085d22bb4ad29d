package view_test

import (
	"testing"
	"time"

	"github.com/nfrund/activityboard/internal/board"
	"github.com/nfrund/activityboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage(t *testing.T) {
	t.Run("carries the dom contract", func(t *testing.T) {
		doc := render(t, view.Page(testStrings, view.PageData{}))

		for _, id := range []string{view.ActivitiesListID, view.ActivitySelectID, view.SignupFormID, view.MessageID, "email"} {
			assert.Len(t, findAll(doc, byID(id)), 1, "exactly one #%s", id)
		}

		list := findAll(doc, byID(view.ActivitiesListID))[0]
		get, _ := attr(list, "hx-get")
		trigger, _ := attr(list, "hx-trigger")
		sync, _ := attr(list, "hx-sync")
		assert.Equal(t, view.ListPath, get)
		assert.Equal(t, "load, activities-reload from:body", trigger)
		assert.Equal(t, "this:replace", sync)

		msg := findAll(doc, byID(view.MessageID))[0]
		assert.True(t, hasClass(msg, "hidden"))

		form := findAll(doc, byID(view.SignupFormID))[0]
		action, _ := attr(form, "action")
		reset, _ := attr(form, "hx-on:signup-accepted")
		assert.Equal(t, view.SignupPath, action)
		assert.Equal(t, "this.reset()", reset)

		_, hasWS := attr(findAll(doc, byTag("main"))[0], "ws-connect")
		assert.False(t, hasWS)
	})

	t.Run("renders an initial load inline", func(t *testing.T) {
		res := &board.ListResult{Board: sampleBoard, Generation: 1}
		doc := render(t, view.Page(testStrings, view.PageData{Activities: res}))

		list := findAll(doc, byID(view.ActivitiesListID))[0]
		assert.Len(t, findAll(list, byClass("activity-card")), len(sampleBoard))
		trigger, _ := attr(list, "hx-trigger")
		assert.Equal(t, "activities-reload from:body", trigger, "no second fetch on page ready")

		options := findAll(findAll(doc, byID(view.ActivitySelectID))[0], byTag("option"))
		assert.Len(t, options, len(sampleBoard)+1)
	})

	t.Run("renders an initial failure inline", func(t *testing.T) {
		res := &board.ListResult{Failed: true, Notice: "Failed to load activities. Please try again later."}
		doc := render(t, view.Page(testStrings, view.PageData{Activities: res}))

		list := findAll(doc, byID(view.ActivitiesListID))[0]
		assert.Equal(t, "Failed to load activities. Please try again later.", text(list))
		options := findAll(findAll(doc, byID(view.ActivitySelectID))[0], byTag("option"))
		assert.Len(t, options, 1)
	})

	t.Run("live updates connect the websocket", func(t *testing.T) {
		doc := render(t, view.Page(testStrings, view.PageData{LiveUpdates: true}))

		main := findAll(doc, byTag("main"))
		require.Len(t, main, 1)
		ws, _ := attr(main[0], "ws-connect")
		ext, _ := attr(main[0], "hx-ext")
		assert.Equal(t, view.LivePath, ws)
		assert.Equal(t, "ws", ext)
	})

	t.Run("shows a pending message", func(t *testing.T) {
		m := &board.Message{ID: "m1", Kind: board.KindError, Text: "Full", HideAfter: board.MessageTimeout}
		doc := render(t, view.Page(testStrings, view.PageData{Message: m}))

		msg := findAll(doc, byID(view.MessageID))
		require.Len(t, msg, 1)
		assert.True(t, hasClass(msg[0], "error"))
		assert.Equal(t, "Full", text(msg[0]))
	})

	t.Run("localizes", func(t *testing.T) {
		fr := view.NewStrings(testStrings.Translator(), "fr")
		doc := render(t, view.Page(fr, view.PageData{}))
		html := findAll(doc, byTag("html"))
		require.Len(t, html, 1)
		lang, _ := attr(html[0], "lang")
		assert.Equal(t, "fr", lang)
		assert.Contains(t, text(findAll(doc, byTag("h3"))[1]), "S'inscrire")
	})
}

func TestMessage(t *testing.T) {
	t.Run("success message hides itself after the timeout", func(t *testing.T) {
		doc := render(t, view.Message(board.Message{ID: "abc", Kind: board.KindSuccess, Text: "ok", HideAfter: 5 * time.Second}))

		msg := findAll(doc, byID(view.MessageID))
		require.Len(t, msg, 1)
		assert.True(t, hasClass(msg[0], "success"))
		assert.False(t, hasClass(msg[0], "hidden"))
		assert.Equal(t, "ok", text(msg[0]))

		trigger, _ := attr(msg[0], "hx-trigger")
		get, _ := attr(msg[0], "hx-get")
		swap, _ := attr(msg[0], "hx-swap")
		id, _ := attr(msg[0], "data-message-id")
		assert.Equal(t, "load delay:5000ms", trigger)
		assert.Equal(t, view.DismissPath, get)
		assert.Equal(t, "outerHTML", swap)
		assert.Equal(t, "abc", id)
		_, hasTarget := attr(msg[0], "hx-target")
		assert.False(t, hasTarget, "the timer must only ever swap its own element")
	})

	t.Run("error message", func(t *testing.T) {
		doc := render(t, view.Message(board.Message{Kind: board.KindError, Text: "An error occurred", HideAfter: board.MessageTimeout}))
		msg := findAll(doc, byID(view.MessageID))[0]
		assert.True(t, hasClass(msg, "error"))
	})

	t.Run("hidden message", func(t *testing.T) {
		doc := render(t, view.HiddenMessage())
		msg := findAll(doc, byID(view.MessageID))
		require.Len(t, msg, 1)
		assert.True(t, hasClass(msg[0], "hidden"))
		assert.Empty(t, text(msg[0]))
	})
}
