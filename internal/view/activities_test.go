package view_test

import (
	"testing"

	"github.com/nfrund/activityboard/internal/domain"
	"github.com/nfrund/activityboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleBoard = domain.Board{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Art Club",
		Description:     "Explore your creativity",
		Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
		Participants:    []string{},
	},
	{
		Name:            "Full House",
		Description:     "Oversubscribed",
		Schedule:        "Never",
		MaxParticipants: 1,
		Participants:    []string{"a@x.com", "b@x.com", "c@x.com"},
	},
}

func TestActivityCards(t *testing.T) {
	doc := render(t, view.ActivityCards(testStrings, sampleBoard))

	cards := findAll(doc, byClass("activity-card"))
	require.Len(t, cards, len(sampleBoard), "one card per activity")

	for i, card := range cards {
		a := sampleBoard[i]
		h4 := findAll(card, byTag("h4"))
		require.Len(t, h4, 1)
		assert.Equal(t, a.Name, text(h4[0]), "cards keep board order")
		assert.Contains(t, text(card), a.Description)
		assert.Contains(t, text(card), a.Schedule)
	}

	assert.Contains(t, text(cards[0]), "10 spots left")
	assert.Contains(t, text(cards[1]), "15 spots left")
	assert.Contains(t, text(cards[2]), "-2 spots left", "spots are displayed, never clamped")
}

func TestRoster(t *testing.T) {
	t.Run("one row per participant with a remove control", func(t *testing.T) {
		doc := render(t, view.Roster(testStrings, sampleBoard[0]))

		rows := findAll(doc, byTag("li"))
		require.Len(t, rows, 2)

		names := findAll(doc, byClass("participant-name"))
		assert.Equal(t, "michael@mergington.edu", text(names[0]))
		badges := findAll(doc, byClass("participant-badge"))
		assert.Equal(t, "M", text(badges[0]))

		buttons := findAll(doc, byClass("participant-remove"))
		require.Len(t, buttons, 2)
		activity, _ := attr(buttons[0], "data-activity")
		email, _ := attr(buttons[0], "data-email")
		assert.Equal(t, "Chess%20Club", activity)
		assert.Equal(t, "michael%40mergington.edu", email)
		label, _ := attr(buttons[0], "aria-label")
		assert.Equal(t, "Remove michael@mergington.edu", label)

		forms := findAll(doc, byTag("form"))
		require.Len(t, forms, 2)
		post, _ := attr(forms[0], "hx-post")
		assert.Equal(t, view.RemovePath, post)
		hidden := findAll(forms[0], byTag("input"))
		require.Len(t, hidden, 2)
		v0, _ := attr(hidden[0], "value")
		v1, _ := attr(hidden[1], "value")
		assert.Equal(t, []string{"Chess Club", "michael@mergington.edu"}, []string{v0, v1})
	})

	t.Run("empty roster", func(t *testing.T) {
		doc := render(t, view.Roster(testStrings, sampleBoard[1]))

		assert.Empty(t, findAll(doc, byTag("ul")))
		empty := findAll(doc, byClass("no-participants"))
		require.Len(t, empty, 1)
		assert.Equal(t, "No participants yet", text(empty[0]))
	})
}

func TestActivityOptions(t *testing.T) {
	t.Run("placeholder first then one option per activity", func(t *testing.T) {
		doc := render(t, view.ActivityOptions(testStrings, sampleBoard, true))

		selects := findAll(doc, byID(view.ActivitySelectID))
		require.Len(t, selects, 1)
		oob, _ := attr(selects[0], "hx-swap-oob")
		assert.Equal(t, "true", oob)

		options := findAll(doc, byTag("option"))
		require.Len(t, options, len(sampleBoard)+1)
		v, _ := attr(options[0], "value")
		assert.Equal(t, "", v)
		assert.Equal(t, "-- Select an activity --", text(options[0]))
		for i, a := range sampleBoard {
			v, _ := attr(options[i+1], "value")
			assert.Equal(t, a.Name, v)
			assert.Equal(t, a.Name, text(options[i+1]))
		}
	})

	t.Run("repeated loads never duplicate the placeholder", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			doc := render(t, view.ListFragment(testStrings, sampleBoard))
			placeholders := 0
			for _, o := range findAll(doc, byTag("option")) {
				if v, _ := attr(o, "value"); v == "" {
					placeholders++
				}
			}
			assert.Equal(t, 1, placeholders)
		}
	})

	t.Run("page control has no oob marker", func(t *testing.T) {
		doc := render(t, view.ActivityOptions(testStrings, nil, false))
		sel := findAll(doc, byTag("select"))
		require.Len(t, sel, 1)
		_, ok := attr(sel[0], "hx-swap-oob")
		assert.False(t, ok)
		assert.Len(t, findAll(doc, byTag("option")), 1)
	})
}

func TestListPush(t *testing.T) {
	doc := render(t, view.ListPush(testStrings, sampleBoard))

	list := findAll(doc, byID(view.ActivitiesListID))
	require.Len(t, list, 1)
	swap, _ := attr(list[0], "hx-swap-oob")
	assert.Equal(t, "innerHTML", swap)
	assert.Len(t, findAll(list[0], byClass("activity-card")), len(sampleBoard))
	assert.Empty(t, findAll(doc, byID(view.ActivitySelectID)), "the select keeps the user's choice")
	assert.NotContains(t, markup(t, view.ListPush(testStrings, sampleBoard)), "<select")
}

func TestLoadFailure(t *testing.T) {
	doc := render(t, view.LoadFailure("Failed to load activities. Please try again later."))
	p := findAll(doc, byTag("p"))
	require.Len(t, p, 1)
	assert.Equal(t, "Failed to load activities. Please try again later.", text(p[0]))
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "M", view.Badge("  michael@mergington.edu"))
	assert.Equal(t, "É", view.Badge("élodie@x.fr"))
	assert.Equal(t, "", view.Badge("   "))
}
