package domain_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/nfrund/activityboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSpotsLeft(t *testing.T) {
	tests := []struct {
		name string
		a    domain.Activity
		want int
	}{
		{"empty roster", domain.Activity{MaxParticipants: 12}, 12},
		{"partly full", domain.Activity{MaxParticipants: 12, Participants: []string{"a@x.com", "b@x.com"}}, 10},
		{"over capacity is not clamped", domain.Activity{MaxParticipants: 1, Participants: []string{"a@x.com", "b@x.com"}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.SpotsLeft())
		})
	}
}

func TestBoardNames(t *testing.T) {
	b := domain.Board{{Name: "Programming Class"}, {Name: "Chess Club"}}
	assert.Equal(t, []string{"Programming Class", "Chess Club"}, b.Names())
	assert.Empty(t, domain.Board(nil).Names())
}

func TestErrors(t *testing.T) {
	t.Run("api error detail survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("signup: %w", &domain.APIError{Status: 400, Detail: "Full"})
		detail, ok := domain.DetailOf(err)
		assert.True(t, ok)
		assert.Equal(t, "Full", detail)
		assert.True(t, domain.IsAPIError(err))
		assert.EqualError(t, err, "signup: activities api: status 400: Full")
	})

	t.Run("api error without detail", func(t *testing.T) {
		err := &domain.APIError{Status: 404}
		_, ok := domain.DetailOf(err)
		assert.False(t, ok)
		assert.EqualError(t, err, "activities api: status 404")
	})

	t.Run("transport error unwraps", func(t *testing.T) {
		err := &domain.TransportError{Op: "list", Err: context.DeadlineExceeded}
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, domain.IsAPIError(err))
		_, ok := domain.DetailOf(err)
		assert.False(t, ok)
	})
}
