package board_test

import (
	"sync"
	"testing"

	"github.com/nfrund/activityboard/internal/board"
	"github.com/stretchr/testify/assert"
)

func TestSequencer(t *testing.T) {
	t.Run("commits only newer generations", func(t *testing.T) {
		var s board.Sequencer
		g1, g2, g3 := s.Next(), s.Next(), s.Next()

		assert.True(t, s.Commit(g2))
		assert.False(t, s.Commit(g1), "older result must not replace a newer one")
		assert.False(t, s.Commit(g2), "the same generation applies once")
		assert.True(t, s.Commit(g3))
		assert.Equal(t, g3, s.Latest())
	})

	t.Run("concurrent commits keep the maximum", func(t *testing.T) {
		var s board.Sequencer
		gens := make([]uint64, 100)
		for i := range gens {
			gens[i] = s.Next()
		}

		var wg sync.WaitGroup
		for _, g := range gens {
			wg.Add(1)
			go func(g uint64) {
				defer wg.Done()
				s.Commit(g)
			}(g)
		}
		wg.Wait()

		assert.Equal(t, gens[len(gens)-1], s.Latest())
	})
}
