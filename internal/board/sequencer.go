package board

import "sync/atomic"

// Sequencer hands out increasing generation numbers and remembers the newest
// one applied, so a result that finishes late cannot replace a fresher one.
type Sequencer struct {
	next      atomic.Uint64
	committed atomic.Uint64
}

// Next returns a new generation, greater than every previous one.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Commit marks gen as applied. It returns false, leaving state untouched,
// when gen is not newer than the last applied generation.
func (s *Sequencer) Commit(gen uint64) bool {
	for {
		cur := s.committed.Load()
		if gen <= cur {
			return false
		}
		if s.committed.CompareAndSwap(cur, gen) {
			return true
		}
	}
}

// Latest returns the last applied generation, or 0 if none.
func (s *Sequencer) Latest() uint64 {
	return s.committed.Load()
}
