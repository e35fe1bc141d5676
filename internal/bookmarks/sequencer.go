package bookmarks

import "sync/atomic"

// Sequencer tags fetch requests so that only the most recently issued
// request's response is applied. Earlier responses are stale.
type Sequencer struct {
	latest atomic.Uint64
}

// Next issues a new sequence number, superseding all earlier ones.
func (s *Sequencer) Next() uint64 {
	return s.latest.Add(1)
}

// Latest returns the most recently issued sequence number (0 if none).
func (s *Sequencer) Latest() uint64 {
	return s.latest.Load()
}

// IsLatest reports whether seq is the most recently issued sequence number.
func (s *Sequencer) IsLatest(seq uint64) bool {
	return seq != 0 && seq == s.latest.Load()
}
