package bridge

import (
	"errors"

	"github.com/grindlemire/go-arrange/internal/debug"
)

// ErrSuppressionMismatch is reported when a suppression is released that was
// never acquired or was already cleared by Reset.
var ErrSuppressionMismatch = errors.New("bridge: suppression released without matching acquire")

// Suppressor is a reference-counted flag telling native callbacks to stand
// down while a managed pass is committing layout. Acquisitions nest; native
// callbacks resume once every acquisition is released.
type Suppressor struct {
	count  int
	epoch  uint64
	strict bool
}

// NewSuppressor creates a suppressor. A strict suppressor panics on a
// mismatched release; otherwise the mismatch is logged and ignored.
func NewSuppressor(strict bool) *Suppressor {
	return &Suppressor{strict: strict}
}

// Acquire suppresses native callbacks until the returned release runs.
// Calling release more than once has no further effect.
func (s *Suppressor) Acquire() (release func()) {
	s.count++
	epoch := s.epoch
	released := false
	return func() {
		if released {
			return
		}
		released = true
		if epoch != s.epoch {
			s.mismatch()
			return
		}
		s.release()
	}
}

// Active reports whether any acquisition is outstanding.
func (s *Suppressor) Active() bool {
	return s.count > 0
}

// Count returns the number of outstanding acquisitions.
func (s *Suppressor) Count() int {
	return s.count
}

// Reset drops every outstanding acquisition, for when the host view is torn
// down mid-pass. Releasing an acquisition made before the reset is a mismatch.
func (s *Suppressor) Reset() {
	s.count = 0
	s.epoch++
}

func (s *Suppressor) release() {
	if s.count == 0 {
		s.mismatch()
		return
	}
	s.count--
}

func (s *Suppressor) mismatch() {
	if s.strict {
		panic(ErrSuppressionMismatch)
	}
	debug.Log("bridge: %v", ErrSuppressionMismatch)
}
