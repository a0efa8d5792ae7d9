// Package framerate measures the rate at which frames are being produced.
package framerate

import (
	"math"
	"time"
)

// Sampler computes the frame rate from the wall time elapsed over a fixed
// number of frames. The period is expressed in frames and is floored at 2,
// the minimum needed to measure anything.
type Sampler struct {
	period int
	count  int
	last   time.Time
}

// NewSampler returns a sampler that recomputes the frame rate every period
// frames.
func NewSampler(period int) *Sampler {
	if period < 2 {
		period = 2
	}
	return &Sampler{
		period: period,
	}
}

// Tick registers that a frame has been produced at the given time. When a
// full period of frames has elapsed the new frame rate is returned along
// with true.
func (s *Sampler) Tick(now time.Time) (int, bool) {
	if s.last.IsZero() {
		s.last = now
		return 0, false
	}

	s.count++
	if s.count < s.period {
		return 0, false
	}

	elapsed := now.Sub(s.last).Seconds()
	s.count = 0
	s.last = now

	if elapsed <= 0 {
		return 0, false
	}

	return int(math.Round(float64(s.period) / elapsed)), true
}
