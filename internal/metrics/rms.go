package metrics

import (
	"math"

	"github.com/san-kum/halfcar/internal/dynamo"
)

// RMS accumulates the root-mean-square of one state component, a rough
// ride-harshness figure when pointed at a body rate.
type RMS struct {
	name    string
	index   int
	sumsq   float64
	samples int
}

func NewRMS(name string, index int) *RMS {
	return &RMS{name: name, index: index}
}

// NewRMSHeaveRate measures body vertical velocity.
func NewRMSHeaveRate() *RMS { return NewRMS("rms_heave_rate", 4) }

// NewRMSPitchRate measures body pitch velocity.
func NewRMSPitchRate() *RMS { return NewRMS("rms_pitch_rate", 5) }

func (r *RMS) Name() string { return r.name }

func (r *RMS) Observe(x dynamo.State, u dynamo.Control, t float64) {
	if r.index >= len(x) {
		return
	}
	r.sumsq += x[r.index] * x[r.index]
	r.samples++
}

func (r *RMS) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumsq / float64(r.samples))
}

func (r *RMS) Reset() {
	r.sumsq = 0
	r.samples = 0
}
