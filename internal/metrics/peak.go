package metrics

import (
	"math"

	"github.com/san-kum/halfcar/internal/dynamo"
)

// Peak tracks the largest absolute value of one state component.
type Peak struct {
	name  string
	index int
	max   float64
}

func NewPeak(name string, index int) *Peak {
	return &Peak{name: name, index: index}
}

// NewPeakHeave tracks max |ys|.
func NewPeakHeave() *Peak { return NewPeak("peak_heave", 0) }

// NewPeakPitch tracks max |theta|.
func NewPeakPitch() *Peak { return NewPeak("peak_pitch", 1) }

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(x dynamo.State, u dynamo.Control, t float64) {
	if p.index >= len(x) {
		return
	}
	if v := math.Abs(x[p.index]); v > p.max {
		p.max = v
	}
}

func (p *Peak) Value() float64 { return p.max }
func (p *Peak) Reset()         { p.max = 0 }
