package metrics

import (
	"math"

	"github.com/san-kum/halfcar/internal/dynamo"
)

// Stability reports the fraction of observed steps where every generalized
// coordinate stayed within the threshold. A value below 1 flags a
// diverging run.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(x dynamo.State, u dynamo.Control, t float64) {
	s.samples++
	n := len(x)
	if n > 4 {
		n = 4 // coordinates only, not rates
	}
	for i := 0; i < n; i++ {
		if math.Abs(x[i]) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
