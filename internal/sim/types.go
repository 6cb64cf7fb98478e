package sim

import "github.com/san-kum/halfcar/internal/dynamo"

// Record is one output row: the ride state before a step plus the
// longitudinal state. Units: seconds, meters, radians, m/s.
type Record struct {
	T     float64
	Ys    float64
	Theta float64
	Yu1   float64
	Yu2   float64
	VAbs  float64
	XAbs  float64
}

func newRecord(t float64, x dynamo.State, v, pos float64) Record {
	return Record{
		T:     t,
		Ys:    x[0],
		Theta: x[1],
		Yu1:   x[2],
		Yu2:   x[3],
		VAbs:  v,
		XAbs:  pos,
	}
}

type Config struct {
	Dt            float64
	Steps         int
	ValidateState bool
}

type Result struct {
	Records    []Record
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}
