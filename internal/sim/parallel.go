package sim

import (
	"context"
	"sync"

	"github.com/san-kum/halfcar/internal/dynamo"
)

// RunSpec names one independent simulation: its own system, integrator,
// and cycle. Integrators and cycles carry per-run state, so every spec
// must bring fresh instances.
type RunSpec struct {
	Name  string
	Dyn   dynamo.System
	Integ dynamo.Integrator
	Cycle dynamo.Cycle
}

type FleetResult struct {
	Name   string
	Result *Result
	Err    error
}

// RunParallel simulates every spec concurrently under the same config.
// Runs share no mutable state; results come back in spec order.
func RunParallel(ctx context.Context, specs []RunSpec, cfg Config) []FleetResult {
	results := make([]FleetResult, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(idx int, sp RunSpec) {
			defer wg.Done()
			results[idx].Name = sp.Name
			results[idx].Result, results[idx].Err = New(sp.Dyn, sp.Integ, sp.Cycle).Run(ctx, cfg)
		}(i, spec)
	}
	wg.Wait()

	return results
}
