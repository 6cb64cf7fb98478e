// Package dynamo provides the core simulation primitives for the half-car
// ride model.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Cycle]: driving-cycle policy producing the acceleration command
//
// # Example
//
//	dyn, _ := vehicle.New(vehicle.GR86())
//	integ := integrators.NewRK4()
//	s := sim.New(dyn, integ, cycle.NewTargetSpeed(65))
//	result, _ := s.Run(ctx, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Fleet runs build one simulator
// per vehicle; nothing is shared between them.
package dynamo
