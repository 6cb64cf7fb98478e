// Package cycle provides driving-cycle policies implementing
// [dynamo.Cycle]. Policies are evaluated once per outer simulation step;
// the command they return is held constant through the integrator stages
// of that step.
package cycle
