package cycle

// Defaults for the accelerate-then-brake cycle.
const (
	DefaultTargetKmh = 65.0
	DefaultDrive     = 3.3  // m/s^2
	DefaultBrake     = -8.5 // m/s^2
	DefaultStopSpeed = 0.1  // m/s, residual speed treated as stopped
)

// TargetSpeed accelerates at a fixed rate until the target speed is
// reached, then brakes to a standstill and holds the vehicle there.
type TargetSpeed struct {
	Target float64 // m/s
	Drive  float64 // m/s^2 while below target
	Brake  float64 // m/s^2 (negative) while stopping
	StopV  float64 // m/s

	braking bool
	stopped bool
}

// NewTargetSpeed builds the cycle for a target speed given in km/h.
func NewTargetSpeed(targetKmh float64) *TargetSpeed {
	return &TargetSpeed{
		Target: targetKmh / 3.6,
		Drive:  DefaultDrive,
		Brake:  DefaultBrake,
		StopV:  DefaultStopSpeed,
	}
}

func (c *TargetSpeed) Accel(t, v float64) float64 {
	if !c.braking {
		if v < c.Target {
			return c.Drive
		}
		// The transition step itself coasts; braking starts next step.
		c.braking = true
		return 0
	}
	if v > c.StopV {
		return c.Brake
	}
	c.stopped = true
	return 0
}

// LimitSpeed clamps the residual speed to exactly zero once the cycle has
// braked down to the stop threshold.
func (c *TargetSpeed) LimitSpeed(v float64) float64 {
	if c.stopped {
		return 0
	}
	return v
}

func (c *TargetSpeed) Reset() {
	c.braking = false
	c.stopped = false
}
