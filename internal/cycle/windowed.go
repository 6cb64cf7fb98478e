package cycle

// Windowed commands a fixed acceleration inside a drive window and a fixed
// deceleration inside a later brake window, coasting otherwise. The window
// bounds are exclusive.
type Windowed struct {
	DriveStart, DriveEnd float64 // s
	BrakeStart, BrakeEnd float64 // s
	Drive, Brake         float64 // m/s^2
}

// NewWindowed builds the reference profile: drive at 3.0 m/s^2 between
// t=0.5s and t=2.5s, brake at 6.0 m/s^2 between t=3.0s and t=4.0s.
func NewWindowed() *Windowed {
	return &Windowed{
		DriveStart: 0.5, DriveEnd: 2.5,
		BrakeStart: 3.0, BrakeEnd: 4.0,
		Drive: 3.0, Brake: -6.0,
	}
}

func (c *Windowed) Accel(t, v float64) float64 {
	switch {
	case t > c.DriveStart && t < c.DriveEnd:
		return c.Drive
	case t > c.BrakeStart && t < c.BrakeEnd:
		return c.Brake
	}
	return 0
}
