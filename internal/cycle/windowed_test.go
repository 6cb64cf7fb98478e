package cycle

import "testing"

func TestWindowedAccel(t *testing.T) {
	c := NewWindowed()

	tests := []struct {
		t    float64
		want float64
	}{
		{0.0, 0},
		{0.5, 0}, // bounds are exclusive
		{0.6, 3.0},
		{1.5, 3.0},
		{2.5, 0},
		{2.7, 0},
		{3.0, 0},
		{3.5, -6.0},
		{4.0, 0},
		{10.0, 0},
	}
	for _, tt := range tests {
		if got := c.Accel(tt.t, 0); got != tt.want {
			t.Errorf("Accel(t=%g) = %g, want %g", tt.t, got, tt.want)
		}
	}
}

func TestWindowedIgnoresSpeed(t *testing.T) {
	c := NewWindowed()
	if c.Accel(1.0, 0) != c.Accel(1.0, 100) {
		t.Error("windowed cycle must not depend on speed")
	}
}
