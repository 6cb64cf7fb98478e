package dynamo

import (
	"math"
	"strings"
	"testing"
)

func TestStateClone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()

	c[0] = 99
	if s[0] != 1 {
		t.Error("Clone should not share backing array")
	}
	if len(c) != len(s) {
		t.Errorf("Clone length = %d, want %d", len(c), len(s))
	}
}

func TestStateIsValid(t *testing.T) {
	tests := []struct {
		name string
		s    State
		want bool
	}{
		{"zero", State{0, 0, 0}, true},
		{"finite", State{1.5, -2.3, 1e10}, true},
		{"nan", State{0, math.NaN(), 0}, false},
		{"posinf", State{math.Inf(1), 0}, false},
		{"neginf", State{0, math.Inf(-1)}, false},
		{"empty", State{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateNorm(t *testing.T) {
	s := State{3, 4}
	if got := s.Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm() = %f, want 5", got)
	}

	if got := (State{}).Norm(); got != 0 {
		t.Errorf("empty Norm() = %f, want 0", got)
	}
}

func TestSimError(t *testing.T) {
	err := SimError{Step: 42, Time: 0.042, Message: "invalid state (NaN/Inf)"}
	msg := err.Error()

	if !strings.Contains(msg, "42") {
		t.Errorf("error message should contain step: %q", msg)
	}
	if !strings.Contains(msg, "invalid state") {
		t.Errorf("error message should contain reason: %q", msg)
	}
}
