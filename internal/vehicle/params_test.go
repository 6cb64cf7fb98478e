package vehicle

import (
	"errors"
	"testing"

	"github.com/san-kum/halfcar/internal/dynamo"
)

func TestValidate(t *testing.T) {
	if err := GR86().Validate(); err != nil {
		t.Fatalf("GR86 should validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"zero mass", func(p *Params) { p.Ms = 0 }},
		{"negative inertia", func(p *Params) { p.Is = -100 }},
		{"zero unsprung mass", func(p *Params) { p.Mu1 = 0 }},
		{"negative stiffness", func(p *Params) { p.Ks2 = -1 }},
		{"zero tire stiffness", func(p *Params) { p.Kt1 = 0 }},
		{"negative damping", func(p *Params) { p.Cs1 = -50 }},
		{"zero wheelbase", func(p *Params) { p.L1 = 0 }},
		{"zero cg height", func(p *Params) { p.H = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GR86()
			tt.mutate(&p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, dynamo.ErrInvalidParameter) {
				t.Errorf("error should wrap ErrInvalidParameter: %v", err)
			}
		})
	}
}

func TestCatalogValidates(t *testing.T) {
	for _, p := range Catalog() {
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
	}
}

func TestGet(t *testing.T) {
	p, err := Get("gr86")
	if err != nil {
		t.Fatalf("Get(gr86): %v", err)
	}
	if p.Name != "GR86" {
		t.Errorf("Name = %q, want GR86", p.Name)
	}

	// Lookup is case-insensitive.
	if _, err := Get("LexusLS"); err != nil {
		t.Errorf("Get(LexusLS): %v", err)
	}

	_, err = Get("nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown vehicle")
	}
	if !errors.Is(err, dynamo.ErrUnknownName) {
		t.Errorf("error should wrap ErrUnknownName: %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 4 {
		t.Fatalf("len(Names()) = %d, want 4", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}
