package vehicle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/halfcar/internal/dynamo"
)

// GR86 is a small rear-drive sports coupe: stiff springs, low CG.
func GR86() Params {
	return Params{
		Name: "GR86",
		Ms:   1150.0, Is: 1400.0,
		Mu1: 45.0, Mu2: 45.0,
		Ks1: 30000.0, Ks2: 35000.0,
		Kt1: 200000.0, Kt2: 200000.0,
		Cs1: 2500.0, Cs2: 2800.0,
		L1: 1.28, L2: 1.29, H: 0.45,
	}
}

// LexusLS is a heavy luxury sedan: soft springs, long wheelbase.
func LexusLS() Params {
	return Params{
		Name: "LexusLS",
		Ms:   2000.0, Is: 3500.0,
		Mu1: 65.0, Mu2: 65.0,
		Ks1: 20000.0, Ks2: 22000.0,
		Kt1: 220000.0, Kt2: 220000.0,
		Cs1: 3500.0, Cs2: 3800.0,
		L1: 1.55, L2: 1.57, H: 0.55,
	}
}

// Samber is a light cab-over kei truck: short wheelbase, high CG.
func Samber() Params {
	return Params{
		Name: "Samber",
		Ms:   650.0, Is: 750.0,
		Mu1: 35.0, Mu2: 35.0,
		Ks1: 15000.0, Ks2: 25000.0,
		Kt1: 160000.0, Kt2: 160000.0,
		Cs1: 1200.0, Cs2: 1500.0,
		L1: 0.95, L2: 0.95, H: 0.70,
	}
}

// Sedan is a generic mid-size reference vehicle.
func Sedan() Params {
	return Params{
		Name: "Sedan",
		Ms:   1200.0, Is: 2000.0,
		Mu1: 40.0, Mu2: 40.0,
		Ks1: 25000.0, Ks2: 25000.0,
		Kt1: 150000.0, Kt2: 150000.0,
		Cs1: 1500.0, Cs2: 1500.0,
		L1: 1.2, L2: 1.3, H: 0.5,
	}
}

var presets = map[string]func() Params{
	"gr86":    GR86,
	"lexusls": LexusLS,
	"samber":  Samber,
	"sedan":   Sedan,
}

// Get returns the catalog vehicle with the given name (case-insensitive).
func Get(name string) (Params, error) {
	fn, ok := presets[strings.ToLower(name)]
	if !ok {
		return Params{}, fmt.Errorf("%w: vehicle %q (available: %v)", dynamo.ErrUnknownName, name, Names())
	}
	return fn(), nil
}

// Names lists the catalog vehicle names in stable order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Catalog returns every preset vehicle.
func Catalog() []Params {
	names := Names()
	out := make([]Params, 0, len(names))
	for _, name := range names {
		p, _ := Get(name)
		out = append(out, p)
	}
	return out
}
