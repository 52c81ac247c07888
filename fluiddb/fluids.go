// Package fluiddb provides the critical-point properties and ideal-gas
// polynomial coefficients of pure fluids.
package fluiddb

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"realtpl/eos"
)

// ErrUnknownFluid is returned when a fluid is not present in a database.
var ErrUnknownFluid = errors.New("fluiddb: unknown fluid")

//go:embed data/fluids.yaml
var defaultFluids []byte

// FluidRecord is one entry of a fluid database document.
type FluidRecord struct {
	Mass                 float64  `yaml:"mass"`   // kg/kmol
	Omega                float64  `yaml:"omega"`  // -
	PC                   float64  `yaml:"p_c"`    // Pa
	TempC                float64  `yaml:"temp_c"` // K
	RhoC                 float64  `yaml:"rho_c"`  // kmol/m3
	DipoleMoment         *float64 `yaml:"dipole_moment,omitempty"`
	AssociationParameter *float64 `yaml:"association_parameter,omitempty"`
}

// Fluids holds fluid records keyed by name.
type Fluids struct {
	records map[string]FluidRecord
}

// DefaultFluids returns the built-in fluid database.
func DefaultFluids() (*Fluids, error) {
	f := &Fluids{records: map[string]FluidRecord{}}
	if err := f.merge(defaultFluids); err != nil {
		return nil, fmt.Errorf("built-in fluid data: %w", err)
	}
	return f, nil
}

// LoadFluids returns the built-in database extended by the document at
// path. Entries in the file replace built-in entries of the same name.
func LoadFluids(path string) (*Fluids, error) {
	f, err := DefaultFluids()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fluid data %s: %w", path, err)
	}
	if err := f.merge(data); err != nil {
		return nil, fmt.Errorf("fluid data %s: %w", path, err)
	}
	return f, nil
}

func (f *Fluids) merge(data []byte) error {
	var doc map[string]FluidRecord
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	for name, r := range doc {
		if !(r.Mass > 0) || !(r.PC > 0) || !(r.TempC > 0) || !(r.RhoC > 0) {
			return fmt.Errorf("%w: %s needs positive mass, p_c, temp_c and rho_c", eos.ErrDataInconsistency, name)
		}
		f.records[name] = r
	}
	return nil
}

// Names returns the fluids in the database in sorted order.
func (f *Fluids) Names() []string {
	names := make([]string, 0, len(f.records))
	for name := range f.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the critical-point properties of name. Dipole moment and
// association parameter fall back to the built-in tables, then to zero.
func (f *Fluids) Lookup(name string) (eos.FluidProperties, error) {
	r, ok := f.records[name]
	if !ok {
		return eos.FluidProperties{}, fmt.Errorf("%w: %s (available: %s)",
			ErrUnknownFluid, name, strings.Join(f.Names(), ", "))
	}

	dipole := DipoleMoment(name)
	if r.DipoleMoment != nil {
		dipole = *r.DipoleMoment
	}
	assoc := AssociationParameter(name)
	if r.AssociationParameter != nil {
		assoc = *r.AssociationParameter
	}

	return eos.NewFluidProperties(name, r.Mass, r.Omega, r.PC, r.TempC, r.RhoC, dipole, assoc), nil
}
