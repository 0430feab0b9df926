// Package soil computes a whole-column soil composition dataset from the
// two-layer (topsoil/subsoil) HWSD grids.
package soil

import (
	"fmt"

	"github.com/pkg/errors"
)

// Variable identifies one of the soil composition fields.
type Variable string

const (
	Sand          Variable = "SAND"
	Silt          Variable = "SILT"
	Clay          Variable = "CLAY"
	OrganicCarbon Variable = "OC"
	BulkDensity   Variable = "BULK_DEN"
)

// Variables lists the five fields in output order.
var Variables = []Variable{Sand, Clay, Silt, OrganicCarbon, BulkDensity}

// Layer prefixes of the input file names.
const (
	TopPrefix = "T"
	SubPrefix = "S"
)

// OutputFileName is the name of the composite dataset written into the input
// directory.
const OutputFileName = "HWSD_soilcomposition_test.nc"

// LoadScale is the factor applied to stored values to reach physical units:
// texture fractions and organic carbon are stored as percent, bulk density in
// g/cm3.
func (v Variable) LoadScale() float64 {
	if v == BulkDensity {
		return 1000. // to kg m-3
	}

	return 1. / 100. // percent to fraction
}

// Unit returns the physical unit string of the composite field.
func (v Variable) Unit() string {
	if v == BulkDensity {
		return "kg m-3"
	}

	return "-"
}

// LongName returns the descriptive name of the composite field.
func (v Variable) LongName() string {
	switch v {
	case Sand:
		return "soil sand fraction"
	case Silt:
		return "soil silt fraction"
	case Clay:
		return "soil clay fraction"
	case OrganicCarbon:
		return "soil organic carbon"
	case BulkDensity:
		return "soil bulk density"
	}

	return string(v)
}

// FileName is the input file holding the variable for the given layer prefix.
// The variable inside the file carries the same prefixed name.
func FileName(prefix string, v Variable) string {
	return fmt.Sprintf("%s_%s.nc4", prefix, v)
}

// VarName is the name of the variable inside its input file.
func VarName(prefix string, v Variable) string {
	return fmt.Sprintf("%s_%s", prefix, v)
}

// ParseVariables maps the configured suffixes to variables. Every one of the
// five composite fields must be present; unknown suffixes are rejected.
func ParseVariables(names []string) ([]Variable, error) {
	known := make(map[Variable]bool, len(Variables))
	for _, v := range Variables {
		known[v] = false
	}

	out := make([]Variable, 0, len(names))
	for _, name := range names {
		v := Variable(name)
		seen, ok := known[v]
		if !ok {
			return nil, errors.Errorf("unknown soil variable %q", name)
		}
		if seen {
			continue
		}
		known[v] = true
		out = append(out, v)
	}

	for _, v := range Variables {
		if !known[v] {
			return nil, errors.Errorf("missing required soil variable %q", v)
		}
	}

	return out, nil
}
