// Package ncio reads and writes gridded variables stored as NetCDF files.
//
// Reading is split in two phases. Opening a variable returns a lazy handle
// holding only the header information (shape, coordinate axes, fill value);
// the values are read when the handle is materialized. Gap filling and
// compositing need several dependent passes over the same cells, so the rest
// of the program only ever sees fully materialized grids.
package ncio

import (
	"math"

	"github.com/ctessum/sparse"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrMissingInput reports an expected input file that does not exist.
	ErrMissingInput = errors.New("input file does not exist")
	// ErrMisalignedGrid reports grids whose coordinate axes do not match
	// cell-for-cell.
	ErrMisalignedGrid = errors.New("grid axes are not aligned")
	// ErrWrite reports a failed dataset serialization.
	ErrWrite = errors.New("unable to write dataset")
)

// Axis is one named coordinate axis of a grid. Values is nil when the
// dimension has no coordinate variable.
type Axis struct {
	Name   string
	Values []float64
}

// Grid is a fully materialized gridded variable. Missing cells are NaN.
type Grid struct {
	Variable string
	Axes     []Axis
	Data     *sparse.DenseArray
}

// Attr is a single metadata attribute. String values stay strings; numeric
// values are stored as the slices the file format expects.
type Attr struct {
	Name  string
	Value interface{}
}

func sameAxes(a, b []Axis) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			return false
		}
		if a[i].Values == nil && b[i].Values == nil {
			continue
		}
		if !floats.Equal(a[i].Values, b[i].Values) {
			return false
		}
	}

	return true
}

// IsMissing reports whether the cell value is the in-memory missing marker.
func IsMissing(v float64) bool { return math.IsNaN(v) }
