package soil

import (
	"github.com/ctessum/sparse"

	"github.com/coecms/soil-column/internal/ncio"
)

// Dataset is the assembled composite dataset: the five whole-column grids,
// the axes they share, the provenance attributes of the source dataset and
// the fill value marking missing cells.
type Dataset struct {
	Grids       map[Variable]*sparse.DenseArray
	Axes        []ncio.Axis
	SourceAttrs map[string]string
	FillValue   float64
}
