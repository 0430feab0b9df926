package soil

import (
	"math"

	"github.com/ctessum/sparse"
)

// DefaultFillValue marks missing cells in the output dataset.
const DefaultFillValue = -9999.

// FillSentinel returns a copy of the grid with every missing cell replaced by
// the fill value. Non-missing cells, zeros included, are untouched, so
// applying it twice is the same as applying it once.
func FillSentinel(g *sparse.DenseArray, fill float64) *sparse.DenseArray {
	out := sparse.ZerosDense(g.Shape...)
	copy(out.Elements, g.Elements)
	for i, v := range out.Elements {
		if math.IsNaN(v) {
			out.Elements[i] = fill
		}
	}

	return out
}
