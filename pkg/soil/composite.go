package soil

import (
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Column weighting: a nominal 100 cm soil column split into 30 cm of topsoil
// over 70 cm of subsoil.
const (
	TopWeight = 0.3
	SubWeight = 0.7
)

// CompositeColumn returns the depth-weighted whole-column combination of a
// topsoil and a subsoil grid. A missing cell in either input leaves the
// result cell missing.
func CompositeColumn(top, sub *sparse.DenseArray) *sparse.DenseArray {
	out := sparse.ZerosDense(top.Shape...)
	floats.ScaleTo(out.Elements, TopWeight, top.Elements)
	floats.AddScaled(out.Elements, SubWeight, sub.Elements)

	return out
}
