package soil

import (
	"github.com/ctessum/sparse"
)

// TextureTriple groups the sand, silt and clay grids of one layer. The three
// fractions of a valid soil cell sum to about one.
type TextureTriple struct {
	Sand, Silt, Clay *sparse.DenseArray
}

// plausibleTextureSum is the lowest triple sum still considered valid soil.
const plausibleTextureSum = 0.9

// FillTexture repairs implausible subsoil texture cells from the topsoil.
//
// The three substitutions run in sequence and each plausibility test uses the
// values already substituted by the earlier steps, mixed with the raw subsoil
// values of the later ones: sand is tested against the raw triple, clay
// against (sand', silt, clay), silt against (sand', silt, clay'). A sum
// touching a missing cell is missing and never reaches the threshold, so
// missing subsoil cells always take the topsoil value.
func FillTexture(top, sub TextureTriple) TextureTriple {
	sand := keepWhereSumAtLeast(plausibleTextureSum, sub.Sand, top.Sand, sub.Sand, sub.Silt, sub.Clay)
	clay := keepWhereSumAtLeast(plausibleTextureSum, sub.Clay, top.Clay, sand, sub.Silt, sub.Clay)
	silt := keepWhereSumAtLeast(plausibleTextureSum, sub.Silt, top.Silt, sand, sub.Silt, clay)

	return TextureTriple{Sand: sand, Silt: silt, Clay: clay}
}

// keepWhereSumAtLeast builds a new grid taking keep's value where the
// cell-wise sum of terms reaches the threshold and fallback's value
// elsewhere. A NaN sum compares false and selects the fallback.
func keepWhereSumAtLeast(threshold float64, keep, fallback *sparse.DenseArray, terms ...*sparse.DenseArray) *sparse.DenseArray {
	out := sparse.ZerosDense(keep.Shape...)
	for i := range out.Elements {
		sum := 0.
		for _, t := range terms {
			sum += t.Elements[i]
		}
		if sum >= threshold {
			out.Elements[i] = keep.Elements[i]
		} else {
			out.Elements[i] = fallback.Elements[i]
		}
	}

	return out
}
