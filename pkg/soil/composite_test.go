package soil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coecms/soil-column/pkg/soil"
)

func TestCompositeColumnWeights(t *testing.T) {
	t.Parallel()

	top := grid(0.6, 0.03, 1500.)
	sub := grid(0.1, 0.05, 1300.)

	got := soil.CompositeColumn(top, sub)

	want := []float64{0.25, 0.044, 1360.}
	for i := range want {
		assert.InDelta(t, want[i], got.Elements[i], 1e-12)
	}
}

func TestCompositeColumnMissingPropagates(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	top := grid(nan, 0.5, nan)
	sub := grid(0.5, nan, nan)

	got := soil.CompositeColumn(top, sub)

	for i, v := range got.Elements {
		assert.True(t, math.IsNaN(v), "cell %d", i)
	}
}

func TestCompositeColumnLeavesInputsAlone(t *testing.T) {
	t.Parallel()

	top := grid(0.6)
	sub := grid(0.1)

	soil.CompositeColumn(top, sub)

	assert.Equal(t, 0.6, top.Elements[0])
	assert.Equal(t, 0.1, sub.Elements[0])
}
