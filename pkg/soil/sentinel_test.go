package soil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coecms/soil-column/pkg/soil"
)

func TestFillSentinelReplacesMissingCells(t *testing.T) {
	t.Parallel()

	g := grid(0.6, math.NaN(), 0., -1.)

	got := soil.FillSentinel(g, soil.DefaultFillValue)

	assert.Equal(t, []float64{0.6, soil.DefaultFillValue, 0., -1.}, got.Elements)
	// The input keeps its NaN; the result is a copy.
	assert.True(t, math.IsNaN(g.Elements[1]))
}

func TestFillSentinelIdempotent(t *testing.T) {
	t.Parallel()

	g := grid(0.6, math.NaN())

	once := soil.FillSentinel(g, -1e3)
	twice := soil.FillSentinel(once, -1e3)

	assert.Equal(t, once.Elements, twice.Elements)
}
