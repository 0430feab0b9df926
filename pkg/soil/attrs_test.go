package soil_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coecms/soil-column/internal/ncio"
	"github.com/coecms/soil-column/pkg/soil"
)

func attrMap(t *testing.T, attrs []ncio.Attr) map[string]string {
	t.Helper()

	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		s, ok := a.Value.(string)
		require.True(t, ok, "attribute %s is not a string", a.Name)
		out[a.Name] = s
	}

	return out
}

func TestGlobalAttrsProvenance(t *testing.T) {
	t.Parallel()

	src := map[string]string{
		"creator":     "HWSD team",
		"institution": "FAO",
		"processing":  "Regridding to 3x3 minutes",
		"history":     "Created from the HWSD raster",
	}
	now := time.Date(2023, time.May, 4, 10, 30, 0, 0, time.UTC)

	got := attrMap(t, soil.GlobalAttrs(src, now))

	assert.Equal(t, "HWSD team", got["original_creator"])
	assert.Equal(t, "FAO", got["original_institution"])
	assert.Equal(t, "The source data was created with this processing.\n Regridding to 3x3 minutes", got["original_processing"])
	assert.Equal(t, "Weighted average with soilcolumn\n Created from the HWSD raster", got["history"])

	assert.Equal(t, "Claire Carouge", got["creator"])
	assert.Equal(t, "c.carouge@unsw.edu.au", got["creator_email"])
	assert.Equal(t, "CLEX, UNSW", got["institution"])
	assert.Equal(t, "3x3minute regridded HWSD", got["source"])
	assert.Equal(t, "Whole soil column 3x3minute regridded HWSD", got["title"])
	assert.Equal(t, "Claire Carouge, Thu 04 May 2023 10:30:00 UTC", got["modified"])
}

func TestGlobalAttrsSortedAndExtraKeysKept(t *testing.T) {
	t.Parallel()

	src := map[string]string{
		"creator": "HWSD team",
		"license": "CC-BY",
	}

	attrs := soil.GlobalAttrs(src, time.Now())

	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.Name
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "license")
}

func TestVariableAttrs(t *testing.T) {
	t.Parallel()

	attrs := soil.VariableAttrs(soil.BulkDensity, -9999.)

	byName := make(map[string]interface{}, len(attrs))
	for _, a := range attrs {
		byName[a.Name] = a.Value
	}
	assert.Equal(t, "soil bulk density", byName["long_name"])
	assert.Equal(t, "kg m-3", byName["units"])
	assert.Equal(t, "Column of soil between 0 and 100 cm.", byName["comment"])
	assert.Equal(t, []float64{-9999.}, byName["_FillValue"])

	attrs = soil.VariableAttrs(soil.Sand, -9999.)
	for _, a := range attrs {
		if a.Name == "units" {
			assert.Equal(t, "-", a.Value)
		}
	}
}
