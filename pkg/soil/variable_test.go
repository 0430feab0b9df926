package soil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coecms/soil-column/pkg/soil"
)

func TestParseVariables(t *testing.T) {
	t.Parallel()

	got, err := soil.ParseVariables([]string{"SAND", "CLAY", "SILT", "OC", "BULK_DEN"})
	require.NoError(t, err)
	assert.Equal(t, []soil.Variable{soil.Sand, soil.Clay, soil.Silt, soil.OrganicCarbon, soil.BulkDensity}, got)
}

func TestParseVariablesMissing(t *testing.T) {
	t.Parallel()

	_, err := soil.ParseVariables([]string{"SAND", "CLAY", "SILT", "OC"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BULK_DEN")
}

func TestParseVariablesUnknown(t *testing.T) {
	t.Parallel()

	_, err := soil.ParseVariables([]string{"SAND", "CLAY", "SILT", "OC", "BULK_DEN", "PH"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PH")
}

func TestParseVariablesDuplicatesCollapse(t *testing.T) {
	t.Parallel()

	got, err := soil.ParseVariables([]string{"SAND", "SAND", "CLAY", "SILT", "OC", "BULK_DEN"})
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestVariableNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "T_SAND.nc4", soil.FileName(soil.TopPrefix, soil.Sand))
	assert.Equal(t, "S_BULK_DEN.nc4", soil.FileName(soil.SubPrefix, soil.BulkDensity))
	assert.Equal(t, "T_OC", soil.VarName(soil.TopPrefix, soil.OrganicCarbon))
}

func TestVariableLoadScale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1000., soil.BulkDensity.LoadScale())
	assert.Equal(t, 1./100., soil.Sand.LoadScale())
	assert.Equal(t, 1./100., soil.OrganicCarbon.LoadScale())
}
