package drawer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coecms/soil-column/pkg/pipeline/drawer"
)

func TestDOTDrawer(t *testing.T) {
	t.Parallel()

	dotFile := filepath.Join(t.TempDir(), "pipeline.gv")
	d := drawer.NewDOTDrawer(dotFile)

	require.NoError(t, d.AddStage("load"))
	require.NoError(t, d.AddStage("write"))
	require.NoError(t, d.AddLink("load", "write"))
	require.NoError(t, d.SetElapsed("load", 2*time.Second))
	require.NoError(t, d.SetElapsed("write", time.Second))

	require.NoError(t, d.Draw())

	raw, err := os.ReadFile(dotFile)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"load"`)
	assert.Contains(t, out, `"load" -> "write"`)
	assert.Contains(t, out, "2s")
	assert.Contains(t, out, "fillcolor")
}

func TestDOTDrawerUnknownStage(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "pipeline.gv"))
	require.NoError(t, d.AddStage("load"))

	err := d.SetElapsed("absent", time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent")
}
