package store_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coecms/soil-column/internal/store"
)

func TestAddVertex(t *testing.T) {
	t.Parallel()

	s := store.NewStageStore()
	err := s.AddVertex("load", "load", graph.VertexProperties{})
	require.NoError(t, err)

	err = s.AddVertex("load", "load", graph.VertexProperties{})
	require.ErrorIs(t, err, graph.ErrVertexAlreadyExists)

	count, err := s.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateVertex(t *testing.T) {
	t.Parallel()

	s := store.NewStageStore()
	require.NoError(t, s.AddVertex("load", "load", graph.VertexProperties{}))

	s.UpdateVertex("load", func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = "1s"
	})

	_, props, err := s.Vertex("load")
	require.NoError(t, err)
	assert.Equal(t, "1s", props.Attributes["xlabel"])

	// Updating an unknown stage is a no-op.
	s.UpdateVertex("absent", func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = "1s"
	})
	_, _, err = s.Vertex("absent")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestEdges(t *testing.T) {
	t.Parallel()

	s := store.NewStageStore()
	require.NoError(t, s.AddVertex("load", "load", graph.VertexProperties{}))
	require.NoError(t, s.AddVertex("write", "write", graph.VertexProperties{}))

	err := s.AddEdge("load", "write", graph.Edge[string]{Source: "load", Target: "write"})
	require.NoError(t, err)

	edge, err := s.Edge("load", "write")
	require.NoError(t, err)
	assert.Equal(t, "write", edge.Target)

	_, err = s.Edge("write", "load")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)

	edges, err := s.ListEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestCreatesCycle(t *testing.T) {
	t.Parallel()

	s := store.NewStageStore()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.AddVertex(name, name, graph.VertexProperties{}))
	}
	require.NoError(t, s.AddEdge("a", "b", graph.Edge[string]{Source: "a", Target: "b"}))
	require.NoError(t, s.AddEdge("b", "c", graph.Edge[string]{Source: "b", Target: "c"}))

	cycle, err := s.CreatesCycle("c", "a")
	require.NoError(t, err)
	assert.True(t, cycle)

	cycle, err = s.CreatesCycle("a", "c")
	require.NoError(t, err)
	assert.False(t, cycle)

	_, err = s.CreatesCycle("a", "absent")
	require.Error(t, err)
}
