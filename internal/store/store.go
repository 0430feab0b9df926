package store

import (
	"fmt"
	"sync"

	"github.com/dominikbraun/graph"
)

// StageStore is a graph store for pipeline stage graphs. Unlike the default
// store shipped with the graph package, it keeps vertex properties addressable
// so stage attributes (timing labels, colours) can be updated after insertion.
type StageStore struct {
	lock       sync.RWMutex
	stages     map[string]string
	properties map[string]*graph.VertexProperties

	// outEdges and inEdges store all outgoing and ingoing edges for all stages. For O(1) access,
	// these edges themselves are stored in maps whose keys are the target stage names.
	outEdges map[string]map[string]graph.Edge[string] // source -> target
	inEdges  map[string]map[string]graph.Edge[string] // target -> source
}

func NewStageStore() *StageStore {
	return &StageStore{
		stages:     make(map[string]string),
		properties: make(map[string]*graph.VertexProperties),
		outEdges:   make(map[string]map[string]graph.Edge[string]),
		inEdges:    make(map[string]map[string]graph.Edge[string]),
	}
}

func (s *StageStore) AddVertex(k string, t string, p graph.VertexProperties) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.stages[k]; ok {
		return graph.ErrVertexAlreadyExists
	}

	if p.Attributes == nil {
		p.Attributes = make(map[string]string)
	}
	s.stages[k] = t
	s.properties[k] = &p

	return nil
}

func (s *StageStore) ListVertices() ([]string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	names := make([]string, 0, len(s.stages))
	for k := range s.stages {
		names = append(names, k)
	}

	return names, nil
}

func (s *StageStore) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.stages), nil
}

func (s *StageStore) Vertex(k string) (string, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	v, ok := s.stages[k]
	if !ok {
		return v, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	p := s.properties[k]

	return v, *p, nil
}

func (s *StageStore) RemoveVertex(k string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.stages[k]; !ok {
		return graph.ErrVertexNotFound
	}

	if edges, ok := s.inEdges[k]; ok {
		if len(edges) > 0 {
			return graph.ErrVertexHasEdges
		}
		delete(s.inEdges, k)
	}

	if edges, ok := s.outEdges[k]; ok {
		if len(edges) > 0 {
			return graph.ErrVertexHasEdges
		}
		delete(s.outEdges, k)
	}

	delete(s.stages, k)
	delete(s.properties, k)

	return nil
}

// UpdateVertex applies the given options to the stored properties of a stage.
// Unknown stages are ignored.
func (s *StageStore) UpdateVertex(k string, options ...func(*graph.VertexProperties)) {
	s.lock.Lock()
	defer s.lock.Unlock()

	p, ok := s.properties[k]
	if !ok {
		return
	}
	for _, opt := range options {
		opt(p)
	}
}

func (s *StageStore) AddEdge(sourceName, targetName string, edge graph.Edge[string]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.outEdges[sourceName]; !ok {
		s.outEdges[sourceName] = make(map[string]graph.Edge[string])
	}

	s.outEdges[sourceName][targetName] = edge

	if _, ok := s.inEdges[targetName]; !ok {
		s.inEdges[targetName] = make(map[string]graph.Edge[string])
	}

	s.inEdges[targetName][sourceName] = edge

	return nil
}

func (s *StageStore) UpdateEdge(sourceName, targetName string, edge graph.Edge[string]) error {
	if _, err := s.Edge(sourceName, targetName); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.outEdges[sourceName][targetName] = edge
	s.inEdges[targetName][sourceName] = edge

	return nil
}

func (s *StageStore) RemoveEdge(sourceName, targetName string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.inEdges[targetName], sourceName)
	delete(s.outEdges[sourceName], targetName)

	return nil
}

func (s *StageStore) Edge(sourceName, targetName string) (graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sourceEdges, ok := s.outEdges[sourceName]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	edge, ok := sourceEdges[targetName]
	if !ok {
		return graph.Edge[string]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

func (s *StageStore) ListEdges() ([]graph.Edge[string], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res := make([]graph.Edge[string], 0)
	for _, edges := range s.outEdges {
		for _, edge := range edges {
			res = append(res, edge)
		}
	}

	return res, nil
}

// CreatesCycle is a fastpath version of [graph.CreatesCycle] that avoids
// calling PredecessorMap, which generates large amounts of garbage to collect.
//
// Because CreatesCycle doesn't need to modify the PredecessorMap, we can use
// inEdges instead to compute the same thing without creating any copies.
func (s *StageStore) CreatesCycle(source, target string) (bool, error) {
	if _, _, err := s.Vertex(source); err != nil {
		return false, fmt.Errorf("could not get vertex with hash %v: %w", source, err)
	}

	if _, _, err := s.Vertex(target); err != nil {
		return false, fmt.Errorf("could not get vertex with hash %v: %w", target, err)
	}

	if source == target {
		return true, nil
	}

	stack := make([]string, 0)
	visited := make(map[string]struct{})

	stack = append(stack, source)
	for len(stack) > 0 {
		currentName := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[currentName]; !ok {
			// If the adjacent vertex also is the target vertex, the target is a
			// parent of the source vertex. An edge would introduce a cycle.
			if currentName == target {
				return true, nil
			}

			visited[currentName] = struct{}{}

			for adjacency := range s.inEdges[currentName] {
				stack = append(stack, adjacency)
			}
		}
	}

	return false, nil
}

var _ graph.Store[string, string] = (*StageStore)(nil)
