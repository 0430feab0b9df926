package drawer

import (
	"os"
	"sort"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/coecms/soil-column/internal/store"
)

// DOTDrawer is a drawer that renders the pipeline graph as a DOT file.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	store       *store.StageStore
	stages      map[string]struct{}
	elapsed     map[string]time.Duration
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	st := store.NewStageStore()

	return &DOTDrawer{
		dotFileName: dotFileName,
		store:       st,
		graph:       graph.NewWithStore[string, string](graph.StringHash, st, graph.Directed()),
		stages:      make(map[string]struct{}),
		elapsed:     make(map[string]time.Duration),
	}
}

// AddStage adds a stage to the pipeline graph.
func (d *DOTDrawer) AddStage(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	d.stages[name] = struct{}{}

	return nil
}

// AddLink adds a link between parent and child stages.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// SetElapsed attaches the stage duration as a label of the stage vertex.
func (d *DOTDrawer) SetElapsed(name string, elapsed time.Duration) error {
	if _, ok := d.stages[name]; !ok {
		return errors.Errorf("unknown stage %s", name)
	}

	d.elapsed[name] = elapsed
	d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
		p.Attributes["xlabel"] = elapsed.String()
	})

	return nil
}

// Draw creates a DOT file with the pipeline graph.
func (d *DOTDrawer) Draw() error {
	err := d.colourStages()
	if err != nil {
		return err
	}

	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to render dot file %s", d.dotFileName)
	}

	return nil
}

const maxRGB = 240

// colourStages grades the stage vertices from red (slowest) to blue (fastest).
func (d *DOTDrawer) colourStages() error {
	if len(d.elapsed) == 0 {
		return nil
	}

	sorted := make([]string, 0, len(d.elapsed))
	for name := range d.elapsed {
		sorted = append(sorted, name)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return d.elapsed[sorted[i]] > d.elapsed[sorted[j]]
	})

	shift := maxRGB / len(sorted)
	for i, name := range sorted {
		stageColor, err := colors.RGB(uint8(maxRGB-i*shift), 0, uint8(i*shift)) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}
		hex := stageColor.ToHEX().String()
		d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
			p.Attributes["style"] = "filled"
			p.Attributes["fillcolor"] = hex
			p.Attributes["fontcolor"] = "white"
		})
	}

	return nil
}
