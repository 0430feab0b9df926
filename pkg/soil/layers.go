package soil

import (
	"context"
	"log"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/coecms/soil-column/internal/ncio"
)

// Layers holds the materialized topsoil and subsoil grids of one run, scaled
// to physical units, plus the axes they share and the provenance attributes
// of the source dataset.
type Layers struct {
	Top, Sub    map[Variable]*sparse.DenseArray
	Axes        []ncio.Axis
	SourceAttrs map[string]string
}

// provenanceAttrs are the source dataset attributes carried into the output.
var provenanceAttrs = []string{"creator", "institution", "processing", "history"}

// LoadLayers opens both layers of every variable, checks that all grids are
// co-registered, materializes them and scales the values to physical units.
func LoadLayers(ctx context.Context, store *ncio.Store, vars []Variable) (*Layers, error) {
	prefixes := []string{TopPrefix, SubPrefix}

	handles := make([]*ncio.Handle, 0, len(prefixes)*len(vars))
	for _, prefix := range prefixes {
		for _, v := range vars {
			h, err := store.Open(FileName(prefix, v), VarName(prefix, v))
			if err != nil {
				return nil, err
			}
			handles = append(handles, h)
		}
	}

	if err := ncio.Aligned(handles...); err != nil {
		return nil, err
	}

	log.Println("load data in memory")
	grids, err := ncio.MaterializeAll(ctx, handles)
	if err != nil {
		return nil, err
	}

	layers := &Layers{
		Top:  make(map[Variable]*sparse.DenseArray, len(vars)),
		Sub:  make(map[Variable]*sparse.DenseArray, len(vars)),
		Axes: handles[0].Axes(),
	}
	i := 0
	for _, prefix := range prefixes {
		for _, v := range vars {
			g := grids[i]
			i++
			floats.Scale(v.LoadScale(), g.Data.Elements)
			if prefix == TopPrefix {
				layers.Top[v] = g.Data
			} else {
				layers.Sub[v] = g.Data
			}
		}
	}

	layers.SourceAttrs, err = store.GlobalAttrs(FileName(TopPrefix, vars[0]), provenanceAttrs...)
	if err != nil {
		return nil, err
	}

	return layers, nil
}

func textureOf(grids map[Variable]*sparse.DenseArray) TextureTriple {
	return TextureTriple{
		Sand: grids[Sand],
		Silt: grids[Silt],
		Clay: grids[Clay],
	}
}
