package soil

import (
	"context"
	"log"
	"time"

	"github.com/ctessum/sparse"

	"github.com/coecms/soil-column/internal/config"
	"github.com/coecms/soil-column/internal/ncio"
	"github.com/coecms/soil-column/pkg/pipeline"
	"github.com/coecms/soil-column/pkg/pipeline/model"
)

// Stage names of the soil-composition pipeline.
const (
	StageLoad      = "load layers"
	StageGapFill   = "fill texture gaps"
	StageComposite = "composite column"
	StageNormalize = "normalize fill values"
	StageWrite     = "write dataset"
)

// Run executes the whole soil-composition pipeline: load both layers, repair
// the subsoil texture from the topsoil, weight the column, replace missing
// cells with the fill value and write the dataset next to the inputs.
func Run(ctx context.Context, cfg *config.Config, fillValue float64, opts ...model.PipelineOption) error {
	vars, err := ParseVariables(cfg.SoilVars)
	if err != nil {
		return err
	}
	store := ncio.NewStore(cfg.Path)

	pipe, err := pipeline.New(ctx, opts...)
	if err != nil {
		return err
	}

	layers, err := pipeline.AddRootStage(pipe, StageLoad, func(ctx context.Context) (*Layers, error) {
		return LoadLayers(ctx, store, vars)
	})
	if err != nil {
		return err
	}

	filled, err := pipeline.AddStage(pipe, StageGapFill, layers, func(ctx context.Context, l *Layers) (*Layers, error) {
		log.Println("fill missing pixels")
		texture := FillTexture(textureOf(l.Top), textureOf(l.Sub))

		sub := make(map[Variable]*sparse.DenseArray, len(l.Sub))
		for v, g := range l.Sub {
			sub[v] = g
		}
		sub[Sand] = texture.Sand
		sub[Silt] = texture.Silt
		sub[Clay] = texture.Clay

		return &Layers{Top: l.Top, Sub: sub, Axes: l.Axes, SourceAttrs: l.SourceAttrs}, nil
	})
	if err != nil {
		return err
	}

	composed, err := pipeline.AddStage(pipe, StageComposite, filled, func(ctx context.Context, l *Layers) (*Dataset, error) {
		log.Println("calculate total column")
		grids := make(map[Variable]*sparse.DenseArray, len(Variables))
		for _, v := range Variables {
			grids[v] = CompositeColumn(l.Top[v], l.Sub[v])
		}

		return &Dataset{Grids: grids, Axes: l.Axes, SourceAttrs: l.SourceAttrs}, nil
	})
	if err != nil {
		return err
	}

	normalized, err := pipeline.AddStage(pipe, StageNormalize, composed, func(ctx context.Context, d *Dataset) (*Dataset, error) {
		log.Println("fill missing values")
		grids := make(map[Variable]*sparse.DenseArray, len(d.Grids))
		for v, g := range d.Grids {
			grids[v] = FillSentinel(g, fillValue)
		}

		return &Dataset{Grids: grids, Axes: d.Axes, SourceAttrs: d.SourceAttrs, FillValue: fillValue}, nil
	})
	if err != nil {
		return err
	}

	err = pipeline.AddSink(pipe, StageWrite, normalized, func(ctx context.Context, d *Dataset) error {
		log.Println("write to file")
		vars := make([]ncio.VarDef, len(Variables))
		for i, v := range Variables {
			vars[i] = ncio.VarDef{
				Name:  string(v),
				Data:  d.Grids[v],
				Attrs: VariableAttrs(v, d.FillValue),
			}
		}

		return store.WriteDataset(OutputFileName, d.Axes, vars, GlobalAttrs(d.SourceAttrs, time.Now()))
	})
	if err != nil {
		return err
	}

	return pipe.Run()
}
