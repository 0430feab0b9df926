package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/coecms/soil-column/pkg/pipeline/model"
)

// Pipeline is a pipeline of sequential stages.
type Pipeline struct {
	ctx    context.Context
	opts   []model.PipelineOption
	stages []*runnable
}

type runnable struct {
	details *model.StageInfo
	fn      func(ctx context.Context) error
}

// New creates a new pipeline.
func New(ctx context.Context, opts ...model.PipelineOption) (*Pipeline, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	pipe := &Pipeline{
		ctx:  ctx,
		opts: opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	return pipe, nil
}

// Run executes every stage in the order it was added and waits for it to
// finish before starting the next one. The first error aborts the run.
func (p *Pipeline) Run() error {
	for _, st := range p.stages {
		if err := p.ctx.Err(); err != nil {
			return errors.Wrap(err, st.details.Name)
		}

		start := time.Now()
		if err := st.fn(p.ctx); err != nil {
			return errors.Wrap(err, st.details.Name)
		}
		elapsed := time.Since(start)

		for _, opt := range p.opts {
			err := opt.AfterStage(st.details, elapsed)
			if err != nil {
				return errors.Wrap(err, "unable to run after stage function")
			}
		}
	}

	return p.finishRun()
}

func (p *Pipeline) finishRun() error {
	for _, opt := range p.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return nil
}
