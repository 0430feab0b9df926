package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/coecms/soil-column/pkg/pipeline/model"
)

// Stage holds the output of one pipeline stage. The value is only available
// once the pipeline has run past the stage.
type Stage[O any] struct {
	details *model.StageInfo
	value   O
	done    bool
}

// Value returns the stage output. It is the zero value until the stage has run.
func (s *Stage[O]) Value() O { return s.value }

func prepareStage[O any](p *Pipeline, parent *model.StageInfo, stage *Stage[O]) error {
	for _, opt := range p.opts {
		err := opt.PrepareStage(parent, stage.details)
		if err != nil {
			return errors.Wrap(err, "unable to prepare stage")
		}
	}

	return nil
}

// AddRootStage adds a stage without inputs. It produces the initial value the
// rest of the pipeline consumes.
func AddRootStage[O any](p *Pipeline, name string, stepFn func(ctx context.Context) (O, error)) (*Stage[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}

	stage := &Stage[O]{
		details: &model.StageInfo{
			Type: model.RootStageType,
			Name: name,
		},
	}
	err := prepareStage(p, model.StartStage, stage)
	if err != nil {
		return nil, err
	}

	p.stages = append(p.stages, &runnable{
		details: stage.details,
		fn: func(ctx context.Context) error {
			out, err := stepFn(ctx)
			if err != nil {
				return err
			}
			stage.value, stage.done = out, true

			return nil
		},
	})

	return stage, nil
}

// AddStage adds a stage consuming the output of input.
func AddStage[I any, O any](p *Pipeline, name string, input *Stage[I], stepFn func(ctx context.Context, input I) (O, error)) (*Stage[O], error) {
	if p == nil {
		return nil, ErrPipelineMustBeSet
	}
	if input == nil {
		return nil, ErrInputMustBeSet
	}

	stage := &Stage[O]{
		details: &model.StageInfo{
			Type: model.NormalStageType,
			Name: name,
		},
	}
	err := prepareStage(p, input.details, stage)
	if err != nil {
		return nil, err
	}

	p.stages = append(p.stages, &runnable{
		details: stage.details,
		fn: func(ctx context.Context) error {
			if !input.done {
				return errors.Wrap(ErrInputNotReady, input.details.Name)
			}
			out, err := stepFn(ctx, input.value)
			if err != nil {
				return err
			}
			stage.value, stage.done = out, true

			return nil
		},
	})

	return stage, nil
}

// AddSink adds a final stage consuming the output of input without producing
// a value.
func AddSink[I any](p *Pipeline, name string, input *Stage[I], sinkFn func(ctx context.Context, input I) error) error {
	if p == nil {
		return ErrPipelineMustBeSet
	}
	if input == nil {
		return ErrInputMustBeSet
	}

	details := &model.StageInfo{
		Type: model.SinkStageType,
		Name: name,
	}
	for _, opt := range p.opts {
		err := opt.PrepareSink(input.details, details)
		if err != nil {
			return errors.Wrap(err, "unable to prepare sink")
		}
	}

	p.stages = append(p.stages, &runnable{
		details: details,
		fn: func(ctx context.Context) error {
			if !input.done {
				return errors.Wrap(ErrInputNotReady, input.details.Name)
			}

			return sinkFn(ctx, input.value)
		},
	})

	return nil
}
