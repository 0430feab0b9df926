package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/coecms/soil-column/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	startTime time.Time
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStage(model.StartStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start stage to drawer")
	}
	err = pd.AddStage(model.EndStage.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end stage to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareStage(parentStage, stage *model.StageInfo) error {
	err := pd.AddStage(stage.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parentStage.Name, stage.Name)
	if err != nil {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) PrepareSink(parentStage, stage *model.StageInfo) error {
	err := pd.AddStage(stage.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(parentStage.Name, stage.Name)
	if err != nil {
		return err
	}
	err = pd.AddLink(stage.Name, model.EndStage.Name)
	if err != nil {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) AfterStage(stage *model.StageInfo, elapsed time.Duration) error {
	return pd.SetElapsed(stage.Name, elapsed)
}

func (pd *pipelineDrawer) Finish() error {
	err := pd.SetElapsed(model.EndStage.Name, time.Since(pd.startTime))
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer draws the stage graph of the pipeline with the given drawer
// once the pipeline has finished.
func PipelineDrawer(drawer Drawer) model.PipelineOption {
	return &pipelineDrawer{drawer, time.Now()}
}
