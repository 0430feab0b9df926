package model

import "time"

type StageType string

const (
	RootStageType   StageType = "root"
	NormalStageType StageType = "stage"
	SinkStageType   StageType = "sink"
)

// StageInfo describes one stage of a pipeline.
type StageInfo struct {
	Type StageType
	Name string
}

var (
	StartStage = &StageInfo{Name: "start"}
	EndStage   = &StageInfo{Name: "end"}
)

// PipelineOption defines the interface for pipeline options.
type PipelineOption interface {
	// New initialises the pipeline option.
	New() error
	// PrepareStage runs when a stage is added to the pipeline.
	PrepareStage(parentStage, stage *StageInfo) error
	// PrepareSink runs when a sink stage is added to the pipeline.
	PrepareSink(parentStage, stage *StageInfo) error
	// AfterStage runs once the stage has executed.
	AfterStage(stage *StageInfo, elapsed time.Duration) error
	// Finish runs after the pipeline is finished.
	Finish() error
}
