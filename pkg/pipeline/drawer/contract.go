package drawer

import (
	"time"
)

// Drawer is an interface that defines the methods for drawing a pipeline.
type Drawer interface {
	// AddStage adds a stage to the pipeline drawer.
	AddStage(stageName string) error
	// AddLink adds a link between parent and child stages.
	AddLink(parentStageName, childStageName string) error
	// SetElapsed records how long the stage ran for.
	SetElapsed(stageName string, elapsed time.Duration) error
	// Draw creates a file with the pipeline graph.
	Draw() error
}
