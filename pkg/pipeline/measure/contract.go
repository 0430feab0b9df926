package measure

import "time"

// Measure collects the metrics of every stage of a pipeline run.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric records the timings of a single stage.
type Metric interface {
	AddDuration(elapsed time.Duration)
	Duration() time.Duration
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
