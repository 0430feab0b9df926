// Package pipeline provides a sequential pipeline for processing data.
//
// A pipeline is built from named stages. Each stage consumes the output of the
// stage it is attached to and produces a value for the next one. Stages run
// strictly in the order they were added, one at a time, when Run is called;
// there is no concurrency between stages, so a stage can assume every earlier
// stage has fully completed.
//
// The pipeline stops on the first error and wraps it with the name of the
// failing stage. Options can observe the pipeline to draw the stage graph or
// record per-stage timings.
package pipeline
