// Package model provides the data structures shared by the pipeline package
// and its options. It defines the stage descriptions and the hooks an option
// can implement to observe the pipeline.
package model
