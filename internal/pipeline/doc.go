// Package pipeline runs a report as a fixed sequence of steps.
//
// The default sequence is load, aggregate, render and report. Each step
// reads what earlier steps left in the shared RunState and adds its own
// results. Steps run strictly one after another; the first failure stops
// the run and is returned wrapped in a StepError naming the step.
//
// Every step is traced as its own span and logs its start and finish with
// the elapsed time.
package pipeline
