package pipeline

import (
	"io"
	"os"

	"generationscli/internal/cohort"
	"generationscli/internal/config"
	"generationscli/pkg/contracts/domain"
)

// RunState is shared by the steps of one run
type RunState struct {
	RunID  string
	Config *config.Config
	Paths  *config.Paths

	// Out receives the printed report
	Out io.Writer

	Dataset *domain.Dataset
	Summary *cohort.Summary
	// Figures maps figure names to the files they were written to
	Figures map[string]string

	Steps map[string]*StepState
}

// NewRunState creates the state for a run that prints to stdout
func NewRunState(runID string, cfg *config.Config, paths *config.Paths) *RunState {
	return &RunState{
		RunID:   runID,
		Config:  cfg,
		Paths:   paths,
		Out:     os.Stdout,
		Figures: make(map[string]string),
		Steps:   make(map[string]*StepState),
	}
}

// GetStep returns the state of a step, creating it if needed
func (s *RunState) GetStep(id, name string) *StepState {
	if st, ok := s.Steps[id]; ok {
		return st
	}
	st := NewStepState(id, name)
	s.Steps[id] = st
	return st
}
