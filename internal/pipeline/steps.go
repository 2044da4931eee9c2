package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/plot/vg"

	"generationscli/internal/chart"
	"generationscli/internal/cohort"
	"generationscli/internal/dataloader"
	"generationscli/internal/exporter"
	"generationscli/internal/validation"
)

// Step identifiers
const (
	StepIDLoad      = "load"
	StepIDAggregate = "aggregate"
	StepIDRender    = "render"
	StepIDReport    = "report"
)

// Figure names, also used as output file names
const (
	FigureMembers = "members"
	FigureParties = "parties"
	FigureNation  = "nation"
)

// DefaultSteps returns the load, aggregate, render and report steps
func DefaultSteps(loader *dataloader.Loader, logger *slog.Logger) []Step {
	return []Step{
		NewLoadStep(loader, validation.NewFileValidator(logger)),
		&AggregateStep{logger: logger},
		&RenderStep{validator: validation.NewFileValidator(logger), logger: logger},
		&ReportStep{},
	}
}

// LoadStep reads the three inputs
type LoadStep struct {
	loader    *dataloader.Loader
	validator *validation.FileValidator
}

// NewLoadStep creates a load step
func NewLoadStep(loader *dataloader.Loader, validator *validation.FileValidator) *LoadStep {
	return &LoadStep{loader: loader, validator: validator}
}

func (s *LoadStep) ID() string   { return StepIDLoad }
func (s *LoadStep) Name() string { return "Load inputs" }

// Execute loads the dataset into the run state
func (s *LoadStep) Execute(ctx context.Context, state *RunState) error {
	if err := s.validator.ValidateInputs(state.Paths.InputFiles()...); err != nil {
		return err
	}
	ds, err := s.loader.LoadDataset(ctx, dataloader.SourcesFromConfig(state.Config, state.Paths))
	if err != nil {
		return err
	}
	state.Dataset = ds

	st := state.GetStep(s.ID(), s.Name())
	st.SetMetadata("legislature", len(ds.Legislature))
	st.SetMetadata("executive", len(ds.Executive))
	st.SetMetadata("population_ages", len(ds.Population))
	return nil
}

// AggregateStep computes every histogram once
type AggregateStep struct {
	logger *slog.Logger
}

func (s *AggregateStep) ID() string   { return StepIDAggregate }
func (s *AggregateStep) Name() string { return "Aggregate cohorts" }

// Execute stores the cohort summary in the run state
func (s *AggregateStep) Execute(_ context.Context, state *RunState) error {
	if state.Dataset == nil {
		return fmt.Errorf("no dataset loaded")
	}
	binning := cohort.Binning{
		Width:  state.Config.Cohorts.BinWidth,
		MaxAge: state.Config.Cohorts.MaxAge,
	}
	summary, err := cohort.Aggregate(state.Dataset, binning, state.Config.PartyNames(), s.logger)
	if err != nil {
		return err
	}
	state.Summary = summary
	return nil
}

// RenderStep draws the three figures and writes them to the output directory
type RenderStep struct {
	validator *validation.FileValidator
	logger    *slog.Logger
}

func (s *RenderStep) ID() string   { return StepIDRender }
func (s *RenderStep) Name() string { return "Render figures" }

// Execute renders the members, parties and nation figures
func (s *RenderStep) Execute(ctx context.Context, state *RunState) error {
	if state.Summary == nil {
		return fmt.Errorf("no cohort summary")
	}
	if err := s.validator.ValidateOutputDirectory(state.Paths.OutputDir); err != nil {
		return err
	}
	charts := state.Config.Charts
	layout := chart.LayoutFromConfig(charts)
	writer := exporter.NewFigureWriter(state.Paths, s.logger)

	partyPalette, err := chart.NewPalette(state.Config.Parties)
	if err != nil {
		return err
	}
	members, err := chart.MembersFigure(state.Dataset.Legislature, state.Config.PartyNames(),
		partyPalette, state.Summary.Edges)
	if err != nil {
		return err
	}

	legislaturePalette, err := chart.PartiesPalette(state.Config.Parties)
	if err != nil {
		return err
	}
	parties, err := chart.PartiesFigure(state.Summary, legislaturePalette, layout)
	if err != nil {
		return err
	}

	nationPalette, err := chart.NationPalette(charts.ExecutiveColor)
	if err != nil {
		return err
	}
	nation, err := chart.NationFigure(state.Summary, nationPalette, layout)
	if err != nil {
		return err
	}

	figures := []struct {
		name string
		fig  *chart.Figure
		w, h float64
	}{
		{FigureMembers, members, charts.MembersWidth, charts.MembersHeight},
		{FigureParties, parties, charts.FigureWidth, charts.FigureHeight},
		{FigureNation, nation, charts.FigureWidth, charts.FigureHeight},
	}

	for _, f := range figures {
		if err := ctx.Err(); err != nil {
			return err
		}
		canvas, err := f.fig.Render(vg.Length(f.w)*vg.Inch, vg.Length(f.h)*vg.Inch, charts.Format)
		if err != nil {
			return err
		}
		path, err := writer.WriteFigure(ctx, f.name, charts.Format, canvas)
		if err != nil {
			return err
		}
		state.Figures[f.name] = path
	}

	state.GetStep(s.ID(), s.Name()).SetMetadata("figures", len(figures))
	return nil
}

// ReportStep prints the youngest and oldest member of every party
type ReportStep struct{}

func (s *ReportStep) ID() string   { return StepIDReport }
func (s *ReportStep) Name() string { return "Print age ranges" }

// Execute writes the age range table to the run output
func (s *ReportStep) Execute(_ context.Context, state *RunState) error {
	if state.Dataset == nil {
		return fmt.Errorf("no dataset loaded")
	}
	out := state.Out
	if out == nil {
		out = io.Discard
	}

	ranges := cohort.AgeRanges(state.Dataset.Legislature, state.Config.PartyNames())
	if _, err := fmt.Fprintf(out, "\n\n%s\n%s\n", exporter.AgeRangeHeading, exporter.AgeRangeTable(ranges)); err != nil {
		return err
	}
	return nil
}
