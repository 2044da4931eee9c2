package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"generationscli/internal/config"
	"generationscli/internal/dataloader"
	apperrors "generationscli/internal/errors"
	"generationscli/internal/shared/testutil"
)

type recordingStep struct {
	id    string
	calls *[]string
	err   error
}

func (s *recordingStep) ID() string   { return s.id }
func (s *recordingStep) Name() string { return "step " + s.id }

func (s *recordingStep) Execute(context.Context, *RunState) error {
	*s.calls = append(*s.calls, s.id)
	return s.err
}

func TestStepState_Lifecycle(t *testing.T) {
	st := NewStepState("load", "Load inputs")
	assert.Equal(t, StepStatusPending, st.GetStatus())
	assert.Zero(t, st.Duration())

	st.Start()
	assert.Equal(t, StepStatusActive, st.GetStatus())
	require.NotNil(t, st.StartTime)

	st.Complete()
	assert.Equal(t, StepStatusCompleted, st.GetStatus())
	require.NotNil(t, st.EndTime)
	assert.GreaterOrEqual(t, st.Duration(), time.Duration(0))

	failed := NewStepState("render", "Render")
	failed.Start()
	failed.Fail(errors.New("boom"))
	assert.Equal(t, StepStatusFailed, failed.GetStatus())
	assert.EqualError(t, failed.Error, "boom")

	st.SetMetadata("records", 3)
	v, ok := st.GetMetadata("records")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestRunner_RunsInOrder(t *testing.T) {
	var calls []string
	logger, handler := testutil.NewTestLogger(t)

	r := NewRunner(nil, logger,
		&recordingStep{id: "a", calls: &calls},
		&recordingStep{id: "b", calls: &calls},
		&recordingStep{id: "c", calls: &calls},
	)
	state := NewRunState("run-1", config.Default(), &config.Paths{})

	require.NoError(t, r.Run(context.Background(), state))
	assert.Equal(t, []string{"a", "b", "c"}, calls)
	for _, id := range calls {
		assert.Equal(t, StepStatusCompleted, state.Steps[id].GetStatus())
	}
	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Report run completed")
	testutil.AssertNoErrors(t, handler)
}

func TestRunner_StopsOnFailure(t *testing.T) {
	var calls []string
	cause := apperrors.NewLoadError("input file not found", nil)

	r := NewRunner(nil, nil,
		&recordingStep{id: "a", calls: &calls},
		&recordingStep{id: "b", calls: &calls, err: cause},
		&recordingStep{id: "c", calls: &calls},
	)
	state := NewRunState("run-2", config.Default(), &config.Paths{})

	err := r.Run(context.Background(), state)
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "b", stepErr.StepID)
	assert.ErrorIs(t, err, cause)
	assert.True(t, apperrors.IsFatal(err))

	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Equal(t, StepStatusFailed, state.Steps["b"].GetStatus())
	assert.Equal(t, StepStatusPending, state.Steps["c"].GetStatus())
}

func TestRunner_Spans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	var calls []string
	r := NewRunner(tp.Tracer("test"), nil,
		&recordingStep{id: "load", calls: &calls},
		&recordingStep{id: "aggregate", calls: &calls},
	)
	require.NoError(t, r.Run(context.Background(), NewRunState("run-3", config.Default(), &config.Paths{})))

	var names []string
	for _, s := range recorder.Ended() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"load", "aggregate", "report.run"}, names)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []string
	r := NewRunner(nil, nil,
		&recordingStep{id: "a", calls: &calls},
		&recordingStep{id: "b", calls: &calls},
	)
	state := NewRunState("run-4", config.Default(), &config.Paths{})
	err := r.Run(ctx, state)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)

	assert.Equal(t, StepStatusFailed, state.Steps["a"].GetStatus())
	assert.ErrorIs(t, state.Steps["a"].Error, context.Canceled)
	assert.Equal(t, StepStatusPending, state.Steps["b"].GetStatus())
}

func writeInputs(t *testing.T, dir string) {
	t.Helper()
	testutil.WriteFile(t, dir, config.DefaultLegislatureFile, testutil.LegislatureCSV([]testutil.Member{
		{Affiliation: "CDU/CSU", Birth: "1960"},
		{Affiliation: "AfD", Birth: "1975"},
		{Affiliation: "SPD", Birth: "1990"},
		{Affiliation: "SPD", Birth: "1955"},
		{Affiliation: "Bündnis 90/Die Grünen", Birth: "1995"},
		{Affiliation: "Die Linke", Birth: "1985"},
		{Affiliation: "fraktionslos", Birth: "1950"},
	}))
	testutil.WriteFile(t, dir, config.DefaultExecutiveFile, testutil.ExecutiveCSV([]testutil.Member{
		{Affiliation: "CDU", Birth: "1955"},
		{Affiliation: "SPD", Birth: "1970"},
	}))
	testutil.WriteFile(t, dir, config.DefaultPopulationFile, testutil.PopulationCSV(
		145, config.DefaultStratumRowA, config.DefaultStratumRowB, config.DefaultFirstAgeColumn,
		testutil.Uniform(config.DefaultPopulationAges, 400), testutil.Uniform(config.DefaultPopulationAges, 390)))
}

func TestDefaultSteps_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir)

	cfg := config.Default()
	cfg.Charts.Format = "svg"
	cfg.Charts.OutputDir = "out"
	paths, err := config.ResolvePaths(cfg, dir)
	require.NoError(t, err)

	logger, handler := testutil.NewTestLogger(t)
	loader := dataloader.NewLoader(logger)
	loader.Now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	var out bytes.Buffer
	state := NewRunState("run-e2e", cfg, paths)
	state.Out = &out

	r := NewRunner(nil, logger, DefaultSteps(loader, logger)...)
	require.Len(t, r.Steps(), 4)
	require.NoError(t, r.Run(context.Background(), state))

	require.NotNil(t, state.Summary)
	assert.Len(t, state.Summary.Groups(), 7)

	for _, name := range []string{FigureMembers, FigureParties, FigureNation} {
		path := state.Figures[name]
		assert.Equal(t, filepath.Join(dir, "out", name+".svg"), path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	assert.Contains(t, out.String(), "jüngsten und ältesten")
	assert.Contains(t, out.String(), "fraktionslos")

	v, ok := state.Steps[StepIDLoad].GetMetadata("legislature")
	require.True(t, ok)
	assert.Equal(t, 7, v)

	testutil.AssertNoErrors(t, handler)
}

func TestDefaultSteps_MissingInputFails(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	paths, err := config.ResolvePaths(cfg, dir)
	require.NoError(t, err)

	r := NewRunner(nil, nil, DefaultSteps(dataloader.NewLoader(nil), nil)...)
	err = r.Run(context.Background(), NewRunState("run-missing", cfg, paths))
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepIDLoad, stepErr.StepID)
	assert.True(t, apperrors.IsFatal(err))
}
