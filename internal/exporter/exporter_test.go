package exporter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"generationscli/internal/config"
	apperrors "generationscli/internal/errors"
	"generationscli/internal/infrastructure"
	"generationscli/internal/shared/testutil"
	"generationscli/pkg/contracts/domain"
)

type payload string

func (p payload) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(p))
	return int64(n), err
}

type failingPayload struct{}

func (failingPayload) WriteTo(io.Writer) (int64, error) {
	return 0, errors.New("encoder failed")
}

func TestWriteFigure(t *testing.T) {
	dir := t.TempDir()
	paths := &config.Paths{OutputDir: filepath.Join(dir, "figures", "nested")}

	path, err := NewFigureWriter(paths, nil).WriteFigure(context.Background(), "parties", "svg", payload("<svg/>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "figures", "nested", "parties.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestWriteFigure_Error(t *testing.T) {
	paths := &config.Paths{OutputDir: t.TempDir()}

	_, err := NewFigureWriter(paths, nil).WriteFigure(context.Background(), "nation", "png", failingPayload{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	assert.Contains(t, err.Error(), "encoder failed")
}

// runIDHandler remembers the run id of the last record's context
type runIDHandler struct {
	slog.Handler
	runID *string
}

func (h runIDHandler) Handle(ctx context.Context, r slog.Record) error {
	*h.runID = infrastructure.GetRunID(ctx)
	return h.Handler.Handle(ctx, r)
}

func TestWriteFigure_LogsWithRunContext(t *testing.T) {
	_, handler := testutil.NewTestLogger(t)
	var seen string
	logger := slog.New(runIDHandler{Handler: handler, runID: &seen})

	paths := &config.Paths{OutputDir: t.TempDir()}
	ctx := infrastructure.WithRunID(context.Background(), "run-42")

	path, err := NewFigureWriter(paths, logger).WriteFigure(ctx, "members", "svg", payload("<svg/>"))
	require.NoError(t, err)

	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Wrote figure")
	assert.True(t, handler.ContainsAttr("figure", "members"))
	assert.True(t, handler.ContainsAttr("path", path))
	assert.Equal(t, "run-42", seen)
}

func TestAgeRangeTable(t *testing.T) {
	out := AgeRangeTable([]domain.AgeRange{
		{Affiliation: "SPD", Members: 2, Min: 25, Max: 67},
		{Affiliation: "Die Linke", Members: 0},
	})

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)

	assert.Contains(t, out, "SPD")
	assert.Contains(t, out, "Die Linke")

	var minLine, maxLine string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "min"):
			minLine = l
		case strings.Contains(l, "max"):
			maxLine = l
		}
	}
	assert.Contains(t, minLine, "25")
	assert.Contains(t, minLine, "-")
	assert.Contains(t, maxLine, "67")
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "-", formatAge(domain.AgeRange{}, 0))
	assert.Equal(t, "42", formatAge(domain.AgeRange{Members: 1, Min: 42}, 42))
}
