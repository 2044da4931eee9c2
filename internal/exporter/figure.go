package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"generationscli/internal/config"
	apperrors "generationscli/internal/errors"
)

// FigureWriter stores rendered figures in the output directory
type FigureWriter struct {
	paths  *config.Paths
	logger *slog.Logger
}

// NewFigureWriter creates a new figure writer instance. A nil logger falls
// back to slog.Default().
func NewFigureWriter(paths *config.Paths, logger *slog.Logger) *FigureWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &FigureWriter{paths: paths, logger: logger}
}

// WriteFigure writes the rendered figure to <output dir>/<name>.<format>
// and returns the full path
func (w *FigureWriter) WriteFigure(ctx context.Context, name, format string, figure io.WriterTo) (string, error) {
	fullPath := w.paths.GetFigurePath(name, format)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", apperrors.NewStorageError("failed to create output directory", err).
			WithContext("dir", dir)
	}

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", apperrors.NewStorageError("failed to open figure file", err).
			WithContext("path", fullPath)
	}

	n, err := figure.WriteTo(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", apperrors.NewStorageError(fmt.Sprintf("failed to write figure %s", name), err).
			WithContext("path", fullPath)
	}

	w.logger.InfoContext(ctx, "Wrote figure",
		slog.String("figure", name),
		slog.String("path", fullPath),
		slog.Int64("bytes", n))

	return fullPath, nil
}
