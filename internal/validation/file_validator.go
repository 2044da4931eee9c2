package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "generationscli/internal/errors"
)

// FileValidator checks input files and the output directory before a run
// touches them
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateInputs validates every input file and reports the first failure
func (v *FileValidator) ValidateInputs(paths ...string) error {
	for _, p := range paths {
		if err := v.ValidateInputFile(p); err != nil {
			return err
		}
	}
	v.logger.Debug("Input files validated", slog.Int("files", len(paths)))
	return nil
}

// ValidateInputFile checks that path is a readable, non-empty regular file
// that is not a spreadsheet lock file
func (v *FileValidator) ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Input file does not exist",
			slog.String("file", path))
		return apperrors.NewLoadError(fmt.Sprintf("input file %s does not exist", path), err).
			WithContext("path", path)
	}
	if err != nil {
		return apperrors.NewLoadError(fmt.Sprintf("failed to stat input %s", path), err).
			WithContext("path", path)
	}
	if info.IsDir() {
		v.logger.Error("Input path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewLoadError(fmt.Sprintf("%s is a directory, not a file", path), nil).
			WithContext("path", path)
	}
	if info.Size() == 0 {
		return apperrors.NewLoadError(fmt.Sprintf("input file %s is empty", path), nil).
			WithContext("path", path)
	}
	if strings.HasPrefix(filepath.Base(path), "~$") {
		v.logger.Warn("Refusing temporary spreadsheet lock file",
			slog.String("file", path))
		return apperrors.NewLoadError(fmt.Sprintf("%s is a temporary spreadsheet file", path), nil).
			WithContext("path", path)
	}

	// Check if file is readable by opening it
	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("Input file is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewLoadError(fmt.Sprintf("input file %s is not readable", path), err).
			WithContext("path", path)
	}
	file.Close()

	v.logger.Debug("Input file validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the output directory exists and is writable
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}
