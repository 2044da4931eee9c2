package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains every file system location used by a run.
// Relative configuration values are resolved against BaseDir.
type Paths struct {
	BaseDir   string
	DataDir   string
	OutputDir string
	LogsDir   string

	LegislatureFile string
	ExecutiveFile   string
	PopulationFile  string
}

// ResolvePaths resolves the configured inputs and output directory against
// baseDir. An empty baseDir means the current working directory.
func ResolvePaths(cfg *Config, baseDir string) (*Paths, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = wd
	}

	dataDir := resolve(baseDir, cfg.Inputs.DataDir)

	paths := &Paths{
		BaseDir:         baseDir,
		DataDir:         dataDir,
		OutputDir:       resolve(baseDir, cfg.Charts.OutputDir),
		LogsDir:         resolve(baseDir, DefaultLogsDir),
		LegislatureFile: resolve(dataDir, cfg.Inputs.Legislature),
		ExecutiveFile:   resolve(dataDir, cfg.Inputs.Executive),
		PopulationFile:  resolve(dataDir, cfg.Inputs.Population),
	}

	slog.Debug("Resolved paths",
		slog.String("base_dir", paths.BaseDir),
		slog.String("data_dir", paths.DataDir),
		slog.String("output_dir", paths.OutputDir))

	return paths, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// EnsureDirectories creates the output directory if it doesn't exist
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %v", p.OutputDir, err)
	}
	slog.Debug("Ensured directory exists", slog.String("directory", p.OutputDir))
	return nil
}

// InputFiles returns the legislature, executive and population files
func (p *Paths) InputFiles() []string {
	return []string{p.LegislatureFile, p.ExecutiveFile, p.PopulationFile}
}

// GetFigurePath returns the output path of a figure in the given format
func (p *Paths) GetFigurePath(name, format string) string {
	return filepath.Join(p.OutputDir, name+"."+format)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
