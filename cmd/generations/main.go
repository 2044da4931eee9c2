package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"generationscli/internal/config"
	"generationscli/internal/dataloader"
	apperrors "generationscli/internal/errors"
	"generationscli/internal/infrastructure"
	"generationscli/internal/pipeline"
	"generationscli/pkg/contracts"
)

// options holds the command line flags
type options struct {
	configPath string
	dataDir    string
	outputDir  string
	format     string
	version    bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (defaults to config.yaml or configs/config.yaml)")
	fs.StringVar(&opts.dataDir, "data", "", "directory holding the input tables")
	fs.StringVar(&opts.outputDir, "out", "", "output directory for figures (defaults to figures)")
	fs.StringVar(&opts.format, "format", "", "figure format: png, svg, pdf, eps, jpg or tif")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// apply overrides configuration values with the flags that were set
func (o *options) apply(cfg *config.Config) error {
	if o.dataDir != "" {
		cfg.Inputs.DataDir = o.dataDir
	}
	if o.outputDir != "" {
		cfg.Charts.OutputDir = o.outputDir
	}
	if o.format != "" {
		cfg.Charts.Format = o.format
	}
	return cfg.Validate()
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if opts.version {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		slog.Error(failureMessage(err), "error", err)
		os.Exit(1)
	}
}

// failureMessage separates rejected inputs or configuration from failures
// while rendering and writing figures
func failureMessage(err error) string {
	if apperrors.IsFatal(err) {
		return "Input rejected"
	}
	return "Report failed"
}

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := opts.apply(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	paths, err := config.ResolvePaths(cfg, "")
	if err != nil {
		return err
	}
	if err := paths.EnsureDirectories(); err != nil {
		return err
	}

	tracing, err := infrastructure.InitializeTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	ctx = infrastructure.EnsureRunID(ctx)
	runID := infrastructure.GetRunID(ctx)

	logger.InfoContext(ctx, "Starting report",
		slog.String("version", contracts.GetVersionString()),
		slog.String("data_dir", paths.DataDir),
		slog.String("output_dir", paths.OutputDir),
		slog.String("format", cfg.Charts.Format))

	state := pipeline.NewRunState(runID, cfg, paths)
	state.Out = stdout

	runner := pipeline.NewRunner(tracing.Tracer, logger,
		pipeline.DefaultSteps(dataloader.NewLoader(logger), logger)...)
	if err := runner.Run(ctx, state); err != nil {
		return err
	}

	for name, path := range state.Figures {
		logger.InfoContext(ctx, "Figure ready", slog.String("figure", name), slog.String("path", path))
	}
	return nil
}
