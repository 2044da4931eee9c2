package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Tracing    TracingConfig    `yaml:"tracing" envconfig:"TRACING"`
	Inputs     InputsConfig     `yaml:"inputs" envconfig:"INPUTS"`
	Population PopulationConfig `yaml:"population" envconfig:"POPULATION"`
	Cohorts    CohortConfig     `yaml:"cohorts" envconfig:"COHORTS"`
	Charts     ChartsConfig     `yaml:"charts" envconfig:"CHARTS"`
	Parties    []PartyConfig    `yaml:"parties" ignored:"true" validate:"required,min=1,dive"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// TracingConfig contains span export configuration
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" envconfig:"ENABLED"`
	Exporter    string  `yaml:"exporter" envconfig:"EXPORTER" validate:"oneof=stdout file none"`
	FilePath    string  `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_if=Exporter file"`
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
}

// InputsConfig names the three input tables
type InputsConfig struct {
	DataDir     string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	Legislature string `yaml:"legislature" envconfig:"LEGISLATURE" validate:"required"`
	Executive   string `yaml:"executive" envconfig:"EXECUTIVE" validate:"required"`
	Population  string `yaml:"population" envconfig:"POPULATION" validate:"required"`
}

// PopulationConfig describes the layout of the population projection table
type PopulationConfig struct {
	Delimiter      string `yaml:"delimiter" envconfig:"DELIMITER" validate:"required,len=1"`
	StratumRows    []int  `yaml:"stratum_rows" envconfig:"STRATUM_ROWS" validate:"len=2,dive,gte=0"`
	FirstAgeColumn int    `yaml:"first_age_column" envconfig:"FIRST_AGE_COLUMN" validate:"gte=0"`
	Ages           int    `yaml:"ages" envconfig:"AGES" validate:"gt=0"`
}

// CohortConfig contains the age binning
type CohortConfig struct {
	BinWidth int `yaml:"bin_width" envconfig:"BIN_WIDTH" validate:"gt=0"`
	MaxAge   int `yaml:"max_age" envconfig:"MAX_AGE" validate:"gtfield=BinWidth"`
}

// ChartsConfig contains figure output and layout settings. Sizes are in inches.
type ChartsConfig struct {
	OutputDir     string  `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	Format        string  `yaml:"format" envconfig:"FORMAT" validate:"oneof=png svg pdf eps jpg tif"`
	FigureWidth   float64 `yaml:"figure_width" envconfig:"FIGURE_WIDTH" validate:"gt=0"`
	FigureHeight  float64 `yaml:"figure_height" envconfig:"FIGURE_HEIGHT" validate:"gt=0"`
	MembersWidth  float64 `yaml:"members_width" envconfig:"MEMBERS_WIDTH" validate:"gt=0"`
	MembersHeight float64 `yaml:"members_height" envconfig:"MEMBERS_HEIGHT" validate:"gt=0"`
	XLimit        float64 `yaml:"x_limit" envconfig:"X_LIMIT" validate:"gt=0"`
	ShowReference bool    `yaml:"show_reference" envconfig:"SHOW_REFERENCE"`
	// ExecutiveColor is derived from the legislature color when empty
	ExecutiveColor string `yaml:"executive_color" envconfig:"EXECUTIVE_COLOR" validate:"omitempty,hexcolor"`
}

// PartyConfig is one affiliation of the legislature with its chart color
type PartyConfig struct {
	Name  string `yaml:"name" validate:"required"`
	Color string `yaml:"color" validate:"required,hexcolor"`
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing order of precedence. An empty path
// searches the usual locations.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getConfigFilePath()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints and the cross-field rules the tags
// cannot express
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return err
	}

	if c.Population.StratumRows[0] == c.Population.StratumRows[1] {
		return fmt.Errorf("population stratum rows must differ, got %d twice", c.Population.StratumRows[0])
	}

	seen := make(map[string]struct{}, len(c.Parties))
	for _, p := range c.Parties {
		key := strings.TrimSpace(p.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate party %q", p.Name)
		}
		if key == LegislatureGroup {
			return fmt.Errorf("party name %q is reserved for the whole legislature", p.Name)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// PartyNames returns the configured affiliations in chart order
func (c *Config) PartyNames() []string {
	names := make([]string, len(c.Parties))
	for i, p := range c.Parties {
		names[i] = p.Name
	}
	return names
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// DefaultParties returns the parliamentary groups of the 21st Bundestag
// with their customary colors
func DefaultParties() []PartyConfig {
	return []PartyConfig{
		{Name: "CDU/CSU", Color: "#151518"},
		{Name: "AfD", Color: "#00A2DE"},
		{Name: "SPD", Color: "#e3000f"},
		{Name: "Bündnis 90/Die Grünen", Color: "#409A3C"},
		{Name: "Die Linke", Color: "#be3075"},
		{Name: "fraktionslos", Color: "#949494"},
	}
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "both",
			FilePath: "logs/generations.log",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			Exporter:    "file",
			FilePath:    "logs/traces.json",
			SampleRatio: 1.0,
		},
		Inputs: InputsConfig{
			DataDir:     DefaultDataDir,
			Legislature: DefaultLegislatureFile,
			Executive:   DefaultExecutiveFile,
			Population:  DefaultPopulationFile,
		},
		Population: PopulationConfig{
			Delimiter:      DefaultPopulationDelimiter,
			StratumRows:    []int{DefaultStratumRowA, DefaultStratumRowB},
			FirstAgeColumn: DefaultFirstAgeColumn,
			Ages:           DefaultPopulationAges,
		},
		Cohorts: CohortConfig{
			BinWidth: DefaultBinWidth,
			MaxAge:   DefaultMaxAge,
		},
		Charts: ChartsConfig{
			OutputDir:     DefaultOutputDir,
			Format:        DefaultFigureFormat,
			FigureWidth:   19,
			FigureHeight:  3,
			MembersWidth:  12,
			MembersHeight: 4,
			XLimit:        DefaultXLimit,
			ShowReference: true,
		},
		Parties: DefaultParties(),
	}
}
