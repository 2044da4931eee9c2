package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoad tests the Load function with various scenarios
func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults with no file and no env vars",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "both", cfg.Logging.Output)
				assert.False(t, cfg.Tracing.Enabled)

				assert.Equal(t, DefaultLegislatureFile, cfg.Inputs.Legislature)
				assert.Equal(t, DefaultExecutiveFile, cfg.Inputs.Executive)
				assert.Equal(t, DefaultPopulationFile, cfg.Inputs.Population)

				assert.Equal(t, ";", cfg.Population.Delimiter)
				assert.Equal(t, []int{142, 143}, cfg.Population.StratumRows)
				assert.Equal(t, 4, cfg.Population.FirstAgeColumn)
				assert.Equal(t, 100, cfg.Population.Ages)

				assert.Equal(t, 15, cfg.Cohorts.BinWidth)
				assert.Equal(t, 100, cfg.Cohorts.MaxAge)

				assert.Equal(t, "png", cfg.Charts.Format)
				assert.Equal(t, 65.0, cfg.Charts.XLimit)
				assert.True(t, cfg.Charts.ShowReference)

				assert.Len(t, cfg.Parties, 6)
				assert.Equal(t, "CDU/CSU", cfg.Parties[0].Name)
				assert.Equal(t, "fraktionslos", cfg.Parties[5].Name)
			},
		},
		{
			name: "environment overrides",
			env: map[string]string{
				"GEN_LOGGING_LEVEL":           "debug",
				"GEN_COHORTS_BIN_WIDTH":       "10",
				"GEN_POPULATION_STRATUM_ROWS": "10,11",
				"GEN_CHARTS_FORMAT":           "svg",
				"GEN_INPUTS_DATA_DIR":         "/srv/data",
			},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, 10, cfg.Cohorts.BinWidth)
				assert.Equal(t, []int{10, 11}, cfg.Population.StratumRows)
				assert.Equal(t, "svg", cfg.Charts.Format)
				assert.Equal(t, "/srv/data", cfg.Inputs.DataDir)
				// untouched sections keep their defaults
				assert.Equal(t, 100, cfg.Cohorts.MaxAge)
			},
		},
		{
			name: "yaml file overlays defaults",
			file: `
cohorts:
  bin_width: 20
charts:
  format: pdf
parties:
  - name: SPD
    color: "#e3000f"
  - name: AfD
    color: "#00A2DE"
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 20, cfg.Cohorts.BinWidth)
				assert.Equal(t, 100, cfg.Cohorts.MaxAge)
				assert.Equal(t, "pdf", cfg.Charts.Format)
				assert.Equal(t, []string{"SPD", "AfD"}, cfg.PartyNames())
			},
		},
		{
			name: "env takes precedence over file",
			file: "cohorts:\n  bin_width: 20\n",
			env:  map[string]string{"GEN_COHORTS_BIN_WIDTH": "5"},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5, cfg.Cohorts.BinWidth)
			},
		},
		{
			name:    "invalid log level",
			env:     map[string]string{"GEN_LOGGING_LEVEL": "verbose"},
			wantErr: true,
		},
		{
			name:    "invalid figure format",
			env:     map[string]string{"GEN_CHARTS_FORMAT": "gif"},
			wantErr: true,
		},
		{
			name:    "zero bin width",
			env:     map[string]string{"GEN_COHORTS_BIN_WIDTH": "0"},
			wantErr: true,
		},
		{
			name:    "malformed integer",
			env:     map[string]string{"GEN_POPULATION_AGES": "hundred"},
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			file:    "cohorts: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			path := ""
			if tt.file != "" {
				path = writeConfigFile(t, tt.file)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "default configuration is valid",
			modify: func(*Config) {},
		},
		{
			name:    "identical stratum rows",
			modify:  func(c *Config) { c.Population.StratumRows = []int{142, 142} },
			wantErr: "stratum rows must differ",
		},
		{
			name:    "one stratum row",
			modify:  func(c *Config) { c.Population.StratumRows = []int{142} },
			wantErr: "StratumRows",
		},
		{
			name:    "negative stratum row",
			modify:  func(c *Config) { c.Population.StratumRows = []int{-1, 143} },
			wantErr: "StratumRows",
		},
		{
			name:    "multi character delimiter",
			modify:  func(c *Config) { c.Population.Delimiter = ";;" },
			wantErr: "Delimiter",
		},
		{
			name:    "max age below bin width",
			modify:  func(c *Config) { c.Cohorts.MaxAge = 10 },
			wantErr: "MaxAge",
		},
		{
			name:    "no parties",
			modify:  func(c *Config) { c.Parties = nil },
			wantErr: "Parties",
		},
		{
			name: "duplicate party",
			modify: func(c *Config) {
				c.Parties = append(c.Parties, PartyConfig{Name: "SPD", Color: "#ffffff"})
			},
			wantErr: "duplicate party",
		},
		{
			name: "reserved party name",
			modify: func(c *Config) {
				c.Parties = append(c.Parties, PartyConfig{Name: LegislatureGroup, Color: "#ffffff"})
			},
			wantErr: "reserved",
		},
		{
			name:    "bad party color",
			modify:  func(c *Config) { c.Parties[0].Color = "black" },
			wantErr: "Color",
		},
		{
			name:    "bad executive color",
			modify:  func(c *Config) { c.Charts.ExecutiveColor = "pink" },
			wantErr: "ExecutiveColor",
		},
		{
			name:    "non-positive x limit",
			modify:  func(c *Config) { c.Charts.XLimit = 0 },
			wantErr: "XLimit",
		},
		{
			name: "file logging without path",
			modify: func(c *Config) {
				c.Logging.Output = "file"
				c.Logging.FilePath = ""
			},
			wantErr: "FilePath",
		},
		{
			name: "console logging without path",
			modify: func(c *Config) {
				c.Logging.Output = "console"
				c.Logging.FilePath = ""
			},
		},
		{
			name:    "sample ratio above one",
			modify:  func(c *Config) { c.Tracing.SampleRatio = 1.5 },
			wantErr: "SampleRatio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefault_FreshParties(t *testing.T) {
	a := Default()
	a.Parties[0].Name = "changed"

	b := Default()
	assert.Equal(t, "CDU/CSU", b.Parties[0].Name)
}
