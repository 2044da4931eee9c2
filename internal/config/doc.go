// Package config provides configuration loading and path resolution for the
// generations report.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. A YAML file (config.yaml, configs/config.yaml, or the -config flag)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern GEN_<SECTION>_<FIELD>:
//
//	GEN_LOGGING_LEVEL=debug
//	GEN_INPUTS_DATA_DIR=./data
//	GEN_POPULATION_STRATUM_ROWS=142,143
//	GEN_COHORTS_BIN_WIDTH=15
//	GEN_CHARTS_FORMAT=svg
//
// Parties and their colors can only be set from the YAML file.
//
// # Population Layout
//
// The projection table is read positionally. The two stratum rows and the
// first age column are named settings instead of literals in the loader:
//
//	population:
//	  delimiter: ";"
//	  stratum_rows: [142, 143]
//	  first_age_column: 4
//	  ages: 100
package config
