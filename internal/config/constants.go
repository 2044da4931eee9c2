package config

// Application constants
const (
	AppName = "generations"

	// EnvPrefix namespaces every environment override, e.g. GEN_COHORTS_BIN_WIDTH
	EnvPrefix = "GEN"

	// Input files, relative to the data directory
	DefaultLegislatureFile = "members_party_DOB.csv"
	DefaultExecutiveFile   = "bundesregierung.csv"
	DefaultPopulationFile  = "15_bevoelkerungsvorausberechnung_daten.csv"

	// Source of the population projection; the local copy is used instead
	PopulationSourceURL = "https://service.destatis.de/bevoelkerungspyramide/data/15_bevoelkerungsvorausberechnung_daten.csv"

	// Directories, relative to the working directory
	DefaultDataDir   = "."
	DefaultOutputDir = "figures"
	DefaultLogsDir   = "logs"

	// Population projection layout. Row offsets count data rows after the
	// header; the two rows hold the two strata (male, female) of one year.
	DefaultPopulationDelimiter = ";"
	DefaultStratumRowA         = 142
	DefaultStratumRowB         = 143
	DefaultFirstAgeColumn      = 4
	DefaultPopulationAges      = 100

	// Cohorts: 15 years is roughly one generation
	DefaultBinWidth = 15
	DefaultMaxAge   = 100

	// Charts
	DefaultFigureFormat = "png"
	DefaultXLimit       = 65.0

	LegislatureGroup = "Bundestag"
	NationGroup      = "Deutschland"
	ExecutiveGroup   = "Regierung"

	LegislatureColor = "#B7958B"
	NationColor      = "#ffcc3c"
)

// Column names of the roster inputs
const (
	LegislatureBirthColumn       = "DOB year"
	LegislatureAffiliationColumn = "Party"
	ExecutiveBirthColumn         = "DOB"
	ExecutiveAffiliationColumn   = "Partei"
)
