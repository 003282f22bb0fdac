// Package config holds the process-wide R2X configuration.
//
// Configuration layers, lowest to highest precedence: built-in defaults,
// an optional r2x.toml file, then R2X_* environment variables.
package config

// Config represents the core R2X configuration
type Config struct {
	Ingest IngestConfig `mapstructure:"ingest"`
	Filter FilterConfig `mapstructure:"filter"`
}

// IngestConfig configures file resolution and the ingestion driver
type IngestConfig struct {
	// SearchFolders is the ordered list of candidate subdirectories consulted
	// when resolving a logical filename inside a run folder. The run folder
	// itself is represented by ".". Order is significant: on ambiguous
	// matches the first candidate in this list wins.
	SearchFolders []string `mapstructure:"search_folders"`

	// Workers is the ingestion fan-out width. 1 means sequential.
	Workers int `mapstructure:"workers"`
}

// FilterConfig configures the default filter-step policy
type FilterConfig struct {
	// InputModel is the input-model family tag (e.g. "reeds-US"). It selects
	// the advisory default filter steps; explicit caller steps always win.
	InputModel string `mapstructure:"input_model"`

	// SolveYear is the target year for the year filter step. 0 disables it.
	SolveYear int `mapstructure:"solve_year"`

	// YearColumn is the column the year filter matches against
	YearColumn string `mapstructure:"year_column"`

	// ColumnMapping is the default rename table applied by the rename step
	ColumnMapping map[string]string `mapstructure:"column_mapping"`
}
