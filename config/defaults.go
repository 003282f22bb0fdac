package config

import "github.com/spf13/viper"

// DefaultSearchFolders mirrors the conventional layout of simulation run
// folders: model outputs first, then the case inputs, then the run folder
// itself as a last resort.
var DefaultSearchFolders = []string{
	"outputs",
	"inputs_case",
	"outputs_perturb",
	"inputs_case/supplycurve_metadata",
	".",
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("ingest.search_folders", DefaultSearchFolders)
	v.SetDefault("ingest.workers", 1)

	v.SetDefault("filter.input_model", "")
	v.SetDefault("filter.solve_year", 0)
	v.SetDefault("filter.year_column", "year")
	v.SetDefault("filter.column_mapping", map[string]string{})
}
