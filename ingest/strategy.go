package ingest

import (
	"context"

	"github.com/mcllerena/R2X/config"
	"github.com/mcllerena/R2X/filemap"
	"github.com/mcllerena/R2X/pipeline"
	"github.com/mcllerena/R2X/resolve"
)

// Ingestable is the capability a per-source-system translator implements:
// given the populated parsed-data store, build the domain component model.
// Translators stay small strategy objects composed with a Driver; there is
// no parser base type to subclass.
type Ingestable interface {
	BuildSystem(ctx context.Context, store *Store) error
}

// Parse runs the common ingestion sequence for one source system: default
// filter-step policy, resolution, decoding, filtering, then the strategy's
// system build over the populated store.
//
// steps == nil selects the advisory defaults for cfg's input-model family;
// an explicit (even empty, non-nil) slice overrides them. Config-derived
// filter settings form the lowest option layer: caller-shared options
// override them, entry options override both.
func Parse(ctx context.Context, cfg *config.Config, fm filemap.Map, baseDir string,
	strategy Ingestable, steps []pipeline.Step, shared map[string]any) (*Result, error) {

	if steps == nil {
		steps = pipeline.DefaultSteps(cfg.Filter.InputModel)
	}

	merged := sharedFromConfig(cfg)
	for key, value := range shared {
		merged[key] = value
	}

	driver := New(
		WithWorkers(cfg.Ingest.Workers),
		WithResolver(resolve.New(cfg.Ingest.SearchFolders)),
	)

	result, err := driver.Ingest(ctx, fm, baseDir, steps, merged)
	if err != nil {
		return result, err
	}

	if strategy != nil {
		if err := strategy.BuildSystem(ctx, result.Store); err != nil {
			return result, err
		}
	}
	return result, nil
}

// sharedFromConfig lifts the filter configuration into the shared option
// layer the decoders and steps read.
func sharedFromConfig(cfg *config.Config) map[string]any {
	shared := make(map[string]any)
	if cfg.Filter.SolveYear != 0 {
		shared["solve_year"] = cfg.Filter.SolveYear
	}
	if cfg.Filter.YearColumn != "" {
		shared["year_column"] = cfg.Filter.YearColumn
	}
	if len(cfg.Filter.ColumnMapping) > 0 {
		shared["column_mapping"] = cfg.Filter.ColumnMapping
	}
	return shared
}
