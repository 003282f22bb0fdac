package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcllerena/R2X/config"
	"github.com/mcllerena/R2X/errors"
	"github.com/mcllerena/R2X/filemap"
	"github.com/mcllerena/R2X/pipeline"
	"github.com/mcllerena/R2X/table"
)

// reedsStrategy is a minimal translator: it only checks its inputs arrived.
type reedsStrategy struct {
	built   bool
	sawLoad bool
	fail    error
}

func (s *reedsStrategy) BuildSystem(_ context.Context, store *Store) error {
	if s.fail != nil {
		return s.fail
	}
	s.built = true
	s.sawLoad = store.Has("load")
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Ingest: config.IngestConfig{
			SearchFolders: config.DefaultSearchFolders,
			Workers:       1,
		},
		Filter: config.FilterConfig{
			InputModel: "reeds-US",
			SolveYear:  2035,
			YearColumn: "year",
		},
	}
}

func TestParseRunsStrategyOverPopulatedStore(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "outputs"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(base, "outputs", "load.csv"),
		[]byte("region,year,mw\np1,2030,100\np1,2035,120\n"), 0o644))

	fm := filemap.Map{"load": &filemap.Entry{Fname: "load.csv"}}
	strategy := &reedsStrategy{}

	result, err := Parse(context.Background(), testConfig(), fm, base, strategy, nil, nil)
	require.NoError(t, err)

	assert.True(t, strategy.built)
	assert.True(t, strategy.sawLoad)

	// Default steps for reeds-US include the year filter
	data, err := result.Store.Get("load")
	require.NoError(t, err)
	assert.Equal(t, 1, data.(*table.Frame).NumRows())
}

func TestParseCallerStepsOverrideDefaults(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "outputs"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(base, "outputs", "load.csv"),
		[]byte("region,year\np1,2030\np1,2035\n"), 0o644))

	fm := filemap.Map{"load": &filemap.Entry{Fname: "load.csv"}}

	// Explicit empty (non-nil) step list disables the advisory defaults
	result, err := Parse(context.Background(), testConfig(), fm, base, nil, []pipeline.Step{}, nil)
	require.NoError(t, err)

	data, err := result.Store.Get("load")
	require.NoError(t, err)
	assert.Equal(t, 2, data.(*table.Frame).NumRows(), "year filter must not run")
}

func TestParseSharedOverridesConfig(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "outputs"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(base, "outputs", "load.csv"),
		[]byte("region,year\np1,2030\np1,2035\n"), 0o644))

	fm := filemap.Map{"load": &filemap.Entry{Fname: "load.csv"}}

	result, err := Parse(context.Background(), testConfig(), fm, base, nil, nil,
		map[string]any{"solve_year": 2030})
	require.NoError(t, err)

	data, err := result.Store.Get("load")
	require.NoError(t, err)
	frame := data.(*table.Frame)
	require.Equal(t, 1, frame.NumRows())
	assert.Equal(t, int64(2030), frame.Rows[0][1])
}

func TestParseStrategyFailurePropagates(t *testing.T) {
	base := t.TempDir()
	fm := filemap.Map{}
	boom := errors.New("no buses defined")

	_, err := Parse(context.Background(), testConfig(), fm, base, &reedsStrategy{fail: boom}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestParseIngestionFailureSkipsStrategy(t *testing.T) {
	base := t.TempDir()
	fm := filemap.Map{"load": &filemap.Entry{Fname: "gone.csv"}}
	strategy := &reedsStrategy{}

	_, err := Parse(context.Background(), testConfig(), fm, base, strategy, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingMandatoryFile))
	assert.False(t, strategy.built, "no system build over a failed ingestion")
}
