// Package ingest orchestrates the pipeline: for each file map entry it
// resolves the source path, dispatches the decoder, applies the filter
// steps, and stores the result under the entry's logical name.
package ingest

import (
	"context"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mcllerena/R2X/decode"
	"github.com/mcllerena/R2X/errors"
	"github.com/mcllerena/R2X/filemap"
	"github.com/mcllerena/R2X/logger"
	"github.com/mcllerena/R2X/pipeline"
	"github.com/mcllerena/R2X/resolve"
)

// Driver runs ingestion passes. The parsed-data store accumulates across
// repeated Ingest calls on the same driver.
type Driver struct {
	store    *Store
	resolver *resolve.Resolver
	log      *zap.SugaredLogger
	workers  int
}

// Option configures a Driver.
type Option func(*Driver)

// WithWorkers sets the fan-out width across file map entries. Values below
// 2 keep ingestion sequential.
func WithWorkers(n int) Option {
	return func(d *Driver) {
		if n > 1 {
			d.workers = n
		}
	}
}

// WithResolver replaces the default search-path resolver.
func WithResolver(r *resolve.Resolver) Option {
	return func(d *Driver) { d.resolver = r }
}

// WithLogger replaces the global logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(d *Driver) { d.log = log }
}

// New creates an ingestion driver.
func New(opts ...Option) *Driver {
	d := &Driver{
		store:   NewStore(),
		log:     logger.Logger,
		workers: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.resolver == nil {
		d.resolver = resolve.New(nil).WithLogger(d.log)
	}
	return d
}

// Store returns the driver's parsed-data store.
func (d *Driver) Store() *Store {
	return d.store
}

// Result is what one ingestion pass produced.
//
// Resolved is the resolution cache: logical name to the path each entry
// decoded from. The caller merges it back into its file map (see
// filemap.Map.ApplyResolved) when it wants idempotent re-ingestion; the
// driver itself never mutates the caller's map.
type Result struct {
	Store    *Store
	Resolved map[string]string
	RunID    string
}

// Ingest runs one pass over the file map.
//
// Entries without a source filename are skipped as structural no-ops.
// Optional entries with no matching file are logged and absent from the
// store. A mandatory entry that fails aborts the pass; results stored
// before the failure remain in the store for diagnostics, and the partial
// Result is returned alongside the error.
//
// An empty baseDir skips the whole pass with a warning: ingestion steps are
// allowed to be unconfigured.
func (d *Driver) Ingest(ctx context.Context, fm filemap.Map, baseDir string,
	steps []pipeline.Step, shared map[string]any) (*Result, error) {

	result := &Result{
		Store:    d.store,
		Resolved: make(map[string]string),
		RunID:    uuid.NewString()[:8],
	}

	if baseDir == "" {
		d.log.Warnw("Missing base folder, skipping ingestion step", "run", result.RunID)
		return result, nil
	}

	// Work on a copy: pinned-path bookkeeping must not alias the caller's map
	fm = fm.Clone()
	names := fm.Names()

	d.log.Debugw("Starting ingestion pass",
		"run", result.RunID, "base", baseDir, "entries", len(names), "workers", d.workers)

	var resolvedMu sync.Mutex
	process := func(ctx context.Context, name string) error {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "ingestion canceled")
		}
		entry := fm[name]
		if entry == nil || entry.Fname == "" {
			return nil
		}

		path, err := d.resolvePath(name, entry, baseDir)
		if err != nil {
			return err
		}
		if path == "" {
			return nil // optional and absent
		}

		opts := decode.NewOptions(shared, entry.Options)
		data, err := decode.Decode(path, opts)
		if err != nil {
			return errors.Wrapf(err, "decoding %q", name)
		}

		data, err = pipeline.Apply(data, steps, pipeline.NewContext(opts))
		if err != nil {
			return errors.Wrapf(err, "filtering %q", name)
		}

		d.store.Set(name, data)
		resolvedMu.Lock()
		result.Resolved[name] = path
		resolvedMu.Unlock()

		d.log.Debugw("Loaded file", "dataset", name, "path", path)
		return nil
	}

	if d.workers > 1 {
		group, gctx := errgroup.WithContext(ctx)
		group.SetLimit(d.workers)
		for _, name := range names {
			group.Go(func() error { return process(gctx, name) })
		}
		if err := group.Wait(); err != nil {
			return result, err
		}
		return result, nil
	}

	for _, name := range names {
		if err := process(ctx, name); err != nil {
			return result, err
		}
	}
	return result, nil
}

// resolvePath picks the source path for an entry. A pinned path always
// wins over fresh resolution; the optional-absent short circuit applies to
// both pinned and resolved paths before any decoder runs.
func (d *Driver) resolvePath(name string, entry *filemap.Entry, baseDir string) (string, error) {
	if entry.Fpath != "" {
		if _, err := os.Stat(entry.Fpath); err != nil {
			if entry.Optional {
				d.log.Debugw("Pinned optional file absent", "dataset", name, "path", entry.Fpath)
				return "", nil
			}
			return "", errors.NewMissingFileError("pinned file %q for %q does not exist", entry.Fpath, name)
		}
		return entry.Fpath, nil
	}
	return d.resolver.Resolve(entry.Fname, baseDir, entry.Optional)
}
