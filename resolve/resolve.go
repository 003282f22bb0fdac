// Package resolve locates source files inside a run folder.
//
// A logical filename is searched across an ordered list of conventional
// subdirectories. The search is non-recursive per candidate; the candidate
// list itself encodes the only recursion allowed. When several candidates
// match, the first one in candidate-list order wins deterministically and a
// single warning is emitted.
package resolve

import (
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/mcllerena/R2X/config"
	"github.com/mcllerena/R2X/errors"
	"github.com/mcllerena/R2X/logger"
)

// Resolver searches a fixed, ordered list of candidate folders.
type Resolver struct {
	folders []string
	log     *zap.SugaredLogger
}

// New creates a resolver over the given search folders. An empty list falls
// back to the configured defaults.
func New(folders []string) *Resolver {
	if len(folders) == 0 {
		folders = config.DefaultSearchFolders
	}
	return &Resolver{folders: folders, log: logger.Logger}
}

// WithLogger returns a copy of the resolver using the given logger.
func (r *Resolver) WithLogger(log *zap.SugaredLogger) *Resolver {
	return &Resolver{folders: r.folders, log: log}
}

// Resolve returns the path of the first file matching name under baseDir.
//
// All matches across candidates are collected before deciding so the
// ambiguity warning fires exactly once and the winner never depends on
// filesystem iteration order. Zero matches yield ErrMissingMandatoryFile
// when the file is mandatory, and ("", nil) when optional.
func (r *Resolver) Resolve(name, baseDir string, optional bool) (string, error) {
	matches := r.collect(name, baseDir)

	if len(matches) > 1 {
		r.log.Warnw("Multiple files found, returning first match; check for stray copies",
			"fname", name, "matches", matches)
	}

	if len(matches) == 0 {
		if !optional {
			return "", errors.NewMissingFileError("mandatory file %q not found in %q", name, baseDir)
		}
		r.log.Warnw("Optional file not found", "fname", name, "base", baseDir)
		return "", nil
	}

	return matches[0], nil
}

// collect gathers every match in candidate-list order. Matches inside one
// candidate directory are sorted so the overall order is reproducible.
func (r *Resolver) collect(name, baseDir string) []string {
	var matches []string
	for _, folder := range r.folders {
		candidate := filepath.Join(baseDir, folder)

		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			matches = append(matches, candidate)
			continue
		}

		globbed, err := filepath.Glob(filepath.Join(candidate, name))
		if err != nil {
			// bad pattern in name; treat as no match for this candidate
			r.log.Debugw("Invalid glob pattern", "fname", name, "candidate", candidate, "error", err)
			continue
		}
		sort.Strings(globbed)
		for _, path := range globbed {
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				r.log.Debugw("File found", "fname", name, "dir", candidate)
				matches = append(matches, path)
			}
		}
	}
	return matches
}
