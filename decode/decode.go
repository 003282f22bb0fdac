// Package decode maps file types to decoding routines.
//
// Dispatch is an explicit extension-keyed registry populated at package
// init. Unregistered extensions fail closed with ErrUnsupportedFormat:
// a file the pipeline does not understand is never silently passed through.
package decode

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/mcllerena/R2X/errors"
)

// Func decodes the file at path into structured data.
//
// What "structured data" means depends on the format: *table.Frame for
// tabular sources, *etree.Document for XML, generic values for JSON.
type Func func(path string, opts Options) (any, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Func)
)

// Register installs a decoder for a file extension (including the leading
// dot). Later registrations replace earlier ones, which lets callers swap a
// format decoder for testing.
func Register(ext string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(ext)] = fn
}

// Registered reports whether an extension has a decoder.
func Registered(ext string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[strings.ToLower(ext)]
	return ok
}

// Decode dispatches on the file's extension.
func Decode(path string, opts Options) (any, error) {
	ext := strings.ToLower(filepath.Ext(path))

	registryMu.RLock()
	fn, ok := registry[ext]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.NewUnsupportedFormatError("file extension %q not yet supported (%s)", ext, path)
	}
	return fn(path, opts)
}

func init() {
	Register(".csv", decodeCSV)
	Register(".parquet", decodeParquet)
	Register(".xml", decodeXML)
	Register(".json", decodeJSON)
}
