package decode

import (
	"github.com/mcllerena/R2X/table"
)

// decodeCSV reads a tabular file into a full in-memory frame.
//
// Column names are lowercased unless the keep_case option is set. A file
// with no data rows yields table.Empty rather than an error.
func decodeCSV(path string, opts Options) (any, error) {
	return table.ReadCSV(path, table.ReadOptions{
		KeepCase: opts.Bool("keep_case"),
		Columns:  opts.StringSlice("columns"),
	})
}
