package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mcllerena/R2X/errors"
)

// ReadOptions controls CSV decoding.
type ReadOptions struct {
	// KeepCase preserves column-name case; by default names are lowercased.
	KeepCase bool

	// Columns replaces the header with a declared column list. When the file
	// carries exactly one more column than declared, the trailing actual
	// column is appended to the declared list. This is a compatibility shim
	// for the ReEDS upgrader, which appends an s-region column; it is not a
	// general pipeline rule.
	Columns []string
}

// ReadCSV decodes a CSV file into a Frame.
//
// A file that exists but has no data rows yields the Empty marker, not an
// error: callers must be able to tell "empty" apart from "missing".
func ReadCSV(path string, opts ReadOptions) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows surface as short rows, not failures

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if len(records) == 0 {
		return Empty, nil
	}

	header := records[0]
	rows := records[1:]
	if len(rows) == 0 {
		return Empty, nil
	}

	columns := header
	if len(opts.Columns) > 0 {
		columns = append([]string(nil), opts.Columns...)
		if len(header) == len(columns)+1 {
			columns = append(columns, header[len(header)-1])
		}
	}

	frame := &Frame{Columns: make([]string, len(columns))}
	copy(frame.Columns, columns)

	frame.Rows = make([][]any, len(rows))
	for i, record := range rows {
		row := make([]any, len(record))
		for j, cell := range record {
			row[j] = parseScalar(cell)
		}
		frame.Rows[i] = row
	}

	if !opts.KeepCase {
		frame = frame.LowercaseColumns()
	}
	return frame, nil
}

// WriteCSV writes the frame for diagnostics and round-trip tests.
func WriteCSV(w io.Writer, f *Frame) error {
	if f.IsEmpty() {
		return nil
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(f.Columns); err != nil {
		return err
	}
	for _, row := range f.Rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = formatScalar(cell)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// parseScalar mirrors the loose typing of the source files: ints, then
// floats, then booleans, falling back to the raw string.
func parseScalar(s string) any {
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

func formatScalar(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(n)
	}
	return fmt.Sprint(v)
}
