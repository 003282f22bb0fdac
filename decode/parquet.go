package decode

import (
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/mcllerena/R2X/errors"
	"github.com/mcllerena/R2X/table"
)

// profileFunc decodes a binary-tabular file following one producer's layout
// conventions.
type profileFunc func(path string, opts Options) (*table.Frame, error)

// profiles keys binary-tabular decoding by producer profile. Layout
// conventions differ per producing tool, so the caller must identify which
// convention the file follows; only recognized profiles are supported.
var profiles = map[string]profileFunc{
	"reeds": decodeReEDSProfile,
}

// decodeParquet dispatches on the mandatory profile option.
func decodeParquet(path string, opts Options) (any, error) {
	profile, ok := opts.String("profile")
	if !ok || profile == "" {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnknownProfile, "no producer profile given for %s", path),
			"set the entry's profile option to the tool that wrote the file (e.g. \"reeds\")")
	}

	fn, ok := profiles[strings.ToLower(profile)]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownProfile,
			"binary-tabular decoding is not implemented for profile %q (%s)", profile, path)
	}
	return fn(path, opts)
}

// decodeReEDSProfile reads a flat ReEDS-layout file: one row group family of
// leaf columns, values loosely typed. Column names are lowercased to match
// the tabular contract.
func decodeReEDSProfile(path string, _ Options) (*table.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	fields := pf.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = strings.ToLower(field.Name())
	}

	frame := &table.Frame{Columns: columns}
	buf := make([]parquet.Row, 256)
	for _, rowGroup := range pf.RowGroups() {
		rows := rowGroup.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				out := make([]any, len(columns))
				for _, value := range row {
					col := int(value.Column())
					if col >= 0 && col < len(out) {
						out[col] = parquetValue(value)
					}
				}
				frame.Rows = append(frame.Rows, out)
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				rows.Close()
				return nil, errors.Wrapf(err, "reading rows from %s", path)
			}
		}
		if err := rows.Close(); err != nil {
			return nil, errors.Wrapf(err, "closing row reader for %s", path)
		}
	}

	if len(frame.Rows) == 0 {
		return table.Empty, nil
	}
	return frame, nil
}

func parquetValue(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	default:
		return v.String()
	}
}
