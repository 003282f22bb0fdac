package decode

import (
	"os"

	"github.com/ohler55/ojg/oj"

	"github.com/mcllerena/R2X/errors"
)

// decodeJSON reads a plain structured-record file directly into an
// in-memory generic value with no normalization.
func decodeJSON(path string, _ Options) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	value, err := oj.Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return value, nil
}
