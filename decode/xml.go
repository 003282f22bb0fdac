package decode

import (
	"github.com/beevik/etree"

	"github.com/mcllerena/R2X/errors"
)

// decodeXML parses a structured document into a generic handle supporting
// downstream path queries.
//
// Only options the document reader itself understands are forwarded;
// anything else in the option set is silently dropped, since file map
// entries mix decoder options with translator hints.
func decodeXML(path string, opts Options) (any, error) {
	doc := etree.NewDocument()

	if opts.Bool("permissive") {
		doc.ReadSettings.Permissive = true
	}
	if opts.Bool("validate_input") {
		doc.ReadSettings.ValidateInput = true
	}

	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return doc, nil
}
