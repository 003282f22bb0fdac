package filemap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/mcllerena/R2X/errors"
)

// mappingSchema validates the shape of a file map document before any entry
// is constructed: every top-level value must be an object, and the
// recognized keys must carry the right types. Unrecognized keys are allowed
// (they become decoder options).
const mappingSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "properties": {
      "fname": {"type": "string"},
      "optional": {"type": "boolean"},
      "fpath": {"type": "string"}
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("mapping_schema.json", mappingSchema)

// Load reads a file map document.
//
// The argument is either a path to a .json/.yaml/.yml/.toml document or an
// inline JSON object string. Inline JSON arrays are rejected. The document
// is validated against the mapping schema before any ingestion can begin;
// logical dataset names are lowercased.
func Load(pathOrJSON string) (Map, error) {
	trimmed := strings.TrimSpace(pathOrJSON)

	if strings.HasPrefix(trimmed, "[") {
		return nil, errors.Wrap(errors.ErrSchemaViolation, "JSON arrays not supported for file maps")
	}

	var raw map[string]any
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
			return nil, errors.Wrap(err, "invalid inline JSON file map")
		}
		return fromRaw(raw)
	}

	content, err := os.ReadFile(pathOrJSON)
	if err != nil {
		return nil, errors.Wrapf(err, "reading file map %s", pathOrJSON)
	}

	switch ext := strings.ToLower(filepath.Ext(pathOrJSON)); ext {
	case ".json":
		if err := json.Unmarshal(content, &raw); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", pathOrJSON)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", pathOrJSON)
		}
	case ".toml":
		if err := toml.Unmarshal(content, &raw); err != nil {
			return nil, errors.Wrapf(err, "parsing %s", pathOrJSON)
		}
	default:
		return nil, errors.NewUnsupportedFormatError(
			"file map extension %q not supported (use .json, .yaml, .yml, or .toml)", ext)
	}

	return fromRaw(raw)
}

func fromRaw(raw map[string]any) (Map, error) {
	if err := compiledSchema.Validate(normalize(raw)); err != nil {
		return nil, errors.Wrap(errors.ErrSchemaViolation, err.Error())
	}

	fm := make(Map, len(raw))
	for name, value := range raw {
		obj, ok := value.(map[string]any)
		if !ok {
			// schema validation already rejects this; kept as a guard for
			// callers constructing raw maps directly
			return nil, errors.Wrapf(errors.ErrSchemaViolation, "entry %q is not an object", name)
		}

		entry := &Entry{}
		for key, v := range obj {
			switch strings.ToLower(key) {
			case "fname":
				entry.Fname, _ = v.(string)
			case "optional":
				entry.Optional, _ = v.(bool)
			case "fpath":
				entry.Fpath, _ = v.(string)
			default:
				if entry.Options == nil {
					entry.Options = make(map[string]any)
				}
				entry.Options[strings.ToLower(key)] = v
			}
		}
		fm[strings.ToLower(name)] = entry
	}
	return fm, nil
}

// normalize converts YAML/TOML decoder output into the JSON-shaped value
// tree the schema validator expects.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if key, ok := k.(string); ok {
				out[key] = normalize(item)
			}
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case float32:
		return float64(val)
	default:
		return v
	}
}
