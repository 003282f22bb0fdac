// Package component builds validated domain components from the loosely
// typed field dictionaries the translators produce.
//
// Construction is all-or-nothing: either the full component passes field
// validation, or an error is returned. The unchecked escape hatch exists
// for salvaging partially valid source data and must be opted into per
// call; it is never a default.
package component

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/mcllerena/R2X/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Option configures one Construct call.
type Option func(*settings)

type settings struct {
	unchecked bool
}

// WithUnchecked enables the fallback to unchecked construction when strict
// validation fails. The resulting component carries the offending field
// values unchanged.
func WithUnchecked() Option {
	return func(s *settings) { s.unchecked = true }
}

// Construct builds a T from a field dictionary.
//
// Null values are dropped before decoding, and keys with no matching field
// on T are dropped silently: upstream translators emit a superset of any
// one component's schema. The strict pass decodes with exact types and runs
// field validation; failures surface as ErrValidation unless WithUnchecked
// was given, in which case a weakly typed decode without validation
// produces a best-effort component.
func Construct[T any](fields map[string]any, opts ...Option) (*T, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	valid := make(map[string]any, len(fields))
	for key, value := range fields {
		if value != nil {
			valid[key] = value
		}
	}

	out, err := decodeStrict[T](valid)
	if err == nil {
		if verr := validate.Struct(out); verr == nil {
			return out, nil
		} else {
			err = verr
		}
	}

	if !s.unchecked {
		return nil, errors.Wrap(errors.ErrValidation, err.Error())
	}
	return decodeUnchecked[T](valid)
}

func decodeStrict[T any](fields map[string]any) (*T, error) {
	out := new(T)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: out,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building decoder")
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeUnchecked bypasses field validation entirely and lets mapstructure
// coerce types where it can. A value that cannot land in the struct even
// with weak typing is not best effort; that decode error still fails the
// component.
func decodeUnchecked[T any](fields map[string]any) (*T, error) {
	out := new(T)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "building decoder")
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, errors.Wrap(errors.ErrValidation, err.Error())
	}
	return out, nil
}
