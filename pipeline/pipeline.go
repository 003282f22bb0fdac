// Package pipeline applies ordered, pure transform steps to decoded data.
//
// Steps compose left-to-right and share one read-only context. Every step
// is total: data it does not understand (non-tabular values, the empty
// marker, frames missing an optional column) passes through unchanged.
package pipeline

import (
	"github.com/mcllerena/R2X/decode"
	"github.com/mcllerena/R2X/errors"
	"github.com/mcllerena/R2X/table"
)

// Context carries the shared options every step receives. It is passed
// unmodified to each step in the chain.
type Context struct {
	// Year filters tabular data to one solve year. 0 disables the filter.
	Year int

	// YearColumn is the column the year filter matches. Empty means "year".
	YearColumn string

	// ColumnMapping is the rename table applied by the rename step.
	ColumnMapping map[string]string
}

// NewContext builds a step context from layered decoder options.
func NewContext(opts decode.Options) *Context {
	ctx := &Context{}
	if year, ok := opts.Int("solve_year"); ok {
		ctx.Year = year
	}
	if col, ok := opts.String("year_column"); ok {
		ctx.YearColumn = col
	}
	ctx.ColumnMapping = opts.StringMap("column_mapping")
	return ctx
}

// Step is a named pure transform.
type Step struct {
	Name string
	Fn   func(data any, ctx *Context) (any, error)
}

// Apply runs the steps strictly in the order given, feeding each the output
// of the previous.
func Apply(data any, steps []Step, ctx *Context) (any, error) {
	if ctx == nil {
		ctx = &Context{}
	}
	for _, step := range steps {
		out, err := step.Fn(data, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "filter step %q", step.Name)
		}
		data = out
	}
	return data, nil
}

// Rename renames frame columns per the context's mapping.
var Rename = Step{
	Name: "rename",
	Fn: func(data any, ctx *Context) (any, error) {
		frame, ok := data.(*table.Frame)
		if !ok || frame.IsEmpty() {
			return data, nil
		}
		return frame.Rename(ctx.ColumnMapping), nil
	},
}

// FilterYear keeps the rows matching the context's solve year. Frames
// without the year column, non-tabular data, and a zero year are no-ops.
var FilterYear = Step{
	Name: "filter_year",
	Fn: func(data any, ctx *Context) (any, error) {
		frame, ok := data.(*table.Frame)
		if !ok || frame.IsEmpty() || ctx.Year == 0 {
			return data, nil
		}
		column := ctx.YearColumn
		if column == "" {
			column = "year"
		}
		return frame.FilterEq(column, int64(ctx.Year)), nil
	},
}

// Lowercase lowercases frame column names and string cells.
var Lowercase = Step{
	Name: "lowercase",
	Fn: func(data any, ctx *Context) (any, error) {
		frame, ok := data.(*table.Frame)
		if !ok || frame.IsEmpty() {
			return data, nil
		}
		return frame.Lowercase(), nil
	},
}

// DefaultSteps returns the advisory default steps for an input-model
// family. The selection is a policy decision, fully overridable by explicit
// caller-supplied steps.
func DefaultSteps(inputModel string) []Step {
	switch inputModel {
	case "reeds-US":
		return []Step{Rename, FilterYear}
	default:
		return nil
	}
}
