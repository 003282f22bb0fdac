// Package errors provides error handling for R2X.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check against the ingestion taxonomy
//	if errors.Is(err, errors.ErrMissingMandatoryFile) {
//	    // handle missing input
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the ingestion pipeline taxonomy.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrMissingMandatoryFile indicates a non-optional file map entry did not
	// resolve to any file on disk. Fatal to the containing ingestion step.
	ErrMissingMandatoryFile = New("mandatory file not found")

	// ErrUnsupportedFormat indicates a file extension with no registered decoder
	ErrUnsupportedFormat = New("unsupported file format")

	// ErrUnknownProfile indicates a binary-tabular file whose producer profile
	// is not recognized. Scoped to the profile, not the format in general.
	ErrUnknownProfile = New("unknown producer profile")

	// ErrValidation indicates strict component construction failed
	ErrValidation = New("component validation failed")

	// ErrSchemaViolation indicates the file map document itself is malformed
	ErrSchemaViolation = New("file map schema violation")

	// ErrUnknownDataset indicates a parsed-data store lookup by a key that was
	// never ingested
	ErrUnknownDataset = New("unknown dataset")
)

// IsMissingFileError checks if an error is or wraps ErrMissingMandatoryFile.
func IsMissingFileError(err error) bool {
	return err != nil && Is(err, ErrMissingMandatoryFile)
}

// IsUnsupportedFormatError checks if an error is or wraps ErrUnsupportedFormat.
// Unknown producer profiles count: they are unsupported formats scoped to one
// profile tag.
func IsUnsupportedFormatError(err error) bool {
	return err != nil && (Is(err, ErrUnsupportedFormat) || Is(err, ErrUnknownProfile))
}

// IsValidationError checks if an error is or wraps ErrValidation.
func IsValidationError(err error) bool {
	return err != nil && Is(err, ErrValidation)
}

// NewMissingFileError creates a missing-mandatory-file error with a formatted message
func NewMissingFileError(format string, args ...interface{}) error {
	return Wrap(ErrMissingMandatoryFile, Newf(format, args...).Error())
}

// NewUnsupportedFormatError creates an unsupported-format error with a formatted message
func NewUnsupportedFormatError(format string, args ...interface{}) error {
	return Wrap(ErrUnsupportedFormat, Newf(format, args...).Error())
}
