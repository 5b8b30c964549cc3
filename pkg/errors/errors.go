// Package errors provides structured error types for the training and
// inference pipelines. Errors carry stack traces via cockroachdb/errors
// and marshal themselves into zerolog events for structured logging.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// NotFittedError is returned when Predict or PredictProba is called on a
// model that has not been fitted yet.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("mldemo: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError is returned when input data has a different shape than
// the operation expects.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("mldemo: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValidationError is returned when an input parameter fails validation,
// for example a non-positive sample count passed to a synthesizer.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mldemo: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace attached.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError is returned when an argument value is malformed or out of
// range for the operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("mldemo: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NotFoundError is returned when a persisted artifact (model blob or
// metadata sidecar) is missing on load. It is a recoverable condition:
// the hint tells the operator how to produce the artifact.
type NotFoundError struct {
	Path string
	Hint string
}

func (e *NotFoundError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("mldemo: artifact not found: %s. %s", e.Path, e.Hint)
	}
	return fmt.Sprintf("mldemo: artifact not found: %s", e.Path)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Str("hint", e.Hint).
		Str("type", "NotFoundError")
}

// NewNotFoundError creates a NotFoundError with a stack trace attached.
func NewNotFoundError(path, hint string) error {
	err := &NotFoundError{Path: path, Hint: hint}
	return errors.WithStack(err)
}

// Schema mismatch kinds reported by SchemaError.
const (
	SchemaKindMissingFeature    = "missing_feature"
	SchemaKindUnexpectedFeature = "unexpected_feature"
)

// SchemaError is returned when a feature mapping supplied for inference
// does not match the schema recorded at training time. Kind is one of the
// SchemaKind constants.
type SchemaError struct {
	Op      string
	Feature string
	Kind    string
}

func (e *SchemaError) Error() string {
	switch e.Kind {
	case SchemaKindMissingFeature:
		return fmt.Sprintf("mldemo: %s: required feature '%s' is missing from the input", e.Op, e.Feature)
	case SchemaKindUnexpectedFeature:
		return fmt.Sprintf("mldemo: %s: feature '%s' is not part of the trained schema", e.Op, e.Feature)
	}
	return fmt.Sprintf("mldemo: %s: schema mismatch on feature '%s'", e.Op, e.Feature)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *SchemaError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("feature", e.Feature).
		Str("kind", e.Kind).
		Str("type", "SchemaError")
}

// NewMissingFeatureError creates a SchemaError for a feature required by
// the trained schema but absent from the input mapping.
func NewMissingFeatureError(op, feature string) error {
	err := &SchemaError{Op: op, Feature: feature, Kind: SchemaKindMissingFeature}
	return errors.WithStack(err)
}

// NewUnexpectedFeatureError creates a SchemaError for a feature present
// in the input mapping but unknown to the trained schema.
func NewUnexpectedFeatureError(op, feature string) error {
	err := &SchemaError{Op: op, Feature: feature, Kind: SchemaKindUnexpectedFeature}
	return errors.WithStack(err)
}

// FitError is returned when model fitting fails on degenerate input,
// for example a single-class target passed to a classifier.
type FitError struct {
	Op     string
	Reason string
	Err    error
}

func (e *FitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mldemo: %s: fit failed: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("mldemo: %s: fit failed: %s", e.Op, e.Reason)
}

func (e *FitError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *FitError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "FitError")
	if e.Err != nil {
		event.AnErr("cause", e.Err)
	}
}

// NewFitError creates a FitError with a stack trace attached.
func NewFitError(op, reason string, err error) error {
	fitErr := &FitError{Op: op, Reason: reason, Err: err}
	return errors.WithStack(fitErr)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}
