package dataset

import (
	"errors"
	"fmt"
)

// ErrTrainNotFound matches every *NotFoundError via errors.Is
var ErrTrainNotFound = errors.New("train not found")

// NotFoundError reports a train number with no rows in the dataset
type NotFoundError struct {
	TrainNumber string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Train number %s not found in dataset!", e.TrainNumber)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrTrainNotFound }

// SchemaError reports a required column missing from the header row
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// ParseError reports a cell that could not be converted to its field type
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %s: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
