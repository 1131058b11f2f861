// Package utils provides internal utility functions for the train tracker.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Timestamp parsing and formatting
//   - Number and unit formatting for display
package utils
