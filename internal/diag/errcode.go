package diag

import (
	"errors"
	"os"
)

// Code is a minimal error classification used only for log/metric
// grouping; it never drives control flow.
type Code string

const (
	CodeUnknown Code = "unknown"
	CodeIO      Code = "io"
	CodeConfig  Code = "config"
)

// ErrInvalidConfig marks a configuration validation failure (inverted
// search bounds, non-positive minRectDimension, …).
var ErrInvalidConfig = errors.New("invalid configuration")

// Classify buckets err into a Code for logging, relying only on sentinel
// errors and standard error types, never string matching.
func Classify(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	if errors.Is(err, ErrInvalidConfig) {
		return CodeConfig
	}
	var perr *os.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}
