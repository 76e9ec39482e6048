// Package errors provides sentinel errors and error types for the PGN parser.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIO indicates a seek or read failure on the input, or a write
	// failure on the output. It is never retried.
	ErrIO = errors.New("i/o failure")

	// ErrMalformedLine indicates a tag line with no separable key and value.
	// Scanners skip such lines; the error is only used for reporting.
	ErrMalformedLine = errors.New("malformed line")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidWindow indicates a byte window with Min > Max or a negative bound.
	ErrInvalidWindow = errors.New("invalid window")

	// ErrUnknownFormat indicates an output format that has no writer.
	ErrUnknownFormat = errors.New("unknown output format")
)

// ScanError wraps errors with scan context: the window being scanned and
// the byte offset at which the failure happened.
type ScanError struct {
	Err    error  // The underlying error
	File   string // Source file name (if known)
	Window int    // Index of the window being scanned (-1 if not applicable)
	Offset int64  // Byte offset of the failed operation
}

// Error returns a formatted error message including all available context.
func (e *ScanError) Error() string {
	var parts []string

	if e.File != "" {
		parts = append(parts, e.File)
	}

	if e.Window >= 0 {
		parts = append(parts, fmt.Sprintf("window %d", e.Window))
	}

	parts = append(parts, fmt.Sprintf("offset %d", e.Offset))

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the ScanError wrapper.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// ConfigError reports an invalid configuration key.
type ConfigError struct {
	Key    string // Configuration key, as spelled in the TOML file
	Value  string // Offending value
	Reason string // What is wrong with it
}

// Error returns a formatted error message.
func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s = %q", ErrInvalidConfig, e.Key, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IO marks err as an I/O failure, keeping err in the chain.
func IO(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrIO) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
