// Package comerr defines the error taxonomy for commonize runs.
package comerr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	// TypeConfig marks argument or manifest problems; these abort the run.
	TypeConfig ErrorType = "ConfigError"
	// TypeFile marks a per-file I/O failure recovered during the run.
	TypeFile ErrorType = "FileError"
)

// ComError is the interface for all commonize-related errors.
type ComError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for commonize errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// ConfigError represents an invalid argument or manifest setting.
type ConfigError struct {
	BaseError
}

// FileError represents a read or write failure on one file. The run skips
// the file and continues; the error is surfaced in the report.
type FileError struct {
	BaseError
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.ErrType, e.Path, e.Msg)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// MultiError collects multiple commonize errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if ce, ok := m.Errors[0].(ComError); ok {
			return ce.Type()
		}
	}
	return "MultiError"
}

// NewConfigError creates a new ConfigError.
func NewConfigError(msg string) *ConfigError {
	return &ConfigError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeConfig,
		},
	}
}

// NewFileError creates a FileError wrapping the underlying failure for path.
func NewFileError(path string, err error) *FileError {
	return &FileError{
		BaseError: BaseError{
			Msg:     err.Error(),
			ErrType: TypeFile,
		},
		Path: path,
		Err:  err,
	}
}
