// Package errors provides standardized error handling for composectl.
// It defines the error kinds the composer and its collaborators report,
// plus helpers for consistent creation, wrapping, and matching.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	InvalidPath
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Composer error kinds
	NoWorkspaceFolder
	NoComposeFiles
	SelectionCancelled
	InvalidOperation
	// Terminal error kinds
	TerminalClosed
)

// String returns a short name for the kind, used in log fields.
func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file_not_found"
	case InvalidPath:
		return "invalid_path"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	case NoWorkspaceFolder:
		return "no_workspace_folder"
	case NoComposeFiles:
		return "no_compose_files"
	case SelectionCancelled:
		return "selection_cancelled"
	case InvalidOperation:
		return "invalid_operation"
	case TerminalClosed:
		return "terminal_closed"
	default:
		return "unknown"
	}
}

// Common error constants for frequently occurring errors
var (
	ErrFileNotFound       = NewFileError("file not found", "", FileNotFound, nil)
	ErrInvalidPath        = NewFileError("invalid file path", "", InvalidPath, nil)
	ErrInvalidConfig      = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrNoWorkspaceFolder  = NewKind("no workspace folder", NoWorkspaceFolder)
	ErrNoComposeFiles     = NewKind("no docker-compose files found", NoComposeFiles)
	ErrSelectionCancelled = NewKind("no docker-compose file selected", SelectionCancelled)
	ErrTerminalClosed     = NewKind("terminal session closed", TerminalClosed)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// Is matches any ApplicationError of the same, known kind. This lets callers
// write errors.Is(err, ErrNoComposeFiles) against errors carrying their own
// message.
func (e *ApplicationError) Is(target error) bool {
	var t interface{ Kind() ErrorKind }
	if !errors.As(target, &t) {
		return false
	}
	return e.kind != Unknown && t.Kind() == e.kind
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NewKind creates a new error of the given kind
func NewKind(msg string, kind ErrorKind) error {
	return &ApplicationError{
		msg:  msg,
		kind: kind,
	}
}

// WrapKind wraps err with a message and a kind
func WrapKind(err error, msg string, kind ErrorKind) error {
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first ApplicationError in err's chain.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	for err != nil {
		if errors.As(err, &k) && k.Kind() != Unknown {
			return k.Kind()
		}
		// An Unknown wrapper may still carry a kinded cause.
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	return KindOf(err) == FileNotFound
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	return KindOf(err) == InvalidConfig
}

// IsNoWorkspaceFolder checks if no project folder could be resolved
func IsNoWorkspaceFolder(err error) bool {
	return KindOf(err) == NoWorkspaceFolder
}

// IsSoft reports whether err is an informational outcome: nothing to
// operate on, or the user dismissed the chooser.
func IsSoft(err error) bool {
	switch KindOf(err) {
	case NoComposeFiles, SelectionCancelled:
		return true
	}
	return false
}
