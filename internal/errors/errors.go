package errors

import "fmt"

// ValidationError represents a bad command-line input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// CommandError represents a subprocess that exited non-zero or failed to start
type CommandError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new command error
func NewCommandError(command string, exitCode int, err error) *CommandError {
	return &CommandError{
		Command:  command,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ListingError represents a failure while listing object versions from S3
type ListingError struct {
	Bucket string
	Err    error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("listing versions in bucket %s: %v", e.Bucket, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// NewListingError creates a new listing error
func NewListingError(bucket string, err error) *ListingError {
	return &ListingError{
		Bucket: bucket,
		Err:    err,
	}
}

// ParseError represents a listing document that could not be decoded
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing listing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new parse error
func NewParseError(path string, err error) *ParseError {
	return &ParseError{
		Path: path,
		Err:  err,
	}
}
