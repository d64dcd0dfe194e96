package sitesearch

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"

	// ESCAN means the site root could not be enumerated. Fatal.
	ESCAN = "scan"
	// EEXTRACT means a single page could not be read or parsed.
	// Recoverable unless no page at all could be extracted.
	EEXTRACT = "extract"
	// EBUILD means a document id was duplicated or out of range when it
	// reached the index or preview builders. Fatal.
	EBUILD = "build"
	// EWRITE means an output file could not be created or written. Fatal.
	EWRITE = "write"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("sitesearch error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ExtractFailure records a page that could not be turned into a Document.
type ExtractFailure struct {
	Path string
	Err  error
}

func (f *ExtractFailure) Error() string {
	return f.Path + ": " + ErrorMessage(f.Err)
}

func (f *ExtractFailure) Unwrap() error {
	return f.Err
}

// FormatFailures renders a batch summary of extraction failures, one page
// per line. Returns an empty string when there are no failures.
func FormatFailures(failures []*ExtractFailure) string {
	if len(failures) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d page(s) could not be indexed:\n", len(failures))
	for _, f := range failures {
		b.WriteString("  ")
		b.WriteString(f.Error())
		b.WriteString("\n")
	}
	return b.String()
}
