package bindgen

import "strings"

// Kind categorizes a generation error.
type Kind string

const (
	KindParse                Kind = "parse"
	KindInvalid              Kind = "invalid_declaration"
	KindMissingLibrary       Kind = "missing_library"
	KindMultipleLibraries    Kind = "multiple_libraries"
	KindUnknownLibrary       Kind = "unknown_library"
	KindUnsupportedType      Kind = "unsupported_type"
	KindUnsupportedSignature Kind = "unsupported_signature"
	KindDuplicateFunction    Kind = "duplicate_function"
)

// Error is a generation error. Generate reports every problem it finds in a
// batch, combined with go.uber.org/multierr; use multierr.Errors to list them.
type Error struct {
	Cause    error
	Kind     Kind
	Function string
	Pos      string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.Pos != "" {
		b.WriteString(e.Pos)
		b.WriteString(": ")
	}
	if e.Function != "" {
		b.WriteString(e.Function)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func declError(fn FunctionDeclaration, kind Kind, detail string) *Error {
	return &Error{Kind: kind, Function: fn.Name, Pos: fn.Pos, Detail: detail}
}
