package migrate

import (
	"fmt"
	"strings"
)

// Error describes a migration failure with the location in the document
// where it happened. Err carries the slscmigrate sentinel for errors.Is.
type Error struct {
	Target  string // Target name ("" for document-level failures)
	Path    string // Slash-separated section names below the target
	Field   string // Property name if applicable
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
	Err     error
}

// Error implements the error interface with rich formatting.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("migration failed")

	location := e.Target
	if e.Path != "" {
		if location != "" {
			location += "/"
		}
		location += e.Path
	}
	if location != "" {
		fmt.Fprintf(&b, " in %s", location)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " [property: %s]", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Hint != "" {
		b.WriteString("\n\nHint: ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// scope tracks where in the document the migrator currently is, so errors
// can name it.
type scope struct {
	target string
	path   []string
}

func (s scope) enter(name string) scope {
	path := make([]string, len(s.path), len(s.path)+1)
	copy(path, s.path)
	return scope{target: s.target, path: append(path, name)}
}

func (s scope) fail(err error, field, hint, format string, args ...interface{}) *Error {
	return &Error{
		Target:  s.target,
		Path:    strings.Join(s.path, "/"),
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Hint:    hint,
		Err:     err,
	}
}
