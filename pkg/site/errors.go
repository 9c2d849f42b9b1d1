package site

import (
	"fmt"
	"strings"
)

// FieldIssue is a single schema violation at a field path such as
// "author.name" or "menu[1].label". An empty Path refers to the document root.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i FieldIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError reports a well-formed configuration that violates the
// schema. It lists every issue found, not just the first.
type ValidationError struct {
	Issues []FieldIssue `json:"issues"`
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid site config"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return "invalid site config: " + strings.Join(parts, "; ")
}

// Paths returns the failing field paths in report order.
func (e *ValidationError) Paths() []string {
	out := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		out = append(out, issue.Path)
	}
	return out
}

// Has reports whether an issue was recorded for path.
func (e *ValidationError) Has(path string) bool {
	for _, issue := range e.Issues {
		if issue.Path == path {
			return true
		}
	}
	return false
}

func (e *ValidationError) addf(path, format string, args ...any) {
	e.Issues = append(e.Issues, FieldIssue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// errOrNil keeps a typed nil *ValidationError from escaping as a non-nil error.
func (e *ValidationError) errOrNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}
