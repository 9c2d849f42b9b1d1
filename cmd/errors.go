package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdoesblogs/sitecfg/pkg/loader"
	"github.com/samdoesblogs/sitecfg/pkg/site"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitInvalid = 2
)

// usageError marks bad command-line input, such as an unknown output format.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by Execute to a process exit code:
// missing files and generic failures exit 1, parse, validation and usage
// errors exit 2.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var (
		nf    *loader.NotFoundError
		pe    *loader.ParseError
		verr  *site.ValidationError
		usage *usageError
	)
	switch {
	case errors.As(err, &nf):
		return ExitFailure
	case errors.As(err, &pe), errors.As(err, &verr), errors.As(err, &usage):
		return ExitInvalid
	default:
		return ExitFailure
	}
}

// FormatError renders err for stderr. Validation failures list one field
// path per line.
func FormatError(err error) string {
	var (
		nf   *loader.NotFoundError
		pe   *loader.ParseError
		verr *site.ValidationError
	)
	switch {
	case errors.As(err, &verr):
		var b strings.Builder
		b.WriteString("Error: invalid site config:\n")
		for _, issue := range verr.Issues {
			fmt.Fprintf(&b, "  %s: %s\n", issue.Path, issue.Message)
		}
		return b.String()
	case errors.As(err, &nf):
		return fmt.Sprintf("Error: config file not found: %s\n", nf.Path)
	case errors.As(err, &pe):
		return fmt.Sprintf("Error: %v\n", pe)
	default:
		return fmt.Sprintf("Error: %v\n", err)
	}
}
