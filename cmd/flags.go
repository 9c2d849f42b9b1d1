package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/samdoesblogs/sitecfg/internal/formatter"
	"github.com/samdoesblogs/sitecfg/pkg/loader"
)

// outputFlag is a pflag.Value restricted to a subset of formatter outputs.
type outputFlag struct {
	value   formatter.Output
	allowed []formatter.Output
}

var _ pflag.Value = (*outputFlag)(nil)

func newOutputFlag(def formatter.Output, allowed ...formatter.Output) *outputFlag {
	return &outputFlag{value: def, allowed: allowed}
}

func (o *outputFlag) String() string { return string(o.value) }

func (o *outputFlag) Type() string { return "format" }

func (o *outputFlag) Set(s string) error {
	out, err := formatter.ParseOutput(s)
	if err == nil {
		for _, a := range o.allowed {
			if a == out {
				o.value = out
				return nil
			}
		}
	}
	return fmt.Errorf("valid values are %s", strings.Join(o.names(), ", "))
}

func (o *outputFlag) names() []string {
	names := make([]string, len(o.allowed))
	for i, a := range o.allowed {
		names[i] = string(a)
	}
	return names
}

func (o *outputFlag) usage() string {
	return "output format: " + strings.Join(o.names(), "|")
}

// flagError turns flag parsing failures into usage errors (exit 2).
func flagError(_ *cobra.Command, err error) error {
	return &usageError{err: err}
}

// loaderFormat maps a document output to the loader's encoding.
func loaderFormat(out formatter.Output) loader.Format {
	switch out {
	case formatter.OutputYAML:
		return loader.FormatYAML
	case formatter.OutputTOML:
		return loader.FormatTOML
	default:
		return loader.FormatJSON
	}
}

// noArgs and exactArgs wrap cobra's validators so that argument mistakes exit
// with the usage code.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
