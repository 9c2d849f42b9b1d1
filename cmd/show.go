package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdoesblogs/sitecfg/internal/formatter"
	"github.com/samdoesblogs/sitecfg/pkg/core"
)

var (
	showOutput = newOutputFlag(formatter.OutputYAML, formatter.Outputs...)
	getOutput  = newOutputFlag(formatter.OutputYAML, formatter.Outputs...)
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the loaded site config",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, cfg, err := loadSite(cmd)
		if err != nil {
			return err
		}
		return printNode(cmd, engine, cfg.ToMap(), showOutput.value)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <path-or-expression>",
	Short: "Print one field or the result of a CEL expression",
	Long: `Print one field of the site config, addressed by a dotted path such as
author.contacts.email or menu[1].path, or the result of a CEL expression with
the config bound to "_", such as _.menu.map(m, m.label).

The CEL function configured(string) reports whether a contact value is set
(neither empty nor "#").`,
	Example: `  sitecfg get title
  sitecfg get menu[0]
  sitecfg get '_.menu.filter(m, m.path.startsWith("/pages")).map(m, m.label)'
  sitecfg get 'configured(_.author.contacts.github)'`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := loadSite(cmd)
		if err != nil {
			return err
		}
		node, err := engine.Query(args[0])
		if err != nil {
			return err
		}
		return printNode(cmd, engine, node, getOutput.value)
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the navigation menu in display order",
	Args:  noArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, cfg, err := loadSite(cmd)
		if err != nil {
			return err
		}
		if len(cfg.Menu) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(no menu entries)")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), engine.RenderMenu(cfg, renderOptions(cmd)))
		return nil
	},
}

// printNode writes node in the requested output. Scalars in YAML output are
// printed bare so the result is easy to use in scripts.
func printNode(cmd *cobra.Command, engine *core.Engine, node any, out formatter.Output) error {
	switch node.(type) {
	case map[string]any, []any:
	default:
		if out == formatter.OutputYAML {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StringifyPreserveNewlines(node))
			return nil
		}
	}
	s, err := engine.Render(node, out, renderOptions(cmd))
	if err != nil {
		return err
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	fmt.Fprint(cmd.OutOrStdout(), s)
	return nil
}

func renderOptions(cmd *cobra.Command) core.RenderOptions {
	run := runSettings(cmd)
	width := formatter.TerminalWidth()
	return core.RenderOptions{
		// color only when writing to a terminal
		NoColor: run.NoColor || width == 0,
		Width:   width,
	}
}

func init() { //nolint:gochecknoinits
	showCmd.Flags().VarP(showOutput, "output", "o", showOutput.usage())
	getCmd.Flags().VarP(getOutput, "output", "o", getOutput.usage())
}
