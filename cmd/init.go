package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/samdoesblogs/sitecfg/internal/formatter"
	"github.com/samdoesblogs/sitecfg/pkg/loader"
	"github.com/samdoesblogs/sitecfg/pkg/logger"
	"github.com/samdoesblogs/sitecfg/pkg/site"
)

var (
	initForce  bool
	initOutput = newOutputFlag(formatter.OutputJSON, formatter.OutputJSON, formatter.OutputYAML, formatter.OutputTOML)
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default site config",
	Long: `Write the default site config to path (default: the resolved --config
path). The format follows -o, or the file extension when -o is not given.
Existing files are kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := runSettings(cmd).ConfigPath
	if len(args) == 1 {
		path = args[0]
	}

	format := loaderFormat(initOutput.value)
	if !flagChanged(cmd, "output") {
		if detected := loader.FormatForPath(path); detected != loader.FormatAuto {
			format = detected
		}
	}

	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return &usageError{err: fmt.Errorf("%s already exists (use --force to overwrite)", path)}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	data, err := loader.Encode(site.Default(), format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config files are meant to be readable
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.FromContext(cmd.Context()).V(1).Info("wrote default config", "path", path, "format", string(format))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", path, format)
	return nil
}

func init() { //nolint:gochecknoinits
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	initCmd.Flags().VarP(initOutput, "output", "o", initOutput.usage())
}
