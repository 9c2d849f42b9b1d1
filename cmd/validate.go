package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samdoesblogs/sitecfg/internal/watch"
	"github.com/samdoesblogs/sitecfg/pkg/core"
	"github.com/samdoesblogs/sitecfg/pkg/logger"
	"github.com/samdoesblogs/sitecfg/pkg/site"
)

var watchMode bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the site config loads and is valid",
	Long: `Load and validate the site config. With --watch, re-validate every time
the file changes until interrupted; a bad edit is reported but does not stop
the watch.`,
	Args: noArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}
	path := runSettings(cmd).ConfigPath
	out := cmd.OutOrStdout()

	if !watchMode {
		cfg, err := engine.Check(path)
		if err != nil {
			return err
		}
		printValid(out, path, cfg)
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watchValidate(ctx, cmd, engine, path)
}

// watchValidate checks path once, then again on every change until ctx ends.
func watchValidate(ctx context.Context, cmd *cobra.Command, engine *core.Engine, path string) error {
	lgr := logger.FromContext(ctx)
	check := func(_ context.Context, p string) {
		cfg, err := engine.Check(p)
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), FormatError(err))
			return
		}
		printValid(cmd.OutOrStdout(), p, cfg)
	}

	check(ctx, path)
	w, err := watch.New(path, check, watch.WithLogger(*lgr))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "watching %s (Ctrl-C to stop)\n", w.Path())
	return w.Run(ctx)
}

func printValid(out io.Writer, path string, cfg site.SiteConfig) {
	fmt.Fprintf(out, "ok: %s (%q, %d menu entries, %d posts per page)\n", path, cfg.Title, len(cfg.Menu), cfg.PostsPerPage)
}

func init() { //nolint:gochecknoinits
	validateCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "re-validate whenever the file changes")
}
