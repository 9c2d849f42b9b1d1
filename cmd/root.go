package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdoesblogs/sitecfg/pkg/core"
	"github.com/samdoesblogs/sitecfg/pkg/logger"
	"github.com/samdoesblogs/sitecfg/pkg/settings"
	"github.com/samdoesblogs/sitecfg/pkg/site"
)

var (
	configPath string
	debug      bool
	noColor    bool

	// siteHolder receives the loaded config. nil means the process-wide
	// holder; tests swap in a fresh one.
	siteHolder *site.Holder
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Load, validate and inspect a blog site configuration",
	Long: `sitecfg reads the site configuration of a blog (title, author, menu,
pagination, analytics and comments IDs) from JSON, YAML or TOML, validates it
and prints it or parts of it.

The config file is taken from --config, then $` + settings.ConfigEnvVar + `, then ` + settings.DefaultConfigPath + `.
A .env file in the working directory is read first.`,
	Example: `  sitecfg validate
  sitecfg show -o yaml
  sitecfg get author.contacts.email
  sitecfg get '_.menu.map(m, m.path)'
  sitecfg init site.toml -o toml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRun,
}

// setupRun resolves per-run settings and the logger and stores both in the
// command context.
func setupRun(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	run := settings.NewCliParams()
	run.MinLogLevel = logger.LevelFor(debug)
	run.NoColor = noColor || os.Getenv("NO_COLOR") != ""
	run.ConfigPath, run.ConfigSource = settings.ResolveConfigPath(configPath, flagChanged(cmd, "config"), os.Getenv(settings.ConfigEnvVar))

	lgr := logger.Get(run.MinLogLevel)
	lgr = logger.WithValues(lgr,
		logger.RootCommandKey, settings.CliBinaryName,
		logger.SubCommandKey, cmd.Name(),
		logger.ConfigPathKey, run.ConfigPath,
		logger.ConfigSourceKey, string(run.ConfigSource),
	)
	lgr.V(1).Info("resolved settings")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, lgr)
	ctx = settings.IntoContext(ctx, run)
	cmd.SetContext(ctx)
	return nil
}

// runSettings returns the settings stored by setupRun.
func runSettings(cmd *cobra.Command) *settings.Run {
	if run, ok := settings.FromContext(cmd.Context()); ok {
		return run
	}
	return settings.NewCliParams()
}

// newEngine builds an Engine wired to the command's logger.
func newEngine(cmd *cobra.Command) (*core.Engine, error) {
	lgr := logger.FromContext(cmd.Context())
	opts := []core.Option{core.WithLogger(*lgr)}
	if siteHolder != nil {
		opts = append(opts, core.WithHolder(siteHolder))
	}
	return core.New(opts...)
}

// loadSite loads the configured file into the holder.
func loadSite(cmd *cobra.Command) (*core.Engine, site.SiteConfig, error) {
	engine, err := newEngine(cmd)
	if err != nil {
		return nil, site.SiteConfig{}, err
	}
	cfg, err := engine.Load(runSettings(cmd).ConfigPath)
	if err != nil {
		return nil, site.SiteConfig{}, err
	}
	return engine, cfg, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", settings.DefaultConfigPath, "path to the site config (JSON, YAML or TOML); env "+settings.ConfigEnvVar)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
