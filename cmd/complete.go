package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdoesblogs/sitecfg/pkg/loader"
	"github.com/samdoesblogs/sitecfg/pkg/settings"
	"github.com/samdoesblogs/sitecfg/pkg/site"
)

// completePaths suggests field paths for `get`. It reads the config named by
// --config or the environment when it loads cleanly, else the default config.
func completePaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || strings.HasPrefix(toComplete, "_") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	path, _ := settings.ResolveConfigPath(configPath, flagChanged(cmd, "config"), os.Getenv(settings.ConfigEnvVar))
	cfg, err := loader.Load(path)
	if err != nil {
		cfg = site.Default()
	}

	var out []string
	for _, p := range fieldPaths(cfg.ToMap()) {
		if strings.HasPrefix(p, toComplete) {
			out = append(out, p)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// fieldPaths lists every addressable path in tree, branches included.
func fieldPaths(tree any) []string {
	var out []string
	var walk func(prefix string, node any)
	walk = func(prefix string, node any) {
		switch t := node.(type) {
		case map[string]any:
			keys := make([]string, 0, len(t))
			for k := range t {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				p := k
				if prefix != "" {
					p = prefix + "." + k
				}
				out = append(out, p)
				walk(p, t[k])
			}
		case []any:
			for i, v := range t {
				p := fmt.Sprintf("%s[%d]", prefix, i)
				out = append(out, p)
				walk(p, v)
			}
		}
	}
	walk("", tree)
	return out
}

func init() { //nolint:gochecknoinits
	getCmd.ValidArgsFunction = completePaths
}
