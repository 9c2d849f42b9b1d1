package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/samdoesblogs/sitecfg/pkg/settings"
	"github.com/samdoesblogs/sitecfg/pkg/site"
)

func TestFieldPaths(t *testing.T) {
	paths := fieldPaths(site.Default().ToMap())
	assert.Contains(t, paths, "author")
	assert.Contains(t, paths, "author.contacts.email")
	assert.Contains(t, paths, "menu[2]")
	assert.Contains(t, paths, "menu[2].path")
	assert.NotContains(t, paths, "menu.2.path")
}

func TestCompletePaths(t *testing.T) {
	t.Setenv(settings.ConfigEnvVar, "")
	resetFlags(rootCmd)
	path := writeConfig(t, "config.json", site.Default())
	configPath = path

	got, directive := completePaths(getCmd, nil, "author.contacts.")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.ElementsMatch(t, []string{
		"author.contacts.email",
		"author.contacts.github",
		"author.contacts.rss",
		"author.contacts.twitter",
	}, got)

	got, _ = completePaths(getCmd, nil, "_.menu")
	assert.Empty(t, got)

	got, _ = completePaths(getCmd, []string{"title"}, "")
	assert.Empty(t, got)
}
