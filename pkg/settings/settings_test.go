package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	want := Run{
		MinLogLevel:  0,
		ConfigPath:   "./config.json",
		ConfigSource: SourceDefault,
	}
	if *got != want {
		t.Errorf("NewCliParams() = %+v, want %+v", got, want)
	}
}

func TestResolveConfigPath(t *testing.T) {
	tests := []struct {
		name       string
		flagValue  string
		flagSet    bool
		env        string
		wantPath   string
		wantSource ConfigSource
	}{
		{
			name:       "explicit flag wins over env",
			flagValue:  "site.yaml",
			flagSet:    true,
			env:        "/etc/blog/config.toml",
			wantPath:   "site.yaml",
			wantSource: SourceFlag,
		},
		{
			name:       "env used when flag not set",
			flagValue:  DefaultConfigPath,
			env:        "/etc/blog/config.toml",
			wantPath:   "/etc/blog/config.toml",
			wantSource: SourceEnv,
		},
		{
			name:       "flag default",
			flagValue:  DefaultConfigPath,
			wantPath:   DefaultConfigPath,
			wantSource: SourceDefault,
		},
		{
			name:       "nothing set",
			wantPath:   DefaultConfigPath,
			wantSource: SourceDefault,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, source := ResolveConfigPath(tt.flagValue, tt.flagSet, tt.env)
			if path != tt.wantPath || source != tt.wantSource {
				t.Errorf("ResolveConfigPath() = (%q, %q), want (%q, %q)", path, source, tt.wantPath, tt.wantSource)
			}
		})
	}
}
