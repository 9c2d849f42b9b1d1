// Package settings provides build metadata, per-run CLI settings, and the
// context helpers used to carry them through sitecfg commands.
package settings

const (
	// CliBinaryName is the canonical binary name for this tool.
	CliBinaryName = "sitecfg"
	// DefaultConfigPath is used when neither --config nor ConfigEnvVar is set.
	DefaultConfigPath = "./config.json"
	// ConfigEnvVar names the environment variable holding the config path.
	ConfigEnvVar = "SITECFG_CONFIG"
)

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-dev",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// ConfigSource records where the config path came from.
type ConfigSource string

const (
	SourceFlag    ConfigSource = "flag"
	SourceEnv     ConfigSource = "env"
	SourceDefault ConfigSource = "default"
)

// Run holds the settings of a single CLI invocation.
type Run struct {
	MinLogLevel  int8
	ConfigPath   string
	ConfigSource ConfigSource
	NoColor      bool
}

// NewCliParams returns the defaults for a CLI run.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel:  0,
		ConfigPath:   DefaultConfigPath,
		ConfigSource: SourceDefault,
		NoColor:      false,
	}
}

// ResolveConfigPath applies the precedence flag > environment > default.
// flagSet reports whether --config was given explicitly.
func ResolveConfigPath(flagValue string, flagSet bool, env string) (string, ConfigSource) {
	if flagSet && flagValue != "" {
		return flagValue, SourceFlag
	}
	if env != "" {
		return env, SourceEnv
	}
	if flagValue != "" {
		return flagValue, SourceDefault
	}
	return DefaultConfigPath, SourceDefault
}
