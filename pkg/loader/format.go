package loader

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Format is a supported configuration file syntax.
type Format string

const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("unsupported config format %q: valid values are json, yaml, toml", s)
	}
}

// DetectFormat picks a format from the file extension, falling back to
// sniffing the content when the extension is unknown or missing.
func DetectFormat(path string, data []byte) Format {
	if f := FormatForPath(path); f != FormatAuto {
		return f
	}
	return sniffFormat(string(data))
}

// FormatForPath returns the format implied by the file extension, or
// FormatAuto when the extension is not recognized.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatAuto
	}
}

func sniffFormat(input string) Format {
	trimmed := strings.TrimSpace(input)
	// TOML [section] headers look like JSON arrays, so check TOML first.
	if isLikelyTOML(trimmed) {
		return FormatTOML
	}
	if strings.HasPrefix(trimmed, "{") {
		return FormatJSON
	}
	return FormatYAML
}

var (
	// [author], [[menu]], [author.contacts]
	tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	// title = "x", author.name = "x"
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

// isLikelyTOML reports TOML when any section header is present or a majority
// of non-comment lines are key = value pairs.
func isLikelyTOML(input string) bool {
	sections, pairs, nonEmpty := 0, 0, 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmpty++
		if tomlSectionPattern.MatchString(line) {
			sections++
		}
		if tomlKeyValuePattern.MatchString(line) {
			pairs++
		}
	}
	if sections > 0 {
		return true
	}
	return nonEmpty > 0 && pairs > nonEmpty/2
}
