package loader

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/samdoesblogs/sitecfg/pkg/site"
)

// Encode serializes cfg in the given format. The output loads back into an
// identical configuration.
func Encode(cfg site.SiteConfig, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, FormatAuto:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("encode TOML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
