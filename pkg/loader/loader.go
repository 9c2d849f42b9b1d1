// Package loader reads a site configuration from JSON, YAML or TOML and turns
// it into a validated site.SiteConfig.
//
// Failures are typed: *NotFoundError when the file is missing, *ParseError
// for malformed input, and *site.ValidationError for schema violations.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/samdoesblogs/sitecfg/pkg/site"
)

// Loader loads site configurations.
type Loader struct {
	log    logr.Logger
	format Format
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for format detection diagnostics.
func WithLogger(lgr logr.Logger) Option {
	return func(l *Loader) {
		l.log = lgr
	}
}

// WithFormat forces a format instead of detecting it.
func WithFormat(f Format) Option {
	return func(l *Loader) {
		l.format = f
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{log: logr.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads path with a default Loader.
func Load(path string) (site.SiteConfig, error) {
	return New().Load(path)
}

// LoadBytes decodes data with a default Loader.
func LoadBytes(data []byte, format Format) (site.SiteConfig, error) {
	return New(WithFormat(format)).LoadBytes(data)
}

// Load reads, decodes and validates the file at path.
func (l *Loader) Load(path string) (site.SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return site.SiteConfig{}, &NotFoundError{Path: path}
		}
		return site.SiteConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	format := l.format
	if format == FormatAuto {
		format = DetectFormat(path, data)
		l.log.V(1).Info("detected config format", "path", path, "format", string(format))
	}
	return l.decode(path, data, format)
}

// LoadBytes decodes and validates in-memory data. The format is sniffed from
// the content unless the Loader was built with WithFormat.
func (l *Loader) LoadBytes(data []byte) (site.SiteConfig, error) {
	format := l.format
	if format == FormatAuto {
		format = DetectFormat("", data)
		l.log.V(1).Info("detected config format", "format", string(format))
	}
	return l.decode("", data, format)
}

func (l *Loader) decode(path string, data []byte, format Format) (site.SiteConfig, error) {
	tree, err := parseTree(data, format)
	if err != nil {
		return site.SiteConfig{}, &ParseError{Path: path, Format: format, Err: err}
	}

	cfg, err := site.Decode(tree)
	if err != nil {
		return site.SiteConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return site.SiteConfig{}, err
	}
	l.log.V(1).Info("loaded site config", "path", path, "title", cfg.Title, "menu_items", len(cfg.Menu))
	return cfg, nil
}

// parseTree decodes a single document into a generic tree.
func parseTree(data []byte, format Format) (any, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New("empty input")
	}
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatYAML:
		return parseYAML(data)
	case FormatTOML:
		return parseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after top-level value")
	}
	return tree, nil
}

func parseYAML(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var tree any
	if err := dec.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty YAML document")
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return nil, errors.New("expected a single YAML document, found several")
	}
	if tree == nil {
		return nil, errors.New("empty YAML document")
	}
	return tree, nil
}

func parseTOML(data []byte) (any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return tree, nil
}
