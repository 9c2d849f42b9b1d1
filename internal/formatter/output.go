package formatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Output names a rendering of a configuration tree.
type Output string

const (
	OutputYAML  Output = "yaml"
	OutputJSON  Output = "json"
	OutputTOML  Output = "toml"
	OutputTable Output = "table"
	OutputTree  Output = "tree"
)

// Outputs lists every supported output, in help order.
var Outputs = []Output{OutputYAML, OutputJSON, OutputTOML, OutputTable, OutputTree}

// ParseOutput parses an output name, case-insensitively.
func ParseOutput(s string) (Output, error) {
	o := Output(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Outputs {
		if o == known {
			return o, nil
		}
	}
	names := make([]string, len(Outputs))
	for i, known := range Outputs {
		names[i] = string(known)
	}
	return "", fmt.Errorf("invalid output %q: valid values are %s", s, strings.Join(names, ", "))
}

// ErrTOMLNeedsTable is returned when a non-object node is rendered as TOML.
var ErrTOMLNeedsTable = errors.New("TOML output needs an object at the top level")

// Options control Render.
type Options struct {
	// KeyOrder lists map keys to print first, in this order.
	KeyOrder []string
	NoColor  bool
}

// Render formats a tree as a YAML, JSON or TOML document or as an ASCII
// tree. Tables are built from rows; see RenderRows.
func Render(node any, out Output, opts Options) (string, error) {
	switch out {
	case OutputYAML:
		return FormatYAML(node, YAMLFormatOptions{KeyOrder: opts.KeyOrder, LiteralBlockStrings: true})
	case OutputJSON:
		return FormatJSON(node, opts.KeyOrder)
	case OutputTOML:
		return FormatTOML(node)
	case OutputTree:
		return FormatAsTree(node, TreeOptions{KeyOrder: opts.KeyOrder}), nil
	case OutputTable:
		return "", errors.New("table output is rendered from rows")
	default:
		return "", fmt.Errorf("unsupported output %q", out)
	}
}

// FormatJSON renders node as indented JSON with object keys in order.
func FormatJSON(node any, order []string) (string, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, node, Rank(order), ""); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func writeJSON(buf *bytes.Buffer, node any, rank map[string]int, indent string) error {
	const step = "  "
	switch t := node.(type) {
	case map[string]any:
		if len(t) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, k := range OrderedKeys(t, rank) {
			if i > 0 {
				buf.WriteString(",\n")
			}
			key, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.WriteString(indent + step)
			buf.Write(key)
			buf.WriteString(": ")
			if err := writeJSON(buf, t[k], rank, indent+step); err != nil {
				return err
			}
		}
		buf.WriteString("\n" + indent + "}")
	case []any:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, v := range t {
			if i > 0 {
				buf.WriteString(",\n")
			}
			buf.WriteString(indent + step)
			if err := writeJSON(buf, v, rank, indent+step); err != nil {
				return err
			}
		}
		buf.WriteString("\n" + indent + "]")
	default:
		var scalar bytes.Buffer
		enc := json.NewEncoder(&scalar)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		buf.Write(bytes.TrimRight(scalar.Bytes(), "\n"))
	}
	return nil
}

// FormatTOML renders an object node as TOML. Keys come out sorted.
func FormatTOML(node any) (string, error) {
	m, ok := node.(map[string]any)
	if !ok {
		return "", ErrTOMLNeedsTable
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encode TOML: %w", err)
	}
	return buf.String(), nil
}
