package formatter

import (
	"bytes"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFormatOptions control YAML rendering.
type YAMLFormatOptions struct {
	Indent int
	// KeyOrder lists mapping keys to emit first, in this order.
	KeyOrder            []string
	LiteralBlockStrings bool
}

// FormatYAML renders v to YAML. Mapping keys follow opts.KeyOrder and
// multi-line strings can be emitted as literal blocks ("|").
func FormatYAML(v any, opts YAMLFormatOptions) (string, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", err
	}

	if len(opts.KeyOrder) > 0 {
		orderMappings(&node, Rank(opts.KeyOrder))
	}
	if opts.LiteralBlockStrings {
		applyLiteralStyle(&node)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(&node); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// orderMappings reorders the key/value pairs of every mapping node by rank.
func orderMappings(n *yaml.Node, rank map[string]int) {
	if n == nil {
		return
	}
	if n.Kind == yaml.MappingNode && len(n.Content)%2 == 0 {
		type pair struct{ k, v *yaml.Node }
		pairs := make([]pair, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			pairs = append(pairs, pair{n.Content[i], n.Content[i+1]})
		}
		sort.SliceStable(pairs, func(i, j int) bool {
			ri, iok := rank[pairs[i].k.Value]
			rj, jok := rank[pairs[j].k.Value]
			switch {
			case iok && jok:
				return ri < rj
			case iok != jok:
				return iok
			default:
				return false
			}
		})
		for i, p := range pairs {
			n.Content[2*i] = p.k
			n.Content[2*i+1] = p.v
		}
	}
	for _, c := range n.Content {
		orderMappings(c, rank)
	}
}

func applyLiteralStyle(n *yaml.Node) {
	if n == nil {
		return
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		n.Style = yaml.LiteralStyle
	}
	for _, c := range n.Content {
		applyLiteralStyle(c)
	}
}
