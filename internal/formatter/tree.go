package formatter

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

const defaultMaxArrayInline = 3

// TreeOptions controls tree output formatting.
type TreeOptions struct {
	// KeyOrder lists map keys to print first, in this order.
	KeyOrder []string
	// NoValues hides values at leaf nodes (structure only).
	NoValues bool
	// MaxDepth limits tree depth (0 = unlimited).
	MaxDepth int
	// MaxArrayInline is the most scalar items shown inline (default 3).
	// Longer scalar lists become branches.
	MaxArrayInline int
	// MaxStringLen truncates long strings; 0 means no truncation.
	MaxStringLen int
}

// FormatAsTree renders data as an ASCII tree. Maps become branches labelled
// by key, lists get indexed children and scalars print inline at the leaves.
func FormatAsTree(node any, opts TreeOptions) string {
	if opts.MaxArrayInline == 0 {
		opts.MaxArrayInline = defaultMaxArrayInline
	}
	b := &treeBuilder{opts: opts, rank: Rank(opts.KeyOrder)}
	tree := treeprint.New()
	switch v := node.(type) {
	case map[string]any:
		b.mapTree(tree, v, 0)
	case []any:
		b.listTree(tree, v, 0)
	default:
		tree.AddNode(b.scalar(v))
	}
	return tree.String()
}

type treeBuilder struct {
	opts TreeOptions
	rank map[string]int
}

func (b *treeBuilder) mapTree(branch treeprint.Tree, m map[string]any, depth int) {
	for _, key := range OrderedKeys(m, b.rank) {
		b.add(branch, key, m[key], depth)
	}
}

func (b *treeBuilder) listTree(branch treeprint.Tree, arr []any, depth int) {
	for i, elem := range arr {
		b.add(branch, fmt.Sprintf("[%d]", i), elem, depth)
	}
}

func (b *treeBuilder) add(branch treeprint.Tree, key string, val any, depth int) {
	if b.opts.MaxDepth > 0 && depth >= b.opts.MaxDepth {
		branch.AddNode(key + ": ...")
		return
	}

	switch v := val.(type) {
	case map[string]any:
		if len(v) == 0 {
			b.leaf(branch, key, "{}")
			return
		}
		b.mapTree(branch.AddBranch(key), v, depth+1)
	case []any:
		switch {
		case len(v) == 0:
			b.leaf(branch, key, "[]")
		case isScalarArray(v) && len(v) <= b.opts.MaxArrayInline:
			b.leaf(branch, key, b.inline(v))
		default:
			b.listTree(branch.AddBranch(key), v, depth+1)
		}
	default:
		b.leaf(branch, key, b.scalar(v))
	}
}

func (b *treeBuilder) leaf(branch treeprint.Tree, key, value string) {
	if b.opts.NoValues {
		branch.AddNode(key)
		return
	}
	branch.AddNode(key + ": " + value)
}

func (b *treeBuilder) inline(arr []any) string {
	parts := make([]string, len(arr))
	for i, elem := range arr {
		parts[i] = b.scalar(elem)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (b *treeBuilder) scalar(v any) string {
	var s string
	switch val := v.(type) {
	case nil:
		s = "null"
	case string:
		s = escapeScalarString(val)
		if s == "" {
			s = `""`
		}
	case float64:
		if val == float64(int64(val)) {
			s = fmt.Sprintf("%d", int64(val))
		} else {
			s = fmt.Sprintf("%g", val)
		}
	default:
		s = fmt.Sprint(val)
	}
	return truncate(s, b.opts.MaxStringLen)
}

func isScalarArray(arr []any) bool {
	for _, elem := range arr {
		switch elem.(type) {
		case map[string]any, []any:
			return false
		}
	}
	return true
}
