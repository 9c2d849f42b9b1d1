// Package navigator resolves a field path or CEL expression against a
// configuration tree and flattens trees into key/value rows.
package navigator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
)

// EvaluateFunc evaluates a CEL expression with root bound to "_".
type EvaluateFunc func(expr string, root any) (any, error)

// Navigator resolves paths. Simple dotted and bracket paths are walked
// directly; anything else goes to the CEL evaluator.
type Navigator struct {
	eval EvaluateFunc
	log  logr.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for path resolution diagnostics.
func WithLogger(lgr logr.Logger) Option {
	return func(n *Navigator) {
		n.log = lgr
	}
}

// New creates a Navigator. eval may be nil, in which case only simple paths
// resolve.
func New(eval EvaluateFunc, opts ...Option) *Navigator {
	n := &Navigator{eval: eval, log: logr.Discard()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NodeAtPath returns the node addressed by path. Examples:
//
//	author.contacts.email
//	menu[2].path
//	menu.0.label
//	_.menu.map(m, m.label)
func (n *Navigator) NodeAtPath(root any, path string) (any, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "_" {
		return root, nil
	}

	if !IsExpression(trimmed) {
		n.log.V(1).Info("resolving simple path", "path", trimmed)
		return simpleNavigate(root, trimmed)
	}

	if n.eval == nil {
		return nil, fmt.Errorf("expression %q needs an evaluator", trimmed)
	}
	n.log.V(1).Info("evaluating expression", "expr", trimmed)
	result, err := n.eval(trimmed, root)
	if err != nil {
		return nil, fmt.Errorf("CEL evaluation error: %w", err)
	}
	return result, nil
}

// IsExpression reports whether path needs CEL rather than a simple walk.
func IsExpression(path string) bool {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "_.") || strings.HasPrefix(trimmed, "_[") {
		return true
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, `"`) || strings.HasPrefix(trimmed, "'") {
		return true
	}
	// [0] and ["key"] are navigation; [1, 2] is a list literal.
	if strings.HasPrefix(trimmed, "[") {
		if end := strings.Index(trimmed, "]"); end > 0 {
			inside := trimmed[1:end]
			if _, err := strconv.Atoi(inside); err == nil {
				return false
			}
			if strings.HasPrefix(inside, `"`) && strings.HasSuffix(inside, `"`) {
				return false
			}
		}
		return true
	}
	if strings.Contains(trimmed, "(") && strings.Contains(trimmed, ")") {
		return true
	}
	for _, op := range []string{"==", "!=", "<=", ">=", "<", ">", "&&", "||", "+", "?"} {
		if strings.Contains(trimmed, op) {
			return true
		}
	}
	return false
}

func simpleNavigate(root any, path string) (any, error) {
	cur := root
	walked := ""
	for _, step := range parsePath(path) {
		next, err := navigateStep(cur, step)
		if err != nil {
			if walked == "" {
				return nil, err
			}
			return nil, fmt.Errorf("%s: %w", walked, err)
		}
		cur = next
		walked = appendStep(walked, step)
	}
	return cur, nil
}

// parsePath splits "menu[0].label" and "menu.0.label" into [menu 0 label].
func parsePath(path string) []string {
	var parts []string
	var current strings.Builder

	for i := 0; i < len(path); i++ {
		ch := path[i]
		switch ch {
		case '.':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		case '[':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			if j < len(path) {
				parts = append(parts, path[i+1:j])
				i = j
			}
		default:
			current.WriteByte(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func navigateStep(cur any, step string) (any, error) {
	key := step
	if len(key) > 1 && strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) {
		key = key[1 : len(key)-1]
	}

	switch t := cur.(type) {
	case map[string]any:
		v, ok := t[key]
		if !ok {
			return nil, fmt.Errorf("key '%s' not found", key)
		}
		return v, nil
	case []any:
		idx, err := strconv.Atoi(step)
		if err != nil {
			return nil, fmt.Errorf("expected numeric index into list but got '%s'", step)
		}
		if idx < 0 || idx >= len(t) {
			return nil, fmt.Errorf("index %d out of range (size %d)", idx, len(t))
		}
		return t[idx], nil
	default:
		return nil, fmt.Errorf("cannot descend into %s at '%s'", describe(cur), step)
	}
}

func appendStep(path, step string) string {
	if _, err := strconv.Atoi(step); err == nil {
		return path + "[" + step + "]"
	}
	if path == "" {
		return step
	}
	return path + "." + step
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
