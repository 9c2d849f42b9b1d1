package navigator

import (
	"fmt"

	"github.com/samdoesblogs/sitecfg/internal/formatter"
)

// ScalarValueKey labels the single row produced for a scalar node.
const ScalarValueKey = "(value)"

// Flatten converts a node into [path, value] rows, one per leaf. Map keys
// listed in order come first in that order; the rest follow alphabetically.
// List elements keep their position.
func Flatten(node any, order []string) [][]string {
	rank := formatter.Rank(order)
	var rows [][]string
	switch node.(type) {
	case map[string]any, []any:
		flatten(&rows, "", node, rank)
	default:
		rows = append(rows, []string{ScalarValueKey, formatter.Stringify(node)})
	}
	return rows
}

func flatten(rows *[][]string, path string, node any, rank map[string]int) {
	switch t := node.(type) {
	case map[string]any:
		if len(t) == 0 {
			*rows = append(*rows, []string{path, "{}"})
			return
		}
		for _, k := range formatter.OrderedKeys(t, rank) {
			next := k
			if path != "" {
				next = path + "." + k
			}
			flatten(rows, next, t[k], rank)
		}
	case []any:
		if len(t) == 0 {
			*rows = append(*rows, []string{path, "[]"})
			return
		}
		for i, v := range t {
			flatten(rows, fmt.Sprintf("%s[%d]", path, i), v, rank)
		}
	default:
		*rows = append(*rows, []string{path, formatter.Stringify(node)})
	}
}
