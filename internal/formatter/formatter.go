// Package formatter renders configuration trees for the terminal: key/value
// tables, ASCII trees, and YAML, JSON or TOML documents.
package formatter

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"reflect"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	defaultHeaderFG   = lipgloss.Color("12")
	defaultHeaderBG   = lipgloss.Color("236")
	defaultKeyColor   = lipgloss.Color("14")
	defaultValueColor = lipgloss.Color("248")
	defaultSeparator  = lipgloss.Color("240")

	headerStyle    lipgloss.Style
	keyStyle       lipgloss.Style
	valueStyle     lipgloss.Style
	separatorStyle lipgloss.Style
)

// TableColors controls the rendered colors for tables.
// Nil fields fall back to the defaults (ANSI 256 codes).
type TableColors struct {
	HeaderFG       color.Color
	HeaderBG       color.Color
	KeyColor       color.Color
	ValueColor     color.Color
	SeparatorColor color.Color
}

func applyTableTheme(tc TableColors) {
	hfg := tc.HeaderFG
	hbg := tc.HeaderBG
	kc := tc.KeyColor
	vc := tc.ValueColor
	sep := tc.SeparatorColor
	if hfg == nil {
		hfg = defaultHeaderFG
	}
	if hbg == nil {
		hbg = defaultHeaderBG
	}
	if kc == nil {
		kc = defaultKeyColor
	}
	if vc == nil {
		vc = defaultValueColor
	}
	if sep == nil {
		sep = defaultSeparator
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(hfg).Background(hbg)
	keyStyle = lipgloss.NewStyle().Foreground(kc)
	valueStyle = lipgloss.NewStyle().Foreground(vc)
	separatorStyle = lipgloss.NewStyle().Foreground(sep)
}

//nolint:gochecknoinits // initialize default table theme for package consumers
func init() {
	applyTableTheme(TableColors{})
}

// Stringify returns a compact single-line representation of a tree node.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return escapeScalarString(t)
	case bool, int, int64, float64, json.Number:
		return fmt.Sprint(t)
	case map[string]any, []any:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() { //nolint:exhaustive // only complex types need JSON marshaling
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		case reflect.Ptr:
			if !rv.IsNil() {
				if b, err := json.Marshal(v); err == nil {
					return string(b)
				}
			}
		}
		return fmt.Sprintf("%v", v)
	}
}

// StringifyPreserveNewlines is Stringify but keeps line breaks in strings, for
// printing a single scalar on its own.
func StringifyPreserveNewlines(v any) string {
	if s, ok := v.(string); ok {
		return normalizeScalarString(s, false)
	}
	return Stringify(v)
}

func escapeScalarString(s string) string {
	return normalizeScalarString(s, true)
}

// normalizeScalarString folds CRLF and CR into LF. With escapeNewlines the
// result is kept on one line by rendering LF as a literal "\n".
func normalizeScalarString(s string, escapeNewlines bool) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if escapeNewlines {
		s = strings.ReplaceAll(s, "\n", "\\n")
	}
	return s
}

// truncate shortens s to maxLen display cells, ending in "..." when there is
// room for it.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// padRight pads s with spaces to width display cells, cutting it if longer.
func padRight(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

// TerminalWidth returns the width of stdout, or 0 when stdout is not a
// terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// TableOptions controls RenderRows.
type TableOptions struct {
	// Headers names the two columns. Defaults to KEY and VALUE.
	Headers [2]string
	NoColor bool
	// MaxWidth caps the table width; 0 means size to content.
	MaxWidth int
}

// RenderRows prints a two-column table for precomputed [key, value] rows,
// sized to fit its content.
func RenderRows(rows [][]string, opts TableOptions) string {
	const sepWidth = 2
	sep := strings.Repeat(" ", sepWidth)

	headers := opts.Headers
	if headers[0] == "" {
		headers[0] = "KEY"
	}
	if headers[1] == "" {
		headers[1] = "VALUE"
	}

	keyWidth := runewidth.StringWidth(headers[0])
	valueWidth := runewidth.StringWidth(headers[1])
	for _, row := range rows {
		if len(row) > 0 {
			keyWidth = max(keyWidth, runewidth.StringWidth(row[0]))
		}
		if len(row) > 1 {
			valueWidth = max(valueWidth, runewidth.StringWidth(row[1]))
		}
	}

	if opts.MaxWidth > 0 && keyWidth+sepWidth+valueWidth > opts.MaxWidth {
		available := max(opts.MaxWidth-sepWidth, 10)
		// key column gets at most 40%, the rest goes to values
		keyWidth = min(keyWidth, max(available*40/100, 5))
		valueWidth = max(available-keyWidth, 5)
	}

	var b strings.Builder

	headerKey := padRight(headers[0], keyWidth)
	headerValue := padRight(headers[1], valueWidth)
	if !opts.NoColor {
		headerKey = headerStyle.Render(headerKey)
		headerValue = headerStyle.Render(headerValue)
	}
	b.WriteString(strings.TrimRight(headerKey+sep+headerValue, " ") + "\n")

	separator := strings.Repeat("─", keyWidth+sepWidth+valueWidth)
	if !opts.NoColor {
		separator = separatorStyle.Render(separator)
	}
	b.WriteString(separator + "\n")

	for _, row := range rows {
		key := ""
		val := ""
		if len(row) > 0 {
			key = row[0]
		}
		if len(row) > 1 {
			val = row[1]
		}
		keyStr := padRight(truncate(key, keyWidth), keyWidth)
		valStr := truncate(val, valueWidth)
		if !opts.NoColor {
			keyStr = keyStyle.Render(keyStr)
			valStr = valueStyle.Render(valStr)
		}
		b.WriteString(strings.TrimRight(keyStr+sep+valStr, " ") + "\n")
	}

	return b.String()
}

// OrderedKeys returns the keys of m: those present in rank first, by rank,
// then the rest alphabetically.
func OrderedKeys(m map[string]any, rank map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, iok := rank[keys[i]]
		rj, jok := rank[keys[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// Rank maps each key in order to its first position.
func Rank(order []string) map[string]int {
	rank := make(map[string]int, len(order))
	for i, k := range order {
		if _, ok := rank[k]; !ok {
			rank[k] = i
		}
	}
	return rank
}
