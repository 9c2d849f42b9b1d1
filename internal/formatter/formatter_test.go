package formatter

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStringifyScalars(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: nil, want: ""},
		{in: "hello", want: "hello"},
		{in: "line1\nline2", want: `line1\nline2`},
		{in: "a\r\nb", want: `a\nb`},
		{in: true, want: "true"},
		{in: 4, want: "4"},
		{in: int64(4), want: "4"},
		{in: 1.5, want: "1.5"},
		{in: json.Number("12"), want: "12"},
	}
	for _, tt := range tests {
		if got := Stringify(tt.in); got != tt.want {
			t.Errorf("Stringify(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStringifyComposites(t *testing.T) {
	got := Stringify(map[string]any{"label": "About", "path": "/pages/about"})
	if got != `{"label":"About","path":"/pages/about"}` {
		t.Fatalf("unexpected map rendering %q", got)
	}
	got = Stringify([]any{"a", int64(1)})
	if got != `["a",1]` {
		t.Fatalf("unexpected list rendering %q", got)
	}
	type item struct {
		Label string `json:"label"`
	}
	if got := Stringify(&item{Label: "x"}); got != `{"label":"x"}` {
		t.Fatalf("unexpected struct rendering %q", got)
	}
}

func TestStringifyPreserveNewlines(t *testing.T) {
	lines := strings.Split(StringifyPreserveNewlines("line1\r\nline2"), "\n")
	if len(lines) != 2 || lines[0] != "line1" || lines[1] != "line2" {
		t.Fatalf("expected lines split, got %#v", lines)
	}
	if got := StringifyPreserveNewlines(int64(3)); got != "3" {
		t.Fatalf("expected 3, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("expected no truncation, got %q", got)
	}
	if got := truncate("this is a long bio", 10); got != "this is..." {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("expected hard cut, got %q", got)
	}
	if got := truncate("日本語テキスト", 7); got != "日本..." {
		t.Fatalf("expected wide-rune truncation, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("expected padding, got %q", got)
	}
	if got := padRight("abcdef", 3); got != "abc" {
		t.Fatalf("expected cut, got %q", got)
	}
	if got := padRight("日本", 6); got != "日本  " {
		t.Fatalf("expected display-width padding, got %q", got)
	}
}

func TestRenderRowsNoColor(t *testing.T) {
	rows := [][]string{
		{"title", "Sam Does Blogs"},
		{"postsPerPage", "4"},
	}
	out := RenderRows(rows, TableOptions{NoColor: true})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "KEY"+strings.Repeat(" ", 11)+"VALUE" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "──") {
		t.Fatalf("expected separator, got %q", lines[1])
	}
	if lines[2] != "title"+strings.Repeat(" ", 9)+"Sam Does Blogs" {
		t.Fatalf("unexpected row %q", lines[2])
	}
	if lines[3] != "postsPerPage  4" {
		t.Fatalf("unexpected row %q", lines[3])
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("expected no ANSI escapes with NoColor")
	}
}

func TestRenderRowsHeadersAndWidth(t *testing.T) {
	rows := [][]string{{"Articles", "/"}, {"A very long menu label indeed", "https://blog.samuelchan.dev/pages/about"}}
	out := RenderRows(rows, TableOptions{Headers: [2]string{"LABEL", "PATH"}, NoColor: true, MaxWidth: 40})
	if !strings.HasPrefix(out, "LABEL") || !strings.Contains(out, "PATH") {
		t.Fatalf("expected custom headers, got:\n%s", out)
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if w := len([]rune(line)); w > 40 {
			t.Fatalf("line exceeds max width (%d): %q", w, line)
		}
	}
	if !strings.Contains(out, "...") {
		t.Fatalf("expected truncated values, got:\n%s", out)
	}
}

func TestRenderRowsEmpty(t *testing.T) {
	out := RenderRows(nil, TableOptions{NoColor: true})
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected only header and separator, got:\n%s", out)
	}
}

func TestOrderedKeys(t *testing.T) {
	m := map[string]any{"zeta": 1, "author": 2, "title": 3, "alpha": 4}
	got := OrderedKeys(m, Rank([]string{"title", "author"}))
	want := []string{"title", "author", "alpha", "zeta"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
