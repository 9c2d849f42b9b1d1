package formatter

import (
	"strings"
	"testing"
)

func sampleTree() map[string]any {
	return map[string]any{
		"title":        "Sam Does Blogs",
		"postsPerPage": int64(4),
		"menu": []any{
			map[string]any{"label": "Articles", "path": "/"},
			map[string]any{"label": "About me", "path": "/pages/about"},
		},
		"author": map[string]any{
			"name":     "Samuel Chan",
			"contacts": map[string]any{"email": "me@samuelchan.dev", "rss": "#"},
		},
	}
}

func TestFormatAsTreeFollowsKeyOrder(t *testing.T) {
	out := FormatAsTree(sampleTree(), TreeOptions{KeyOrder: []string{"title", "postsPerPage", "menu", "label", "path", "author", "name", "contacts", "email", "rss"}})

	if !strings.HasPrefix(out, ".") {
		t.Fatalf("expected root marker, got:\n%s", out)
	}
	order := []string{"title: Sam Does Blogs", "postsPerPage: 4", "menu", "[0]", "label: Articles", "path: /", "[1]", "author", "name: Samuel Chan", "contacts", "email: me@samuelchan.dev", "rss: #"}
	last := -1
	for _, want := range order {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
		if idx < last {
			t.Fatalf("expected %q after previous entries:\n%s", want, out)
		}
		last = idx
	}
}

func TestFormatAsTreeBoxDrawing(t *testing.T) {
	out := FormatAsTree(sampleTree(), TreeOptions{})
	if !strings.Contains(out, "├──") || !strings.Contains(out, "└──") {
		t.Fatalf("expected box drawing characters, got:\n%s", out)
	}
}

func TestFormatAsTreeNoValues(t *testing.T) {
	out := FormatAsTree(sampleTree(), TreeOptions{NoValues: true})
	if strings.Contains(out, "Samuel Chan") {
		t.Fatalf("expected values hidden, got:\n%s", out)
	}
	if !strings.Contains(out, "name") {
		t.Fatalf("expected keys kept, got:\n%s", out)
	}
}

func TestFormatAsTreeMaxDepth(t *testing.T) {
	out := FormatAsTree(sampleTree(), TreeOptions{MaxDepth: 1})
	if strings.Contains(out, "Samuel Chan") {
		t.Fatalf("expected nested values cut, got:\n%s", out)
	}
	if !strings.Contains(out, "name: ...") {
		t.Fatalf("expected depth marker, got:\n%s", out)
	}
}

func TestFormatAsTreeLists(t *testing.T) {
	out := FormatAsTree(map[string]any{
		"short": []any{"a", "b"},
		"long":  []any{"1", "2", "3", "4"},
		"empty": []any{},
		"obj":   map[string]any{},
		"blank": "",
		"nil":   nil,
	}, TreeOptions{})
	for _, want := range []string{"short: [a, b]", "long", "[3]: 4", "empty: []", "obj: {}", `blank: ""`, "nil: null"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFormatAsTreeScalarRoot(t *testing.T) {
	out := FormatAsTree("Samuel Chan", TreeOptions{})
	if !strings.Contains(out, "Samuel Chan") {
		t.Fatalf("expected scalar leaf, got:\n%s", out)
	}
}

func TestFormatAsTreeTruncatesStrings(t *testing.T) {
	out := FormatAsTree(map[string]any{"bio": "Software engineer writing about Go"}, TreeOptions{MaxStringLen: 12})
	if !strings.Contains(out, "bio: Software ...") {
		t.Fatalf("expected truncated bio, got:\n%s", out)
	}
}
