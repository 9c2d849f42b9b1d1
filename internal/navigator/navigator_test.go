package navigator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdoesblogs/sitecfg/internal/cel"
	"github.com/samdoesblogs/sitecfg/pkg/site"
)

func celNavigator(t *testing.T) *Navigator {
	t.Helper()
	eval, err := cel.NewEvaluator()
	require.NoError(t, err)
	return New(eval.Evaluate)
}

func TestNodeAtPathSimple(t *testing.T) {
	nav := New(nil)
	root := site.Default().ToMap()

	tests := []struct {
		path string
		want any
	}{
		{path: "title", want: "Sam Does Blogs"},
		{path: "postsPerPage", want: int64(4)},
		{path: "menu[0].label", want: "Articles"},
		{path: "menu.2.path", want: "/pages/contacts"},
		{path: "author.contacts.email", want: "me@samuelchan.dev"},
		{path: `author["name"]`, want: "Samuel Chan"},
		{path: " author.photo ", want: "/photo.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := nav.NodeAtPath(root, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeAtPathRoot(t *testing.T) {
	nav := New(nil)
	root := site.Default().ToMap()
	for _, path := range []string{"", "_", "  "} {
		got, err := nav.NodeAtPath(root, path)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	}
}

func TestNodeAtPathErrors(t *testing.T) {
	nav := New(nil)
	root := site.Default().ToMap()

	tests := []struct {
		path    string
		wantMsg string
	}{
		{path: "nope", wantMsg: "key 'nope' not found"},
		{path: "menu[5]", wantMsg: "menu: index 5 out of range (size 3)"},
		{path: "menu.first", wantMsg: "expected numeric index"},
		{path: "title.length", wantMsg: "title: cannot descend into string"},
		{path: "_.menu.map(m, m.label)", wantMsg: "needs an evaluator"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := nav.NodeAtPath(root, tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestNodeAtPathCEL(t *testing.T) {
	nav := celNavigator(t)
	root := site.Default().ToMap()

	got, err := nav.NodeAtPath(root, "_.menu.map(m, m.path)")
	require.NoError(t, err)
	assert.Equal(t, []any{"/", "/pages/about", "/pages/contacts"}, got)

	got, err = nav.NodeAtPath(root, "_.postsPerPage >= 1")
	require.NoError(t, err)
	assert.Equal(t, true, got)

	_, err = nav.NodeAtPath(root, "_.menu[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CEL evaluation error")
}

func TestNodeAtPathUsesInjectedEvaluator(t *testing.T) {
	var gotExpr string
	nav := New(func(expr string, _ any) (any, error) {
		gotExpr = expr
		return nil, errors.New("boom")
	})
	_, err := nav.NodeAtPath(map[string]any{}, "size(_.menu)")
	require.Error(t, err)
	assert.Equal(t, "size(_.menu)", gotExpr)
}

func TestIsExpression(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"title", false},
		{"menu[0].label", false},
		{"[0]", false},
		{`["title"]`, false},
		{"_.title", true},
		{"_[0]", true},
		{"[1, 2]", true},
		{"size(_.menu)", true},
		{"_.postsPerPage > 2", true},
		{`"literal"`, true},
		{"{'a': 1}", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpression(tt.path))
		})
	}
}

func TestParsePath(t *testing.T) {
	assert.Equal(t, []string{"menu", "0", "label"}, parsePath("menu[0].label"))
	assert.Equal(t, []string{"menu", "0", "label"}, parsePath("menu.0.label"))
	assert.Equal(t, []string{"author", "contacts", "rss"}, parsePath("author.contacts.rss"))
	assert.Equal(t, []string{"author", `"name"`}, parsePath(`author["name"]`))
}
