package site

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

var (
	rootKeys   = []string{"url", "title", "subtitle", "copyright", "disqusShortname", "postsPerPage", "googleAnalyticsId", "menu", "author"}
	menuKeys   = []string{"label", "path"}
	authorKeys = []string{"name", "photo", "bio", "contacts"}
)

// Decode maps a generic tree, as produced by the JSON, YAML or TOML decoders,
// onto a SiteConfig. Unknown keys and values of the wrong type are reported as
// a *ValidationError; null values decode as the zero value. Decode does not
// run Validate.
func Decode(tree any) (SiteConfig, error) {
	d := &decoder{issues: &ValidationError{}}
	cfg := d.root(tree)
	if err := d.issues.errOrNil(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

type decoder struct {
	issues *ValidationError
}

func (d *decoder) root(tree any) SiteConfig {
	var cfg SiteConfig
	m, ok := d.object("", tree)
	if !ok {
		return cfg
	}
	d.fields("", m, rootKeys, func(key, path string, v any) {
		switch key {
		case "url":
			cfg.URL = d.str(path, v)
		case "title":
			cfg.Title = d.str(path, v)
		case "subtitle":
			cfg.Subtitle = d.str(path, v)
		case "copyright":
			cfg.Copyright = d.str(path, v)
		case "disqusShortname":
			cfg.DisqusShortname = d.str(path, v)
		case "postsPerPage":
			cfg.PostsPerPage = d.integer(path, v)
		case "googleAnalyticsId":
			cfg.GoogleAnalyticsID = d.str(path, v)
		case "menu":
			cfg.Menu = d.menu(path, v)
		case "author":
			cfg.Author = d.author(path, v)
		}
	})
	return cfg
}

func (d *decoder) menu(path string, v any) []MenuItem {
	if v == nil {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		d.issues.addf(path, "must be a list of menu entries, got %s", kindOf(v))
		return nil
	}
	items := make([]MenuItem, 0, len(arr))
	for i, raw := range arr {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		m, ok := d.object(itemPath, raw)
		if !ok {
			continue
		}
		var item MenuItem
		d.fields(itemPath, m, menuKeys, func(key, p string, fv any) {
			switch key {
			case "label":
				item.Label = d.str(p, fv)
			case "path":
				item.Path = d.str(p, fv)
			}
		})
		items = append(items, item)
	}
	return items
}

func (d *decoder) author(path string, v any) AuthorInfo {
	var a AuthorInfo
	if v == nil {
		return a
	}
	m, ok := d.object(path, v)
	if !ok {
		return a
	}
	d.fields(path, m, authorKeys, func(key, p string, fv any) {
		switch key {
		case "name":
			a.Name = d.str(p, fv)
		case "photo":
			a.Photo = d.str(p, fv)
		case "bio":
			a.Bio = d.str(p, fv)
		case "contacts":
			a.Contacts = d.contacts(p, fv)
		}
	})
	return a
}

func (d *decoder) contacts(path string, v any) Contacts {
	var c Contacts
	if v == nil {
		return c
	}
	m, ok := d.object(path, v)
	if !ok {
		return c
	}
	for _, key := range sortedKeys(m) {
		p := path + "." + key
		ch, err := ParseChannel(key)
		if err != nil {
			d.issues.addf(p, "unknown contact channel (valid: email, twitter, github, rss)")
			continue
		}
		c.set(ch, d.str(p, m[key]))
	}
	return c
}

// fields visits known keys in schema order, then flags any leftover keys.
func (d *decoder) fields(path string, m map[string]any, known []string, visit func(key, path string, v any)) {
	seen := make(map[string]struct{}, len(known))
	for _, key := range known {
		seen[key] = struct{}{}
		if v, ok := m[key]; ok {
			visit(key, join(path, key), v)
		}
	}
	for _, key := range sortedKeys(m) {
		if _, ok := seen[key]; !ok {
			d.issues.addf(join(path, key), "unknown field")
		}
	}
}

func (d *decoder) object(path string, v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		d.issues.addf(path, "must be an object, got %s", kindOf(v))
		return nil, false
	}
	return m, true
}

func (d *decoder) str(path string, v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		d.issues.addf(path, "must be a string, got %s", kindOf(v))
		return ""
	}
}

func (d *decoder) integer(path string, v any) int {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return n
	case int64:
		if n > math.MaxInt32 || n < math.MinInt32 {
			d.issues.addf(path, "integer %d out of range", n)
			return 0
		}
		return int(n)
	case uint64:
		if n > math.MaxInt32 {
			d.issues.addf(path, "integer %d out of range", n)
			return 0
		}
		return int(n)
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			d.issues.addf(path, "must be an integer, got %v", n)
			return 0
		}
		return int(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			d.issues.addf(path, "must be an integer, got %s", n.String())
			return 0
		}
		return d.integer(path, i)
	default:
		d.issues.addf(path, "must be an integer, got %s", kindOf(v))
		return 0
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64, json.Number:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// KeyOrder lists every wire key in schema order. Display code uses it to
// print fields in declaration order rather than alphabetically.
func KeyOrder() []string {
	out := make([]string, 0, len(rootKeys)+len(menuKeys)+len(authorKeys)+len(Channels))
	out = append(out, rootKeys...)
	out = append(out, menuKeys...)
	out = append(out, authorKeys...)
	for _, ch := range Channels {
		out = append(out, string(ch))
	}
	return out
}
