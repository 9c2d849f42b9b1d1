package site

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the schema invariants and returns a *ValidationError
// describing every violation, or nil.
func (c SiteConfig) Validate() error {
	v := &ValidationError{}

	if strings.TrimSpace(c.URL) == "" {
		v.addf("url", "is required")
	} else if !isAbsoluteURL(c.URL) {
		v.addf("url", "must be an absolute URL with scheme and host, got %q", c.URL)
	}

	if strings.TrimSpace(c.Title) == "" {
		v.addf("title", "must not be empty")
	}

	if c.PostsPerPage <= 0 {
		v.addf("postsPerPage", "must be a positive integer, got %d", c.PostsPerPage)
	}

	for i, item := range c.Menu {
		prefix := fmt.Sprintf("menu[%d]", i)
		if strings.TrimSpace(item.Label) == "" {
			v.addf(prefix+".label", "is required")
		}
		switch {
		case strings.TrimSpace(item.Path) == "":
			v.addf(prefix+".path", "is required")
		case !strings.HasPrefix(item.Path, "/") && !isAbsoluteURL(item.Path):
			v.addf(prefix+".path", "must be site-relative (start with /) or an absolute URL, got %q", item.Path)
		}
	}

	if strings.TrimSpace(c.Author.Name) == "" {
		v.addf("author.name", "is required")
	}

	return v.errOrNil()
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
