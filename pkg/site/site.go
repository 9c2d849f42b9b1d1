// Package site defines the blog site configuration record, its default
// instance, schema validation, and the process-wide holder that publishes a
// validated configuration to readers.
package site

import "strings"

// PlaceholderLink marks a contact channel that is listed but not configured.
const PlaceholderLink = "#"

// SiteConfig is the top-level configuration of a blog site.
// Wire names follow the camelCase keys used in config files.
type SiteConfig struct {
	URL               string     `json:"url" yaml:"url" toml:"url"`
	Title             string     `json:"title" yaml:"title" toml:"title"`
	Subtitle          string     `json:"subtitle" yaml:"subtitle" toml:"subtitle"`
	Copyright         string     `json:"copyright" yaml:"copyright" toml:"copyright"`
	DisqusShortname   string     `json:"disqusShortname" yaml:"disqusShortname" toml:"disqusShortname"`
	PostsPerPage      int        `json:"postsPerPage" yaml:"postsPerPage" toml:"postsPerPage"`
	GoogleAnalyticsID string     `json:"googleAnalyticsId" yaml:"googleAnalyticsId" toml:"googleAnalyticsId"`
	Menu              []MenuItem `json:"menu" yaml:"menu" toml:"menu"`
	Author            AuthorInfo `json:"author" yaml:"author" toml:"author"`
}

// MenuItem is one navigation entry. Its position in SiteConfig.Menu is its
// display position.
type MenuItem struct {
	Label string `json:"label" yaml:"label" toml:"label"`
	Path  string `json:"path" yaml:"path" toml:"path"`
}

// AuthorInfo describes the author of the site's content.
type AuthorInfo struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Photo    string   `json:"photo" yaml:"photo" toml:"photo"`
	Bio      string   `json:"bio" yaml:"bio" toml:"bio"`
	Contacts Contacts `json:"contacts" yaml:"contacts" toml:"contacts"`
}

// CommentsEnabled reports whether Disqus comments are configured.
func (c SiteConfig) CommentsEnabled() bool {
	return strings.TrimSpace(c.DisqusShortname) != ""
}

// AnalyticsEnabled reports whether Google Analytics is configured.
func (c SiteConfig) AnalyticsEnabled() bool {
	return strings.TrimSpace(c.GoogleAnalyticsID) != ""
}

// Clone returns a deep copy so callers can never alias the menu slice of a
// published configuration.
func (c SiteConfig) Clone() SiteConfig {
	out := c
	if c.Menu != nil {
		out.Menu = make([]MenuItem, len(c.Menu))
		copy(out.Menu, c.Menu)
	}
	return out
}

// ToMap converts the configuration into a generic tree keyed by wire names.
// Menu order is kept; the result is safe for CEL evaluation and formatting.
func (c SiteConfig) ToMap() map[string]any {
	menu := make([]any, 0, len(c.Menu))
	for _, item := range c.Menu {
		menu = append(menu, map[string]any{
			"label": item.Label,
			"path":  item.Path,
		})
	}
	return map[string]any{
		"url":               c.URL,
		"title":             c.Title,
		"subtitle":          c.Subtitle,
		"copyright":         c.Copyright,
		"disqusShortname":   c.DisqusShortname,
		"postsPerPage":      int64(c.PostsPerPage),
		"googleAnalyticsId": c.GoogleAnalyticsID,
		"menu":              menu,
		"author": map[string]any{
			"name":     c.Author.Name,
			"photo":    c.Author.Photo,
			"bio":      c.Author.Bio,
			"contacts": c.Author.Contacts.toMap(),
		},
	}
}

// Default returns the built-in configuration of the "Sam Does Blogs" site.
func Default() SiteConfig {
	return SiteConfig{
		URL:               "https://blog.samuelchan.dev",
		Title:             "Sam Does Blogs",
		Subtitle:          "Samuel Chan blogs here about the geekier parts of his life.",
		Copyright:         "© All rights reserved.",
		DisqusShortname:   "",
		PostsPerPage:      4,
		GoogleAnalyticsID: "UA-132206795-1",
		Menu: []MenuItem{
			{Label: "Articles", Path: "/"},
			{Label: "About me", Path: "/pages/about"},
			{Label: "Contact me", Path: "/pages/contacts"},
		},
		Author: AuthorInfo{
			Name:  "Samuel Chan",
			Photo: "/photo.jpg",
			Bio:   "A struggling blogger that's an IBM BPM consultant on the side.",
			Contacts: Contacts{
				Email:   "me@samuelchan.dev",
				Twitter: PlaceholderLink,
				GitHub:  PlaceholderLink,
				RSS:     PlaceholderLink,
			},
		},
	}
}
