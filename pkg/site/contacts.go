package site

import (
	"fmt"
	"strings"
)

// Channel names a supported author contact channel.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelTwitter Channel = "twitter"
	ChannelGitHub  Channel = "github"
	ChannelRSS     Channel = "rss"
)

// Channels lists every supported channel in canonical display order.
var Channels = []Channel{ChannelEmail, ChannelTwitter, ChannelGitHub, ChannelRSS}

// ParseChannel maps a wire key to a Channel. Keys are case sensitive.
func ParseChannel(s string) (Channel, error) {
	for _, ch := range Channels {
		if string(ch) == s {
			return ch, nil
		}
	}
	return "", fmt.Errorf("unknown contact channel %q (valid: email, twitter, github, rss)", s)
}

// Contacts holds the author's contact links, one field per known channel.
type Contacts struct {
	Email   string `json:"email" yaml:"email" toml:"email"`
	Twitter string `json:"twitter" yaml:"twitter" toml:"twitter"`
	GitHub  string `json:"github" yaml:"github" toml:"github"`
	RSS     string `json:"rss" yaml:"rss" toml:"rss"`
}

// Get returns the raw value stored for a channel.
func (c Contacts) Get(ch Channel) string {
	switch ch {
	case ChannelEmail:
		return c.Email
	case ChannelTwitter:
		return c.Twitter
	case ChannelGitHub:
		return c.GitHub
	case ChannelRSS:
		return c.RSS
	default:
		return ""
	}
}

// Configured reports whether the channel holds a real value. Empty values and
// the "#" placeholder both count as not configured.
func (c Contacts) Configured(ch Channel) bool {
	v := strings.TrimSpace(c.Get(ch))
	return v != "" && v != PlaceholderLink
}

// Link is a configured contact channel and its value.
type Link struct {
	Channel Channel
	Value   string
}

// Links returns the configured channels in canonical order.
func (c Contacts) Links() []Link {
	var out []Link
	for _, ch := range Channels {
		if c.Configured(ch) {
			out = append(out, Link{Channel: ch, Value: c.Get(ch)})
		}
	}
	return out
}

func (c *Contacts) set(ch Channel, v string) {
	switch ch {
	case ChannelEmail:
		c.Email = v
	case ChannelTwitter:
		c.Twitter = v
	case ChannelGitHub:
		c.GitHub = v
	case ChannelRSS:
		c.RSS = v
	}
}

func (c Contacts) toMap() map[string]any {
	m := make(map[string]any, len(Channels))
	for _, ch := range Channels {
		m[string(ch)] = c.Get(ch)
	}
	return m
}
