package shortcode

import (
	"net/url"
	"strings"
)

// LinkPolicy decides which URLs built-in handlers may emit as href/src values.
type LinkPolicy struct {
	allowedSchemes map[string]struct{}
}

// NewLinkPolicy allows relative URLs plus http, https and mailto.
func NewLinkPolicy() *LinkPolicy {
	return &LinkPolicy{
		allowedSchemes: map[string]struct{}{
			"http":   {},
			"https":  {},
			"mailto": {},
			"":       {},
		},
	}
}

// Allowed reports whether raw parses and uses a permitted scheme.
func (p *LinkPolicy) Allowed(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	_, ok := p.allowedSchemes[strings.ToLower(parsed.Scheme)]
	return ok
}

var defaultLinkPolicy = NewLinkPolicy()
