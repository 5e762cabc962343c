package shortcode

import (
	"strings"
	"unicode"
)

// Occurrence is a single matched shortcode within a document.
type Occurrence struct {
	Name          string
	RawAttributes string
	// Content is nil for self-closing occurrences.
	Content *string
	// Start and End delimit the matched bytes, closing tag included.
	Start int
	End   int

	contentStart int
}

// SelfClosing reports whether the occurrence has no closing tag.
func (o Occurrence) SelfClosing() bool { return o.Content == nil }

// tagToken is an opening or closing tag for one shortcode name.
type tagToken struct {
	start      int
	end        int
	closing    bool
	selfClosed bool
	attrs      string
}

// Resolve finds the next occurrence to expand for the registered names, which
// must be in registration order. Names registered later take precedence when
// several match. Within a name the innermost pair wins, and a paired match
// whose content holds another registered occurrence yields that nested
// occurrence instead, so expansion proceeds depth first.
func Resolve(doc string, names []string) (Occurrence, bool) {
	if !strings.Contains(doc, "[") {
		return Occurrence{}, false
	}

	seen := make(map[string]struct{}, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		name := names[i]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		occ, ok := resolveName(doc, name)
		if !ok {
			continue
		}
		if occ.Content != nil {
			if nested, ok := Resolve(*occ.Content, names); ok {
				nested.Start += occ.contentStart
				nested.End += occ.contentStart
				nested.contentStart += occ.contentStart
				return nested, true
			}
		}
		return occ, true
	}
	return Occurrence{}, false
}

// resolveName scans doc left to right for the first expandable occurrence of
// name. An opening tag pairs with the next closing tag unless another opening
// of the same name comes first, in which case the scan moves on to that inner
// opening. An opening with nothing after it is self-closing, as is one whose
// content would cross an unmatched closing tag of another name. Stray closing
// tags are skipped.
func resolveName(doc, name string) (Occurrence, bool) {
	tok, ok := nextTag(doc, name, 0)
	for ok {
		if tok.closing {
			tok, ok = nextTag(doc, name, tok.end)
			continue
		}
		if tok.selfClosed {
			return selfClosingOccurrence(name, tok), true
		}

		next, found := nextTag(doc, name, tok.end)
		if !found {
			return selfClosingOccurrence(name, tok), true
		}
		if next.closing {
			content := doc[tok.end:next.start]
			if hasUnmatchedClosing(content) {
				return selfClosingOccurrence(name, tok), true
			}
			return Occurrence{
				Name:          name,
				RawAttributes: tok.attrs,
				Content:       &content,
				Start:         tok.start,
				End:           next.end,
				contentStart:  tok.end,
			}, true
		}
		tok = next
	}
	return Occurrence{}, false
}

func selfClosingOccurrence(name string, tok tagToken) Occurrence {
	return Occurrence{
		Name:          name,
		RawAttributes: tok.attrs,
		Start:         tok.start,
		End:           tok.end,
		contentStart:  tok.end,
	}
}

// nextTag returns the first opening or closing tag for name at or after from.
func nextTag(doc, name string, from int) (tagToken, bool) {
	closing := "/" + name + "]"
	for from < len(doc) {
		idx := strings.IndexByte(doc[from:], '[')
		if idx < 0 {
			return tagToken{}, false
		}
		start := from + idx
		rest := doc[start+1:]

		if strings.HasPrefix(rest, closing) {
			return tagToken{start: start, end: start + 1 + len(closing), closing: true}, true
		}

		if len(rest) > len(name) && strings.HasPrefix(rest, name) && isNameBoundary(rest[len(name)]) {
			attrStart := start + 1 + len(name)
			if end := strings.IndexByte(doc[attrStart:], ']'); end >= 0 {
				tok := tagToken{
					start: start,
					end:   attrStart + end + 1,
					attrs: doc[attrStart : attrStart+end],
				}
				if trimmed := strings.TrimRightFunc(tok.attrs, unicode.IsSpace); explicitSelfClose(trimmed) {
					tok.selfClosed = true
					tok.attrs = strings.TrimSuffix(trimmed, "/")
				}
				return tok, true
			}
		}
		from = start + 1
	}
	return tagToken{}, false
}

// explicitSelfClose reports whether trimmed attribute text ends in a
// standalone slash, as in [name /] or [name a="b"/]. A slash that is part of
// an unquoted value such as url=https://example.com/ does not count.
func explicitSelfClose(trimmed string) bool {
	if !strings.HasSuffix(trimmed, "/") {
		return false
	}
	if len(trimmed) == 1 {
		return true
	}
	switch c := trimmed[len(trimmed)-2]; c {
	case '"', '\'':
		return true
	default:
		return unicode.IsSpace(rune(c))
	}
}

// hasUnmatchedClosing reports whether content holds a closing tag whose name
// has no opening earlier in content.
func hasUnmatchedClosing(content string) bool {
	open := make(map[string]int)
	for i := 0; i < len(content); i++ {
		if content[i] != '[' {
			continue
		}
		rest := content[i+1:]
		if !strings.HasPrefix(rest, "/") {
			if tag := openingName(rest); tag != "" {
				open[tag]++
			}
			continue
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return false
		}
		tag := rest[1:end]
		if tag == "" || strings.ContainsAny(tag, "[/ \t\n\r\f\v") {
			continue
		}
		if open[tag] > 0 {
			open[tag]--
			continue
		}
		return true
	}
	return false
}

// openingName returns the tag name at the start of rest, or "" when rest does
// not begin a well-formed opening tag.
func openingName(rest string) string {
	for i := 0; i < len(rest); i++ {
		switch {
		case rest[i] == '[':
			return ""
		case isNameBoundary(rest[i]):
			if i == 0 || !strings.Contains(rest[i:], "]") {
				return ""
			}
			return rest[:i]
		}
	}
	return ""
}

func isNameBoundary(c byte) bool {
	switch c {
	case ']', '/', ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
