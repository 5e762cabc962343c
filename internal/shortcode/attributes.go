package shortcode

import (
	"strconv"
	"strings"
	"unicode"
)

// quoteForms lists the quote characters and entity encodings that editors wrap
// around attribute keys and values. Plain ASCII quotes are handled by the
// tokenizer itself, except for the double quote which is also stripped here.
var quoteForms = []string{
	"&quot;",
	"&#8217;", "&#8221;", "&#8220;", "&#8216;", "&#8243;", "&#8242;",
	"&#34;", "&#034;", "&#x22;",
	"&rsquo;", "&rdquo;", "&ldquo;", "&lsquo;",
	"’", "”", "“", "‘", "″", "′",
	`"`,
}

// Attribute is a single key/value pair.
type Attribute struct {
	Key   string
	Value Value
}

// Attributes is an ordered attribute map. The zero value is empty and ready to use.
type Attributes struct {
	entries []Attribute
}

// Set stores value under key. An existing key keeps its position.
func (a *Attributes) Set(key string, value Value) {
	for i := range a.entries {
		if a.entries[i].Key == key {
			a.entries[i].Value = value
			return
		}
	}
	a.entries = append(a.entries, Attribute{Key: key, Value: value})
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (Value, bool) {
	for _, entry := range a.entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of attributes.
func (a Attributes) Len() int { return len(a.entries) }

// Keys returns the keys in insertion order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a.entries))
	for i, entry := range a.entries {
		keys[i] = entry.Key
	}
	return keys
}

// All returns a copy of the entries in insertion order.
func (a Attributes) All() []Attribute {
	return append([]Attribute(nil), a.entries...)
}

// Map flattens the attributes into plain Go values.
func (a Attributes) Map() map[string]any {
	out := make(map[string]any, len(a.entries))
	for _, entry := range a.entries {
		out[entry.Key] = entry.Value.Interface()
	}
	return out
}

// String returns the textual form of key, or "" when absent.
func (a Attributes) String(key string) string {
	if v, ok := a.Get(key); ok {
		return v.String()
	}
	return ""
}

// Bool returns the boolean stored under key. Non-boolean values report false.
func (a Attributes) Bool(key string) bool {
	v, ok := a.Get(key)
	if !ok {
		return false
	}
	b, _ := v.AsBool()
	return b
}

// Int returns the integer stored under key.
func (a Attributes) Int(key string) (int64, bool) {
	v, ok := a.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Float returns the numeric value stored under key.
func (a Attributes) Float(key string) (float64, bool) {
	v, ok := a.Get(key)
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// ParseAttributes tokenizes the raw attribute list of a shortcode.
//
// Accepted forms, each consuming through the next whitespace:
//
//	key="value"  key='value'  key=value  "value"  'key=value'  flag
//
// Standalone quoted tokens are positional and stored under their index unless
// they carry an embedded "=". Bare words are valueless keys set to true.
// Keys and values are stripped of curly quotes and quote entities, and values
// are cast with Cast. Malformed input is parsed best effort and never fails.
func ParseAttributes(raw string) Attributes {
	var attrs Attributes
	positional := 0
	s := raw

	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if s == "" {
			return attrs
		}

		if s[0] == '"' || s[0] == '\'' {
			token, rest := readQuoted(s[1:], s[0])
			s = skipToSpace(rest)
			if key, value, ok := strings.Cut(token, "="); ok {
				if key = unquote(key); key != "" {
					attrs.Set(key, castAttribute(value))
				}
				continue
			}
			attrs.Set(strconv.Itoa(positional), castAttribute(token))
			positional++
			continue
		}

		end := strings.IndexFunc(s, func(r rune) bool {
			return r == '=' || unicode.IsSpace(r)
		})
		if end < 0 || s[end] != '=' {
			word := s
			if end >= 0 {
				word, s = s[:end], s[end:]
			} else {
				s = ""
			}
			if key := unquote(word); key != "" {
				attrs.Set(key, BoolValue(true))
			}
			continue
		}

		key := unquote(s[:end])
		value, rest := readValue(s[end+1:])
		s = skipToSpace(rest)
		if key == "" {
			continue
		}
		attrs.Set(key, castAttribute(value))
	}
}

func castAttribute(raw string) Value {
	return Cast(unquote(raw))
}

// readValue reads the value following "=". Quoted values run to the matching
// quote. Values opened by a curly quote or quote entity run to the next quote
// form so texturized values may contain spaces.
func readValue(s string) (value, rest string) {
	if s == "" {
		return "", ""
	}
	if s[0] == '"' || s[0] == '\'' {
		return readQuoted(s[1:], s[0])
	}
	if opener := quotePrefix(s); opener > 0 {
		if closeStart, closeLen := nextQuote(s[opener:]); closeStart >= 0 {
			end := opener + closeStart + closeLen
			return s[:end], s[end:]
		}
	}
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

// readQuoted returns the text up to the closing quote q. An unterminated
// quote consumes the rest of the input.
func readQuoted(s string, q byte) (value, rest string) {
	idx := strings.IndexByte(s, q)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+1:]
}

func skipToSpace(s string) string {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return ""
	}
	return s[idx:]
}

// quotePrefix returns the byte length of the quote form s starts with.
func quotePrefix(s string) int {
	for _, form := range quoteForms {
		if strings.HasPrefix(s, form) {
			return len(form)
		}
	}
	return 0
}

// nextQuote locates the earliest quote form in s.
func nextQuote(s string) (start, length int) {
	start = -1
	for _, form := range quoteForms {
		idx := strings.Index(s, form)
		if idx < 0 {
			continue
		}
		if start < 0 || idx < start || (idx == start && len(form) > length) {
			start, length = idx, len(form)
		}
	}
	return start, length
}

// unquote strips every leading and trailing quote form from s.
func unquote(s string) string {
	for {
		trimmed := s
		for _, form := range quoteForms {
			trimmed = strings.TrimPrefix(trimmed, form)
			trimmed = strings.TrimSuffix(trimmed, form)
		}
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}
