package shortcode

import (
	"fmt"
	"html"
	"strings"
)

// BuiltInDefinitions returns the shortcode catalogue shipped for WordPress
// exports: inline styling, galleries, captions, buttons, premium content and
// page-builder wrappers that only need their delimiters removed.
func BuiltInDefinitions() []Definition {
	defs := []Definition{
		{Name: "span", Handler: spanHandler},
		{Name: "gallery", Handler: galleryHandler},
		{Name: "caption", Handler: captionHandler},
		{Name: "button", Handler: buttonHandler},
		{
			Name:    "premium_content",
			Handler: passthroughHandler,
			Split:   &Split{Marker: "premelse", Part: SplitBefore},
		},
	}
	for _, name := range unwrapBuiltIns {
		defs = append(defs, Definition{Name: name, Handler: unwrapHandler})
	}
	return defs
}

var unwrapBuiltIns = []string{
	"vc_row",
	"vc_column",
	"vc_column_text",
	"et_pb_section",
	"et_pb_row",
	"et_pb_column",
	"et_pb_text",
}

// RegisterBuiltIns registers the built-in definitions on registry, keeping the
// catalogue order. When names is empty, every built-in is registered.
func RegisterBuiltIns(registry *Registry, names []string) error {
	if registry == nil {
		return fmt.Errorf("shortcode: registry is required")
	}

	defs := BuiltInDefinitions()
	if len(names) > 0 {
		available := make(map[string]Definition, len(defs))
		for _, def := range defs {
			available[def.Name] = def
		}

		selected := make([]Definition, 0, len(names))
		for _, name := range names {
			key := strings.TrimSpace(name)
			if key == "" {
				continue
			}
			def, ok := available[key]
			if !ok {
				return fmt.Errorf("shortcode: built-in %q not found", name)
			}
			selected = append(selected, def)
		}
		defs = selected
	}

	for _, def := range defs {
		if err := registry.add(def); err != nil {
			return err
		}
	}
	return nil
}

func contentOf(content *string) string {
	if content == nil {
		return ""
	}
	return *content
}

func passthroughHandler(_ Attributes, content *string) string {
	return contentOf(content)
}

func spanHandler(attrs Attributes, content *string) string {
	color := strings.TrimSpace(attrs.String("color"))
	if color == "" {
		return "<span>" + contentOf(content) + "</span>"
	}
	return fmt.Sprintf(`<span style="color: %s;">%s</span>`, html.EscapeString(color), contentOf(content))
}

func galleryHandler(attrs Attributes, _ *string) string {
	ids := make([]string, 0)
	for _, id := range strings.Split(attrs.String("ids"), ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}

	var b strings.Builder
	b.WriteString(`<div class="kg-gallery"`)
	fmt.Fprintf(&b, ` data-ids="%s"`, html.EscapeString(strings.Join(ids, ",")))
	if columns, ok := attrs.Int("columns"); ok && columns > 0 {
		fmt.Fprintf(&b, ` data-columns="%d"`, columns)
	}
	b.WriteString(`></div>`)
	return b.String()
}

func captionHandler(attrs Attributes, content *string) string {
	body := strings.TrimSpace(contentOf(content))
	caption := attrs.String("caption")

	// WordPress keeps the caption text after the image inside the content.
	if caption == "" {
		if idx := strings.LastIndex(body, ">"); idx >= 0 && idx < len(body)-1 {
			caption = strings.TrimSpace(body[idx+1:])
			body = strings.TrimSpace(body[:idx+1])
		}
	}

	var b strings.Builder
	b.WriteString(`<figure class="wp-caption">`)
	b.WriteString(body)
	if caption != "" {
		b.WriteString("<figcaption>")
		b.WriteString(caption)
		b.WriteString("</figcaption>")
	}
	b.WriteString("</figure>")
	return b.String()
}

func buttonHandler(attrs Attributes, content *string) string {
	url := firstNonEmpty(attrs.String("button_url"), attrs.String("url"), attrs.String("link"))
	text := firstNonEmpty(attrs.String("button_text"), attrs.String("text"), strings.TrimSpace(contentOf(content)))
	if !defaultLinkPolicy.Allowed(url) {
		return text
	}
	return fmt.Sprintf(`<a class="button" href="%s">%s</a>`, html.EscapeString(url), text)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
