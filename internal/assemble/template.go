package assemble

import (
	_ "embed"
	"strings"
)

// Placeholder is replaced by the assembled sections.
const Placeholder = "{{SECTIONS_CONTENT}}"

//go:embed default_template.html
var defaultTemplate string

// DefaultTemplate returns the built-in page used when the site has no template.html.
func DefaultTemplate() string { return defaultTemplate }

// Combine substitutes the joined fragments for the first placeholder in tmpl.
// Fragments are trimmed; fragments that trim to nothing are skipped. found is
// false when tmpl has no placeholder, in which case tmpl is returned unchanged.
func Combine(tmpl string, fragments []string) (out string, found bool) {
	if !strings.Contains(tmpl, Placeholder) {
		return tmpl, false
	}
	return strings.Replace(tmpl, Placeholder, Body(fragments), 1), true
}

// Body joins trimmed, non-empty fragments with a blank line.
func Body(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, "\n\n")
}
