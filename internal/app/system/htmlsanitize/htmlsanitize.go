// Package htmlsanitize cleans rich-text HTML before it is stored or
// rendered. Blog articles and course overviews are authored in a rich
// editor; everything that reaches a template goes through here first.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is a UGC policy extended with the constructs the rich editor
// emits: tables with presentation attributes, extra inline formatting,
// and hosted images.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark", "hr")
	p.AllowAttrs("class", "style").OnElements(
		"table", "thead", "tbody", "tfoot", "tr", "td", "th",
	)
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowImages()
	return p
}

// Sanitize strips unsafe markup and returns the cleaned HTML string.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes and marks the result safe for template output.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no HTML tags. A lone < or >
// (as in "5 < 10") does not count as markup.
func IsPlainText(s string) bool {
	lt := strings.IndexByte(s, '<')
	if lt < 0 {
		return true
	}
	return strings.IndexByte(s[lt:], '>') < 0
}

// PlainTextToHTML wraps plain text in a paragraph, escaping entities and
// converting newlines to <br>.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay renders stored content for a page: legacy plain-text
// records are paragraph-wrapped, HTML records are sanitized.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
