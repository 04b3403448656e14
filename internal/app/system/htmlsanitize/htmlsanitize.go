// Package htmlsanitize prepares operator-entered text for rendering.
// Rich text goes through bluemonday to strip dangerous HTML; plain text
// (the bio, descriptions) is escaped and converted to minimal HTML.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// policy is the shared bluemonday policy for sanitizing rich text.
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
		policy.AllowElements("u", "s", "sub", "sup", "mark")
	})
	return policy
}

// Sanitize cleans HTML input, removing potentially dangerous elements and
// attributes while preserving safe formatting like bold, italic and links.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// SanitizeToHTML sanitizes HTML input and returns it as template.HTML,
// safe to render directly in Go templates without escaping.
func SanitizeToHTML(html string) template.HTML {
	return template.HTML(Sanitize(html))
}

// IsPlainText checks if content appears to be plain text (no HTML tags).
func IsPlainText(content string) bool {
	if content == "" {
		return true
	}
	return !strings.Contains(content, "<") || !strings.Contains(content, ">")
}

// PlainTextToHTML converts plain text to minimal HTML: entities escaped,
// blank-line-separated blocks wrapped in <p>, single newlines kept as <br>.
func PlainTextToHTML(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for i, block := range strings.Split(text, "\n\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		escaped := template.HTMLEscapeString(block)
		escaped = strings.ReplaceAll(escaped, "\n", "<br>")
		b.WriteString("<p>" + escaped + "</p>")
	}
	return b.String()
}

// PrepareForDisplay takes content (plain text or HTML) and returns sanitized
// template.HTML ready for rendering.
func PrepareForDisplay(content string) template.HTML {
	if content == "" {
		return ""
	}
	if IsPlainText(content) {
		return template.HTML(PlainTextToHTML(content))
	}
	return SanitizeToHTML(content)
}
