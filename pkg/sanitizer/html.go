// Package sanitizer cleans user-supplied text before it reaches an email.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"html", "head", "body", "title",
			"h1", "h2", "h3", "p", "br", "hr",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"table", "tr", "td",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.AllowAttrs("style").OnElements("body", "table", "td", "p")
		safePolicy.AllowStyles("font-family", "color", "margin", "padding", "width", "max-width").Globally()
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// PlainText strips all markup and returns trimmed text with HTML entities
// decoded, so "Tom &amp; Jerry" and "Tom & Jerry" both come out as the latter.
func PlainText(s string) string {
	initPolicies()
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// SingleLine is PlainText with every run of control whitespace (CR, LF, tab)
// collapsed to a single space. Use it for values that end up in mail headers.
func SingleLine(s string) string {
	s = PlainText(s)
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == '\r' || r == '\n' || r == '\t'
	}), " ")
}

// HTML keeps a small set of formatting elements and drops everything that
// can execute or load remote content.
func HTML(s string) string {
	initPolicies()
	return safePolicy.Sanitize(s)
}

// HTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func HTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
