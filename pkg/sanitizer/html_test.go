package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/ashimpoudel/portfolio/pkg/sanitizer"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "strips script injection", input: `<p>Hello</p><script>alert('xss')</script>`, expected: "Hello"},
		{name: "strips nested tags", input: `<div><p>nested <span>content</span></p></div>`, expected: "nested content"},
		{name: "strips javascript URLs", input: `<a href="javascript:alert('xss')">click</a>`, expected: "click"},
		{name: "keeps ampersands readable", input: "Tom & Jerry", expected: "Tom & Jerry"},
		{name: "keeps apostrophes readable", input: "It's fine", expected: "It's fine"},
		{name: "trims", input: "  Alice  ", expected: "Alice"},
		{name: "keeps newlines inside", input: "line one\nline two", expected: "line one\nline two"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.PlainText(tt.input))
		})
	}
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Hi", expected: "Hi"},
		{name: "header injection", input: "Hi\r\nBcc: victim@example.com", expected: "Hi Bcc: victim@example.com"},
		{name: "tabs and blank lines", input: "a\t\n\nb", expected: "a b"},
		{name: "markup", input: "<b>Hi</b>\nthere", expected: "Hi there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SingleLine(tt.input))
		})
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	out := sanitizer.HTML(`<p onclick="x()">Hi <strong>there</strong></p><script>alert(1)</script><img src="https://t.example/p.gif">`)
	assert.Equal(t, `<p>Hi <strong>there</strong></p>`, out)

	link := sanitizer.HTML(`<a href="https://example.com">site</a>`)
	assert.Contains(t, link, `href="https://example.com"`)
	assert.Contains(t, link, `rel="nofollow"`)

	assert.NotContains(t, sanitizer.HTML(`<a href="javascript:alert(1)">x</a>`), "javascript:")
}

func TestHTMLCustom(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<b>x</b>", sanitizer.HTMLCustom("<b>x</b>", nil))
	assert.Equal(t, "x", sanitizer.HTMLCustom("<b>x</b>", bluemonday.StrictPolicy()))
}
