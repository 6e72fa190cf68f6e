package feed

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// MarkdownToHTML renders CMS rich text. Text that already contains HTML
// markup is returned unchanged, so the conversion is idempotent.
func MarkdownToHTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if ContainsHTML(s) {
		return s
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(escapeUnknownTags(s)), &buf); err != nil {
		return s
	}
	return strings.TrimSpace(buf.String())
}

// escapeUnknownTags backslash-escapes tag-shaped tokens such as <username> so
// goldmark prints them as text instead of omitting them as raw HTML.
// Autolinks and code spans are left alone.
func escapeUnknownTags(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))

	var b strings.Builder
	inCode := false
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				return s
			}
			return b.String()
		}

		raw := z.Raw()
		switch tt {
		case html.TextToken:
			if bytes.Count(raw, []byte("`"))%2 == 1 {
				inCode = !inCode
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
			if !inCode && !isAutolink(raw) {
				b.WriteByte('\\')
			}
		}
		b.Write(raw)
	}
}

func isAutolink(raw []byte) bool {
	return bytes.ContainsAny(raw, ":@")
}

// ContainsHTML reports whether s contains a tag of a known HTML element.
// Autolinks such as <https://example.com> do not count.
func ContainsHTML(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}

	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) != 0 {
				return true
			}
		}
	}
}
