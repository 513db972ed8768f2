// Package markdown renders article bodies. It is not a markdown parser: the
// text is escaped and then run through a short, fixed list of line-level
// substitutions (line breaks, two heading levels, fenced code blocks and
// inline code).
package markdown

import (
	"context"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var reInlineCode = regexp.MustCompile("`([^`]+)`")

const (
	lineBreak = "<br />"
	fence     = "```"
)

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Render(content))
		return err
	})
}

// Render converts content to trusted HTML. Substitutions apply in order:
// newline to <br />, leading "# " to h1, leading "## " to h2, ``` fences to
// code blocks, then `inline` spans to inline code. Lines inside a fence
// keep their raw newlines and skip every other substitution. An unclosed
// fence is closed at the end of the input.
func Render(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")

	var b strings.Builder
	inCode := false
	for i, line := range lines {
		last := i == len(lines)-1

		if rest, ok := strings.CutPrefix(line, fence); ok {
			if inCode {
				b.WriteString("</code></pre>")
				inCode = false
			} else {
				openCode(&b, rest)
				inCode = true
			}
			continue
		}
		if inCode {
			b.WriteString(html.EscapeString(line))
			b.WriteByte('\n')
			continue
		}

		escaped := html.EscapeString(line)
		switch {
		case strings.HasPrefix(escaped, "# "):
			b.WriteString(`<h1 class="article-h1">`)
			b.WriteString(FormatInline(escaped[2:]))
			b.WriteString("</h1>")
		case strings.HasPrefix(escaped, "## "):
			b.WriteString(`<h2 class="article-h2">`)
			b.WriteString(FormatInline(escaped[3:]))
			b.WriteString("</h2>")
		default:
			b.WriteString(FormatInline(escaped))
			if !last {
				b.WriteString(lineBreak)
			}
		}
	}
	if inCode {
		b.WriteString("</code></pre>")
	}
	return b.String()
}

func openCode(b *strings.Builder, info string) {
	lang := ""
	if f := strings.Fields(info); len(f) > 0 {
		lang = html.EscapeString(f[0])
	}
	if lang == "" {
		b.WriteString(`<pre class="code-block"><code>`)
		return
	}
	b.WriteString(`<pre class="code-block"><code class="language-` + lang + `">`)
}

// FormatInline wraps single-backtick spans of already escaped text in
// inline code markup.
func FormatInline(escaped string) string {
	return reInlineCode.ReplaceAllString(escaped, `<code class="inline-code">$1</code>`)
}

// PlainText strips the substitution markers from content, for feed
// descriptions and meta tags.
func PlainText(content string) string {
	var parts []string
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(line, fence) {
			continue
		}
		line = strings.TrimPrefix(line, "## ")
		line = strings.TrimPrefix(line, "# ")
		line = strings.ReplaceAll(line, "`", "")
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
