package core

import "strings"

// The content format is a flat HTML fragment. The store never renders
// it; this file is the only place that interprets the markup, so stats,
// export, and title derivation all agree on the plain-text view.

// blockBreaks are the tags whose presence ends a visual line. Closing
// block-level tags and <br> turn into line breaks when stripping so the
// line structure of the rendered text survives.
var blockBreaks = map[string]bool{
	"br": true, "/p": true, "/div": true, "/li": true,
	"/h1": true, "/h2": true, "/h3": true, "/h4": true, "/h5": true, "/h6": true,
	"/blockquote": true, "/pre": true, "/tr": true,
}

var decodeEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

var encodeEntities = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// StripMarkup removes tag syntax from a rich-text fragment, decodes the
// common entities and returns the plain text, trimmed of surrounding
// whitespace.
func StripMarkup(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	for i := 0; i < len(content); {
		if content[i] != '<' {
			b.WriteByte(content[i])
			i++
			continue
		}
		end := strings.IndexByte(content[i:], '>')
		if end < 0 {
			// Unterminated tag: drop the rest, nothing renderable follows.
			break
		}
		if blockBreaks[tagName(content[i+1:i+end])] {
			b.WriteByte('\n')
		}
		i += end + 1
	}

	return strings.TrimSpace(decodeEntities.Replace(b.String()))
}

// tagName extracts the lowercased name (keeping a leading slash) from
// the inside of a tag, e.g. "P class=x" -> "p", "/DIV" -> "/div",
// "br/" -> "br".
func tagName(inner string) string {
	inner = strings.TrimSpace(inner)
	slash := ""
	if strings.HasPrefix(inner, "/") {
		slash = "/"
		inner = inner[1:]
	}
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '/' || c == '>' {
			inner = inner[:i]
			break
		}
	}
	return slash + strings.ToLower(inner)
}

// EscapeMarkup escapes the markup-significant characters of a plain
// text string so it can be embedded in a content fragment verbatim.
func EscapeMarkup(text string) string {
	return encodeEntities.Replace(text)
}

// TextToMarkup converts plain text into the content format: one
// paragraph block per non-blank source line, escaped.
func TextToMarkup(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(EscapeMarkup(line))
		b.WriteString("</p>")
	}
	return b.String()
}

// FirstLine returns the first non-empty line of the plain-text view of
// a content fragment, or "" when the fragment has no meaningful text.
func FirstLine(content string) string {
	for _, line := range strings.Split(StripMarkup(content), "\n") {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
