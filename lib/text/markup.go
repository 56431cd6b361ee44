package text

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup drops italic tags, including the malformed "</ i>" closing tag found in
// subtitle files. Everything else, other tags, entities and stray '<' included, is
// kept byte for byte.
func StripMarkup(line string) string {
	if !strings.Contains(line, "<") {
		return line
	}

	var b strings.Builder
	for rest := line; rest != ""; {
		rest = stripItalics(&b, rest)
	}
	return b.String()
}

// stripItalics writes s to b without italic tags. When a tag has swallowed a stray
// '<' it stops there and returns the unread part of s, starting at that '<'.
func stripItalics(b *strings.Builder, s string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	consumed := 0
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			// io.EOF; an unfinished tag at the end is not a token and stays text
			b.WriteString(s[consumed:])
			return ""
		}

		// Raw must be copied before TagName, which lowercases the buffer in place.
		raw := string(tokenizer.Raw())
		if tt != html.TextToken {
			if i := strings.IndexByte(raw[1:], '<'); i >= 0 {
				b.WriteString(raw[:i+1])
				return s[consumed+i+1:]
			}
		}
		consumed += len(raw)
		if !isItalic(tokenizer, tt, raw) {
			b.WriteString(raw)
		}
	}
}

func isItalic(tokenizer *html.Tokenizer, tt html.TokenType, raw string) bool {
	switch tt {
	case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
		name, _ := tokenizer.TagName()
		return string(name) == "i"
	case html.CommentToken:
		// "</ i>" is tokenized as a bogus comment
		return strings.HasPrefix(raw, "</") && strings.TrimSpace(strings.TrimSuffix(raw[2:], ">")) == "i"
	}
	return false
}
