package lib

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// nodes whose text content is never document text
var disallowedNodes = map[string]struct{}{
	"audio":    {},
	"link":     {},
	"meta":     {},
	"noscript": {},
	"script":   {},
	"source":   {},
	"style":    {},
	"input":    {},
	"textarea": {},
	"video":    {},
}

// inline nodes that do not break the surrounding text flow
var nonBreakingNodes = map[string]struct{}{
	"a": {}, "b": {}, "big": {}, "del": {}, "em": {}, "i": {}, "ins": {},
	"mark": {}, "q": {}, "s": {}, "small": {}, "span": {}, "strike": {},
	"strong": {}, "sub": {}, "sup": {}, "u": {},
}

// HtmlToText extracts the readable text from an HTML document. Block
// elements are separated by newlines so that sentence segmentation never
// joins text across them.
func HtmlToText(r io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(r)

	var builder strings.Builder
	depthDisallowed := 0
	pendingBreak := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return builder.String(), nil
			}
			return "", tokenizer.Err()

		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if _, ok := disallowedNodes[tag]; ok {
				depthDisallowed++
				continue
			}
			if _, ok := nonBreakingNodes[tag]; !ok {
				pendingBreak = true
			}

		case html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if _, ok := nonBreakingNodes[string(name)]; !ok {
				pendingBreak = true
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if _, ok := disallowedNodes[tag]; ok {
				if depthDisallowed > 0 {
					depthDisallowed--
				}
				continue
			}
			if _, ok := nonBreakingNodes[tag]; !ok {
				pendingBreak = true
			}

		case html.TextToken:
			if depthDisallowed > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				if pendingBreak {
					builder.WriteByte('\n')
				} else {
					builder.WriteByte(' ')
				}
			}
			pendingBreak = false
			builder.WriteString(text)
		}
	}
}
