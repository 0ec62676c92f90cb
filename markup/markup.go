// Package markup implements the inline marker syntax accepted by overlay
// content strings.
//
// Two markers are recognized:
//
//	[warning] ... [/warning]   highlighted callout block, may span lines
//	**...**                    strong emphasis
//
// Everything outside a marker passes through untouched. The transform is
// pure text substitution; it never inspects or mutates program state.
package markup

import (
	"regexp"
	"strings"

	"github.com/veiltui/veil/styles"
)

var (
	// (?s) lets the warning body span line breaks.
	warningPattern = regexp.MustCompile(`(?s)\[warning\](.*?)\[/warning\]`)
	strongPattern  = regexp.MustCompile(`\*\*([^*]+)\*\*`)
)

// Process rewrites marker spans in content into styled text using the given
// style set. Unmatched text is returned byte-identical.
func Process(content string, s *styles.Styles) string {
	if content == "" {
		return ""
	}

	out := warningPattern.ReplaceAllStringFunc(content, func(m string) string {
		body := warningPattern.FindStringSubmatch(m)[1]
		return s.Callout.Render(strings.TrimSpace(body))
	})

	out = strongPattern.ReplaceAllStringFunc(out, func(m string) string {
		body := strongPattern.FindStringSubmatch(m)[1]
		return s.Emphasis.Render(body)
	})

	return out
}

// HasMarkers reports whether content contains any recognized marker.
func HasMarkers(content string) bool {
	return warningPattern.MatchString(content) || strongPattern.MatchString(content)
}
