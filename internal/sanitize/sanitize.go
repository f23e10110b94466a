// Package sanitize strips markup from user-supplied review comments
// before they are persisted. The policy removes every tag, drops the
// contents of script and style elements, and keeps the surrounding
// plain text intact.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Comment returns the plain-text form of a review comment. Tags are
// removed, entities emitted by the sanitizer are decoded back so that
// characters like & survive verbatim, and surrounding whitespace is
// trimmed. An empty result means the comment had no textual content.
func Comment(raw string) string {
	clean := policy.Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(clean))
}
