// Package escape implements the HTML entity substitution used by the
// message pipeline.
package escape

import "strings"

// HTML escapes &, < and > in that order, so the & introduced by escaping
// < and > is never re-escaped. No other characters are altered.
//
// Callers must apply it exactly once per string: a second application
// double-escapes.
func HTML(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}
