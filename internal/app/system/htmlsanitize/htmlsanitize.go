// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous HTML from user-supplied free text
// before it is persisted. Feedback text and profile about-me fields come in
// unescaped from the portal frontend.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with scripts, event-handler attributes, and
// javascript: URLs removed. Common formatting tags and safe links survive.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
