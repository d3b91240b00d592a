package util

import (
	"regexp"
	"strings"
)

// Profile URLs look like https://www.linkedin.com/in/<username>, possibly
// with trailing path segments or query junk.
var profilePathRe = regexp.MustCompile(`linkedin\.com/in/([^/?#]+)`)

// ExtractUsername pulls the /in/<username> segment out of a profile URL.
// Returns "" when the URL doesn't point at a profile.
func ExtractUsername(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	m := profilePathRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}

// IsProfileURL reports whether raw matches the LinkedIn profile path pattern.
func IsProfileURL(raw string) bool {
	return ExtractUsername(raw) != ""
}
