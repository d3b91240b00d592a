package ceipal

import (
	"regexp"
	"strings"
)

var (
	legacyYearsRe  = regexp.MustCompile(`(\d+)\s+yrs?`)
	legacyMonthsRe = regexp.MustCompile(`(\d+)\s+mos?`)
)

// parseLegacyDuration is a best-effort parser for the composite
// "<location> · <N> yrs <M> mos" strings LinkedIn's UI renders. It is
// coupled to that exact formatting (the '·' separator in particular) and
// exists only as a fallback when no computed month total is available; any
// format drift stays contained here.
func parseLegacyDuration(s string) (years, months string) {
	parts := strings.Split(s, "·")
	if len(parts) < 2 {
		return "", ""
	}
	tail := strings.TrimSpace(parts[1])
	if m := legacyYearsRe.FindStringSubmatch(tail); m != nil {
		years = m[1]
	}
	if m := legacyMonthsRe.FindStringSubmatch(tail); m != nil {
		months = m[1]
	}
	return years, months
}
