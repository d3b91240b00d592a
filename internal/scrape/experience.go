package scrape

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	durationYearsRe  = regexp.MustCompile(`(\d+)\s*y`)
	durationMonthsRe = regexp.MustCompile(`(\d+)\s*m`)
)

// ExperienceTotal is the sum over a profile's positions.
type ExperienceTotal struct {
	Years       int
	TotalMonths int
	Human       string
}

// TotalExperience sums every entry's duration: free-text strings like
// "3 yrs 4 mos" are parsed for year/month counts, numeric durationInMonths
// fields count as-is. Entries contributing nothing are skipped; a zero total
// yields the fixed "Experience not specified" string.
func TotalExperience(entries []any) ExperienceTotal {
	total := 0
	for _, e := range entries {
		rec := AsRecord(e)
		if rec == nil {
			continue
		}
		if d := rec.Str("", "duration"); d != "" {
			total += parseDurationMonths(d)
		} else if n, ok := rec.Num("durationInMonths"); ok {
			total += n
		}
	}

	if total == 0 {
		return ExperienceTotal{Human: "Experience not specified"}
	}

	years := total / 12
	months := total % 12
	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", years, plural("year", years)))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", months, plural("month", months)))
	}
	return ExperienceTotal{
		Years:       years,
		TotalMonths: total,
		Human:       strings.Join(parts, " "),
	}
}

func parseDurationMonths(d string) int {
	d = strings.ToLower(d)
	months := 0
	if m := durationYearsRe.FindStringSubmatch(d); m != nil {
		months += atoi(m[1]) * 12
	}
	if m := durationMonthsRe.FindStringSubmatch(d); m != nil {
		months += atoi(m[1])
	}
	return months
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func plural(word string, n int) string {
	if n > 1 {
		return word + "s"
	}
	return word
}
