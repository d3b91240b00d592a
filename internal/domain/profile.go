package domain

import "strings"

// NormalizedProfile is the one stable shape the rest of the engine depends
// on. Every field is populated during normalization; fields with no source
// data carry their documented fallback instead of being empty.
type NormalizedProfile struct {
	FullName           string `json:"fullName"`
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	ProfileURL         string `json:"profileUrl"`
	Summary            string `json:"summary"`
	Experience         string `json:"experience"`
	ExperienceInMonths int    `json:"experienceInMonths"`
	ContactDetails     string `json:"contactDetails"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Skills             string `json:"skills"`
	Education          string `json:"education"`
	Connections        string `json:"connections"`
	Industry           string `json:"industry"`
	YearsOfExperience  int    `json:"yearsOfExperience"`
}

// NotAvailable is the fallback sentinel for fields the scrape could not fill.
const NotAvailable = "N/A"

// HasEmail reports whether the profile carries a real scraped email address.
func (p NormalizedProfile) HasEmail() bool {
	return p.Email != "" && p.Email != NotAvailable
}

// SplitFullName splits on the first space: first token vs the remainder.
func SplitFullName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = strings.TrimSpace(parts[1])
	}
	return first, last
}

// SplitLocation splits a free-text location on commas into positional
// city/state/country. Fewer parts leave the later fields empty.
func SplitLocation(loc string) (city, state, country string) {
	if loc == "" || loc == NotAvailable {
		return "", "", ""
	}
	parts := strings.Split(loc, ",")
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	return get(0), get(1), get(2)
}
