package scrape

import (
	"strings"

	"profilescout-engine/internal/domain"
	"profilescout-engine/internal/scrape/util"
)

// Normalize turns tagged raw detail records into the flat profile shape.
// One function serves both the combined and the split endpoints. urls is the
// original input sequence, used as a positional fallback when a record lost
// its URL tag. Normalization is total: a record missing every field still
// yields a fully populated profile.
func Normalize(records []TaggedRecord, urls []string) []domain.NormalizedProfile {
	out := make([]domain.NormalizedProfile, 0, len(records))
	for _, tr := range records {
		out = append(out, normalizeOne(tr, urls))
	}
	return out
}

func normalizeOne(tr TaggedRecord, urls []string) domain.NormalizedProfile {
	rec := tr.Record
	if rec == nil {
		rec = Record{}
	}

	profileURL := tr.URL
	if profileURL == "" && tr.Index >= 1 && tr.Index <= len(urls) {
		profileURL = urls[tr.Index-1]
	}
	if profileURL == "" {
		profileURL = "#"
	}

	// Detail actors disagree on nesting: prefer the basic_info sub-object,
	// fall back to top-level fields.
	basic := rec.Obj("basic_info", "basicInfo")
	if basic == nil {
		basic = rec
	}

	experiences := rec.List("experience", "experiences")
	var current Record
	if len(experiences) > 0 {
		current = AsRecord(experiences[0])
	}
	if current == nil {
		current = Record{}
	}

	var primaryEdu Record
	if edu := rec.List("education"); len(edu) > 0 {
		primaryEdu = AsRecord(edu[0])
	}
	if primaryEdu == nil {
		primaryEdu = Record{}
	}

	email := basic.Str("", "email")
	if email == "" {
		email = rec.Str("", "email")
	}
	contactInfo := rec.Obj("contact_info", "contactInfo")
	if contactInfo == nil {
		contactInfo = Record{}
	}
	phone := contactInfo.Str("", "phone")
	if phone == "" {
		phone = rec.Str("", "phone")
	}
	website := contactInfo.Str("", "website")
	if website == "" {
		website = rec.Str("", "website")
	}

	var contact []string
	if email != "" {
		contact = append(contact, "Email: "+email)
	}
	if phone != "" {
		contact = append(contact, "Phone: "+phone)
	}
	if website != "" {
		contact = append(contact, "Website: "+website)
	}
	contactDetails := "No contact details available"
	if len(contact) > 0 {
		contactDetails = strings.Join(contact, " | ")
	}

	total := TotalExperience(experiences)

	return domain.NormalizedProfile{
		FullName:           fullName(basic, rec),
		Title:              firstNonEmpty(basic.Str("", "headline"), current.Str("", "title"), rec.Str("", "currentJobTitle"), domain.NotAvailable),
		Company:            firstNonEmpty(basic.Str("", "current_company"), current.Str("", "company", "companyName"), domain.NotAvailable),
		Location:           location(basic, rec),
		ProfileURL:         profileURL,
		Summary:            summary(basic, rec),
		Experience:         total.Human,
		ExperienceInMonths: total.TotalMonths,
		ContactDetails:     contactDetails,
		Email:              firstNonEmpty(email, domain.NotAvailable),
		Phone:              firstNonEmpty(phone, domain.NotAvailable),
		Skills:             skills(rec),
		Education:          firstNonEmpty(primaryEdu.Str("", "school", "degree"), domain.NotAvailable),
		Connections:        firstNonEmpty(basic.Str("", "connection_count", "follower_count"), rec.Str("", "connections"), domain.NotAvailable),
		Industry:           firstNonEmpty(rec.Str("", "industryName", "industry"), "Technology"),
		YearsOfExperience:  total.Years,
	}
}

func fullName(basic, rec Record) string {
	if v := basic.Str("", "fullname", "fullName"); v != "" {
		return v
	}
	first := basic.Str("", "first_name", "firstName")
	last := basic.Str("", "last_name", "lastName")
	if first != "" && last != "" {
		return first + " " + last
	}
	if v := basic.Str("", "name"); v != "" {
		return v
	}
	return rec.Str(domain.NotAvailable, "fullName")
}

func location(basic, rec Record) string {
	if loc := basic.Obj("location"); loc != nil {
		if v := loc.Str("", "full", "city", "country"); v != "" {
			return v
		}
	}
	if v := basic.Str("", "location"); v != "" {
		return v
	}
	return rec.Str(domain.NotAvailable, "locationName", "location")
}

func summary(basic, rec Record) string {
	v := basic.Str("", "about")
	if v == "" {
		v = rec.Str("", "summary", "bio")
	}
	if v == "" {
		return "No summary available"
	}
	return util.StripMarkup(v)
}

// skills keeps at most the first 5 entries, comma-joined.
func skills(rec Record) string {
	list := rec.List("skills")
	var names []string
	for _, v := range list {
		if len(names) == 5 {
			break
		}
		if s := CoerceString(v, ""); s != "" {
			names = append(names, s)
		}
	}
	if len(names) == 0 {
		return domain.NotAvailable
	}
	return strings.Join(names, ", ")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
