package export

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilescout-engine/internal/domain"
)

func renderDoc(t *testing.T, profiles []domain.NormalizedProfile) *goquery.Document {
	t.Helper()
	html, err := ProfileHTML(profiles)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestProfileHTMLSections(t *testing.T) {
	doc := renderDoc(t, []domain.NormalizedProfile{sampleProfile()})

	assert.Equal(t, 1, doc.Find("div.profile").Length())
	assert.Equal(t, "Jane Doe", doc.Find("h1").Text())
	assert.Equal(t, "Data Scientist", doc.Find("p.headline").Text())

	var h3s []string
	doc.Find("h3").Each(func(_ int, s *goquery.Selection) {
		h3s = append(h3s, s.Text())
	})
	assert.Equal(t, []string{"Professional Summary", "Work Experience", "Skills", "Education"}, h3s)

	link := doc.Find("a")
	href, _ := link.Attr("href")
	assert.Equal(t, "https://www.linkedin.com/in/janedoe", href)
}

func TestProfileHTMLSkipsFallbackFields(t *testing.T) {
	p := sampleProfile()
	p.Email = domain.NotAvailable
	p.Phone = ""
	p.ContactDetails = "No contact details available"
	p.Summary = "No summary available"
	p.Skills = domain.NotAvailable
	p.YearsOfExperience = 0

	doc := renderDoc(t, []domain.NormalizedProfile{p})
	body := doc.Find("body").Text()

	assert.NotContains(t, body, "Email:")
	assert.NotContains(t, body, "Phone:")
	assert.NotContains(t, body, "Years of Experience")
	// the summary fallback is a real string, not the sentinel, so it renders
	assert.Contains(t, body, "No summary available")

	var h3s []string
	doc.Find("h3").Each(func(_ int, s *goquery.Selection) {
		h3s = append(h3s, s.Text())
	})
	assert.NotContains(t, h3s, "Skills")
}

func TestProfileHTMLOnePagePerProfile(t *testing.T) {
	p1 := sampleProfile()
	p2 := sampleProfile()
	p2.FullName = "Raj Patel"

	doc := renderDoc(t, []domain.NormalizedProfile{p1, p2})
	profiles := doc.Find("div.profile")
	require.Equal(t, 2, profiles.Length())
	assert.Equal(t, "Raj Patel", profiles.Eq(1).Find("h1").Text())

	html, err := ProfileHTML([]domain.NormalizedProfile{p1, p2})
	require.NoError(t, err)
	assert.Contains(t, html, "page-break-after: always")
}

func TestProfileHTMLEscapesMarkup(t *testing.T) {
	p := sampleProfile()
	p.Summary = "<script>alert(1)</script>"

	html, err := ProfileHTML([]domain.NormalizedProfile{p})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}
