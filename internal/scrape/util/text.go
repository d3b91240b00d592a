package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// StripMarkup flattens scraped rich-text (about/summary blobs sometimes
// arrive as HTML fragments) into plain text. Non-HTML input passes through
// untouched apart from whitespace cleanup.
func StripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return CleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return CleanText(s)
	}
	return CleanText(doc.Text())
}
