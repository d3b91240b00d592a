package scrape

import (
	"context"
	"fmt"
	"log"
	"strings"

	"profilescout-engine/internal/domain"
	"profilescout-engine/internal/scrape/util"
)

// Field names search actors have been seen using for the profile URL, in
// priority order.
var urlAliases = []string{
	"profileUrl",
	"linkedinUrl",
	"url",
	"linkedin_url",
	"profile_url",
	"link",
	"profileLink",
}

// SearchProfileURLs asks the search actor for candidates and returns at most
// criteria.MaxProfiles profile URLs, each matching the /in/<username>
// pattern. Dedup is not attempted; the detail step tolerates repeats.
func (s *Scraper) SearchProfileURLs(ctx context.Context, criteria domain.SearchCriteria) ([]string, error) {
	input := buildSearchInput(s.SearchActor, criteria)

	log.Printf("[search] actor=%s maxProfiles=%d", s.SearchActor, criteria.MaxProfiles)

	run, err := s.Platform.CallActor(ctx, s.SearchActor, input)
	if err != nil {
		return nil, fmt.Errorf("profile search failed: %w", err)
	}

	items, err := s.Platform.DatasetItems(ctx, run.DefaultDatasetID, criteria.MaxProfiles)
	if err != nil {
		return nil, fmt.Errorf("profile search failed: %w", err)
	}

	urls := make([]string, 0, len(items))
	for _, item := range items {
		rec := Record(item)
		raw := rec.Str("", urlAliases...)
		if !util.IsProfileURL(raw) {
			continue
		}
		urls = append(urls, raw)
		if len(urls) == criteria.MaxProfiles {
			break
		}
	}

	log.Printf("[search] %d/%d items yielded profile urls", len(urls), len(items))
	return urls, nil
}

// buildSearchInput shapes the actor input for whichever search provider is
// configured. Absent criteria fields are omitted entirely; the actors treat
// empty values as filters.
func buildSearchInput(actorID string, criteria domain.SearchCriteria) map[string]any {
	if strings.Contains(actorID, "logical_scrapers/linkedin-people-search") {
		toList := func(s string) []string {
			if s == "" {
				return []string{}
			}
			return []string{s}
		}
		return map[string]any{
			"currentCompanies":   toList(criteria.Company),
			"currentJobTitles":   toList(criteria.Title),
			"locations":          toList(criteria.Location),
			"maxItems":           criteria.MaxProfiles,
			"profileScraperMode": "Short",
			"searchQuery":        criteria.Title,
			// this provider nests proxy settings under "proxy"
			"proxy": map[string]any{
				"useApifyProxy":    true,
				"apifyProxyGroups": []string{"RESIDENTIAL"},
			},
		}
	}

	// Default shape (harvestapi/linkedin-profile-search).
	input := map[string]any{
		"maxItems":           criteria.MaxProfiles,
		"profileScraperMode": "Short",
		"proxySettings": map[string]any{
			"useApifyProxy":    true,
			"apifyProxyGroups": []string{"RESIDENTIAL"},
		},
	}
	if criteria.Title != "" {
		input["currentJobTitles"] = []string{criteria.Title}
		input["searchQuery"] = criteria.Title
	}
	if criteria.Company != "" {
		input["currentCompanies"] = []string{criteria.Company}
	}
	if criteria.Location != "" {
		input["locations"] = []string{criteria.Location}
	}
	return input
}
