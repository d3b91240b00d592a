package scrape

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilescout-engine/internal/apify"
	"profilescout-engine/internal/domain"
	"profilescout-engine/internal/events"
)

// Full pipeline against one stub: search yields URLs, each URL's detail run
// yields one record, and everything comes out normalized.
func TestScrapeEndToEnd(t *testing.T) {
	searchItems := []map[string]any{
		{"profileUrl": "https://www.linkedin.com/in/jane"},
		{"profileUrl": "https://www.linkedin.com/in/raj"},
	}
	stub := &stubPlatform{
		callActor: func(ctx context.Context, actorID string, input any) (apify.Run, error) {
			if actorID == "search-actor" {
				return apify.Run{Status: "SUCCEEDED", DefaultDatasetID: "search-ds"}, nil
			}
			username := input.(map[string]any)["username"].(string)
			return apify.Run{Status: "SUCCEEDED", DefaultDatasetID: "detail-" + username}, nil
		},
		datasetItems: func(ctx context.Context, datasetID string, limit int) ([]map[string]any, error) {
			if datasetID == "search-ds" {
				return searchItems, nil
			}
			username := strings.TrimPrefix(datasetID, "detail-")
			return []map[string]any{{
				"fullName":        strings.ToUpper(username),
				"currentJobTitle": "Engineer",
			}}, nil
		},
	}

	hub := events.NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	s := New(stub, "search-actor", "detail-actor")
	s.BatchDelay = 0
	s.Hub = hub

	profiles, err := s.Scrape(context.Background(), domain.SearchCriteria{Title: "Engineer", MaxProfiles: 10})
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "JANE", profiles[0].FullName)
	assert.Equal(t, "https://www.linkedin.com/in/jane", profiles[0].ProfileURL)
	assert.Equal(t, "RAJ", profiles[1].FullName)
	assert.Equal(t, "Engineer", profiles[1].Title)
	// untouched fields still carry fallbacks
	assert.Equal(t, domain.NotAvailable, profiles[0].Email)
	assert.Equal(t, "Technology", profiles[0].Industry)

	// progress events made it to the hub
	assert.NotEmpty(t, sub)
}

func TestScrapeZeroHitsIsEmptyNotError(t *testing.T) {
	s := New(searchStub(nil), "search", "detail")
	s.BatchDelay = 0

	profiles, err := s.Scrape(context.Background(), domain.SearchCriteria{MaxProfiles: 5})
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}
