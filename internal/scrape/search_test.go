package scrape

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilescout-engine/internal/apify"
	"profilescout-engine/internal/domain"
)

type stubPlatform struct {
	callActor    func(ctx context.Context, actorID string, input any) (apify.Run, error)
	datasetItems func(ctx context.Context, datasetID string, limit int) ([]map[string]any, error)
}

func (s *stubPlatform) CallActor(ctx context.Context, actorID string, input any) (apify.Run, error) {
	return s.callActor(ctx, actorID, input)
}

func (s *stubPlatform) DatasetItems(ctx context.Context, datasetID string, limit int) ([]map[string]any, error) {
	return s.datasetItems(ctx, datasetID, limit)
}

func searchStub(items []map[string]any) *stubPlatform {
	return &stubPlatform{
		callActor: func(ctx context.Context, actorID string, input any) (apify.Run, error) {
			return apify.Run{ID: "run-1", Status: "SUCCEEDED", DefaultDatasetID: "ds-1"}, nil
		},
		datasetItems: func(ctx context.Context, datasetID string, limit int) ([]map[string]any, error) {
			if limit > 0 && limit < len(items) {
				return items[:limit], nil
			}
			return items, nil
		},
	}
}

func TestSearchProfileURLs(t *testing.T) {
	items := []map[string]any{
		{"profileUrl": "https://www.linkedin.com/in/alpha"},
		{"linkedinUrl": "https://linkedin.com/in/bravo?miniProfile=1"},
		{"url": "https://example.com/not-a-profile"},
		{"name": "no url at all"},
		{"link": "https://www.linkedin.com/in/charlie/"},
	}
	s := New(searchStub(items), "harvestapi/linkedin-profile-search", "detail")

	urls, err := s.SearchProfileURLs(context.Background(), domain.SearchCriteria{Title: "SRE", MaxProfiles: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.linkedin.com/in/alpha",
		"https://linkedin.com/in/bravo?miniProfile=1",
		"https://www.linkedin.com/in/charlie/",
	}, urls)
}

func TestSearchProfileURLsCapped(t *testing.T) {
	var items []map[string]any
	for i := 0; i < 30; i++ {
		items = append(items, map[string]any{"profileUrl": "https://linkedin.com/in/user" + string(rune('a'+i))})
	}
	s := New(searchStub(items), "search", "detail")

	urls, err := s.SearchProfileURLs(context.Background(), domain.SearchCriteria{MaxProfiles: 5})
	require.NoError(t, err)
	assert.Len(t, urls, 5)
}

func TestSearchProfileURLsZeroResults(t *testing.T) {
	s := New(searchStub(nil), "search", "detail")
	urls, err := s.SearchProfileURLs(context.Background(), domain.SearchCriteria{MaxProfiles: 5})
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestSearchProfileURLsActorError(t *testing.T) {
	s := New(&stubPlatform{
		callActor: func(ctx context.Context, actorID string, input any) (apify.Run, error) {
			return apify.Run{}, errors.New("quota exceeded")
		},
	}, "search", "detail")

	_, err := s.SearchProfileURLs(context.Background(), domain.SearchCriteria{MaxProfiles: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile search failed")
}

func TestBuildSearchInputDefaultShape(t *testing.T) {
	in := buildSearchInput("harvestapi/linkedin-profile-search", domain.SearchCriteria{
		Title:       "Data Scientist",
		Location:    "Canada",
		MaxProfiles: 15,
	})

	assert.Equal(t, 15, in["maxItems"])
	assert.Equal(t, []string{"Data Scientist"}, in["currentJobTitles"])
	assert.Equal(t, "Data Scientist", in["searchQuery"])
	assert.Equal(t, []string{"Canada"}, in["locations"])
	// absent criteria fields are omitted, not sent empty
	_, hasCompanies := in["currentCompanies"]
	assert.False(t, hasCompanies)
	_, hasProxy := in["proxySettings"]
	assert.True(t, hasProxy)
}

func TestBuildSearchInputLogicalScrapersShape(t *testing.T) {
	in := buildSearchInput("logical_scrapers/linkedin-people-search", domain.SearchCriteria{
		Company:     "Acme",
		MaxProfiles: 7,
	})

	assert.Equal(t, 7, in["maxItems"])
	assert.Equal(t, []string{"Acme"}, in["currentCompanies"])
	assert.Equal(t, []string{}, in["currentJobTitles"])
	// this provider nests proxy settings under "proxy"
	_, hasProxy := in["proxy"]
	assert.True(t, hasProxy)
	_, hasProxySettings := in["proxySettings"]
	assert.False(t, hasProxySettings)
}
