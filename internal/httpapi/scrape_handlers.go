package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"profilescout-engine/internal/domain"
	"profilescout-engine/internal/scrape"
)

// Pipeline is the slice of the scraper the handlers need; tests stub it.
type Pipeline interface {
	Scrape(ctx context.Context, criteria domain.SearchCriteria) ([]domain.NormalizedProfile, error)
	SearchProfileURLs(ctx context.Context, criteria domain.SearchCriteria) ([]string, error)
	FetchDetails(ctx context.Context, urls []string) []scrape.TaggedRecord
}

type ScrapeHandler struct {
	Pipeline Pipeline
}

// Scrape runs the full pipeline in one call: search then batched details.
func (h ScrapeHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	criteria, ok := decodeCriteria(w, r)
	if !ok {
		return
	}

	profiles, err := h.Pipeline.Scrape(r.Context(), criteria)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error scraping data", err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// SearchURLs is step one of the chunked flow: candidate URLs only.
func (h ScrapeHandler) SearchURLs(w http.ResponseWriter, r *http.Request) {
	criteria, ok := decodeCriteria(w, r)
	if !ok {
		return
	}

	urls, err := h.Pipeline.SearchProfileURLs(r.Context(), criteria)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error searching profile URLs", err)
		return
	}
	if urls == nil {
		urls = []string{}
	}
	writeJSON(w, http.StatusOK, urls)
}

// ScrapeDetails is step two: detail-process one slice of URLs. A missing or
// non-array profileUrls field is the one documented 400.
func (h ScrapeHandler) ScrapeDetails(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProfileURLs json.RawMessage `json:"profileUrls"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "profileUrls array is required", err)
		return
	}
	// an explicit JSON null arrives as the literal bytes "null", not as a
	// nil RawMessage
	var urls []string
	if body.ProfileURLs == nil || bytes.Equal(body.ProfileURLs, []byte("null")) ||
		json.Unmarshal(body.ProfileURLs, &urls) != nil {
		writeError(w, http.StatusBadRequest, "profileUrls array is required", nil)
		return
	}

	records := h.Pipeline.FetchDetails(r.Context(), urls)
	profiles := scrape.Normalize(records, urls)
	writeJSON(w, http.StatusOK, profiles)
}

func decodeCriteria(w http.ResponseWriter, r *http.Request) (domain.SearchCriteria, bool) {
	var criteria domain.SearchCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return criteria, false
	}
	if err := criteria.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid search criteria", err)
		return criteria, false
	}
	return criteria, true
}
