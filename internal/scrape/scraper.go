// Package scrape drives the two-step acquisition pipeline: a search actor
// run that yields candidate profile URLs, then one detail actor run per URL
// in small concurrent batches, normalized into domain.NormalizedProfile.
package scrape

import (
	"context"
	"log"
	"time"

	"profilescout-engine/internal/apify"
	"profilescout-engine/internal/domain"
	"profilescout-engine/internal/events"
)

// Platform is the slice of the Apify client the pipeline needs; tests stub
// it.
type Platform interface {
	CallActor(ctx context.Context, actorID string, input any) (apify.Run, error)
	DatasetItems(ctx context.Context, datasetID string, limit int) ([]map[string]any, error)
}

type Scraper struct {
	Platform    Platform
	SearchActor string
	DetailActor string

	// BatchSize bounds how many detail runs are in flight at once.
	BatchSize  int
	BatchDelay time.Duration

	// Hub receives progress events when set.
	Hub *events.Hub
}

func New(platform Platform, searchActor, detailActor string) *Scraper {
	return &Scraper{
		Platform:    platform,
		SearchActor: searchActor,
		DetailActor: detailActor,
		BatchSize:   3,
		BatchDelay:  time.Second,
	}
}

// Scrape runs the full pipeline for one set of criteria. Zero search hits is
// an empty result, not an error; per-profile detail failures shrink the
// output.
func (s *Scraper) Scrape(ctx context.Context, criteria domain.SearchCriteria) ([]domain.NormalizedProfile, error) {
	urls, err := s.SearchProfileURLs(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		log.Printf("[scrape] no profile urls found for criteria title=%q location=%q", criteria.Title, criteria.Location)
		return []domain.NormalizedProfile{}, nil
	}

	records := s.FetchDetails(ctx, urls)
	return Normalize(records, urls), nil
}

func (s *Scraper) publish(reqID, typ string, data any) {
	if s.Hub == nil {
		return
	}
	s.Hub.Publish(events.MakeEvent(reqID, typ, 1, data))
}
