package scrape

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"profilescout-engine/internal/scrape/util"
)

// TaggedRecord is one raw detail payload tagged with where it came from.
type TaggedRecord struct {
	Record Record
	// URL is the profile URL the detail run was issued for.
	URL string
	// Index is the 1-based position of URL in the input sequence.
	Index int
}

// FetchDetails runs the detail actor for every URL in fixed-size batches.
// All requests in a batch go out concurrently and the whole batch is awaited
// before the next starts; batches are spaced by BatchDelay. A URL that fails
// (bad path, actor error, empty dataset) is logged and dropped — it never
// aborts the batch. Returned records keep input order.
func (s *Scraper) FetchDetails(ctx context.Context, urls []string) []TaggedRecord {
	batchSize := s.BatchSize
	if batchSize <= 0 {
		batchSize = 3
	}

	var out []TaggedRecord
	total := len(urls)
	batches := (total + batchSize - 1) / batchSize

	for start := 0; start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}
		batch := urls[start:end]
		batchNo := start/batchSize + 1

		// slots keep intra-batch results in input order
		slots := make([]*TaggedRecord, len(batch))
		var g errgroup.Group
		for i, profileURL := range batch {
			i, profileURL := i, profileURL
			globalIdx := start + i + 1
			g.Go(func() error {
				rec, ok := s.fetchOne(ctx, profileURL, globalIdx, total)
				if ok {
					slots[i] = &TaggedRecord{Record: rec, URL: profileURL, Index: globalIdx}
				}
				return nil
			})
		}
		_ = g.Wait()

		kept := 0
		for _, r := range slots {
			if r != nil {
				out = append(out, *r)
				kept++
			}
		}
		log.Printf("[details] batch %d/%d done ok=%d/%d total=%d/%d",
			batchNo, batches, kept, len(batch), len(out), total)
		s.publish("", "detail_batch", map[string]any{
			"batch":     batchNo,
			"batches":   batches,
			"kept":      kept,
			"processed": len(out),
			"total":     total,
		})

		if end < total && s.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return out
			case <-time.After(s.BatchDelay):
			}
		}
	}
	return out
}

func (s *Scraper) fetchOne(ctx context.Context, profileURL string, idx, total int) (Record, bool) {
	username := util.ExtractUsername(profileURL)
	if username == "" {
		log.Printf("[details] [%d/%d] not a profile url, skipping: %s", idx, total, profileURL)
		return nil, false
	}

	run, err := s.Platform.CallActor(ctx, s.DetailActor, map[string]any{"username": username})
	if err != nil {
		log.Printf("[details] [%d/%d] actor error for %s: %v", idx, total, username, err)
		return nil, false
	}

	items, err := s.Platform.DatasetItems(ctx, run.DefaultDatasetID, 0)
	if err != nil {
		log.Printf("[details] [%d/%d] dataset error for %s: %v", idx, total, username, err)
		return nil, false
	}
	if len(items) == 0 {
		log.Printf("[details] [%d/%d] no detail record for %s", idx, total, username)
		return nil, false
	}
	return Record(items[0]), true
}
