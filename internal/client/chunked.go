package client

import (
	"context"
	"fmt"
	"time"

	"profilescout-engine/internal/domain"
)

// Callbacks receive partial results as the chunked run progresses. Either
// field may be nil.
type Callbacks struct {
	// OnChunkComplete fires once per successful chunk with that chunk's
	// profiles.
	OnChunkComplete func(chunk []domain.NormalizedProfile, info domain.ChunkInfo)
	// OnProgress fires before and after every chunk and on terminal states.
	OnProgress func(domain.Progress)
}

// ScrapeChunked fetches all candidate URLs once, then detail-processes them
// in fixed-size slices, accumulating results. A chunk that fails (timeout
// included) is reported through OnProgress and the loop moves on; only the
// initial URL search failing aborts the run.
func (c *Client) ScrapeChunked(ctx context.Context, criteria domain.SearchCriteria, cb Callbacks) ([]domain.NormalizedProfile, error) {
	progress := func(p domain.Progress) {
		if cb.OnProgress != nil {
			cb.OnProgress(p)
		}
	}

	progress(domain.Progress{
		TotalProfiles: criteria.MaxProfiles,
		Status:        "Searching for all profile URLs...",
	})

	urls, err := c.SearchURLs(ctx, criteria)
	if err != nil {
		progress(domain.Progress{Status: "Error during processing", Error: err.Error()})
		return nil, err
	}
	if len(urls) == 0 {
		progress(domain.Progress{
			Status: "No profiles found matching your criteria",
			Error:  "No profile URLs found",
		})
		return []domain.NormalizedProfile{}, nil
	}

	if len(urls) > criteria.MaxProfiles {
		urls = urls[:criteria.MaxProfiles]
	}

	chunkSize := c.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 50
	}
	totalChunks := (len(urls) + chunkSize - 1) / chunkSize

	progress(domain.Progress{
		TotalChunks:   totalChunks,
		TotalProfiles: len(urls),
		Status:        fmt.Sprintf("Found %d profiles. Starting detailed extraction in %d chunks of %d...", len(urls), totalChunks, chunkSize),
	})

	var all []domain.NormalizedProfile
	for chunkIdx := 0; chunkIdx < totalChunks; chunkIdx++ {
		start := chunkIdx * chunkSize
		end := start + chunkSize
		if end > len(urls) {
			end = len(urls)
		}
		chunk := urls[start:end]

		progress(domain.Progress{
			CurrentChunk:      chunkIdx + 1,
			TotalChunks:       totalChunks,
			ProcessedProfiles: len(all),
			TotalProfiles:     len(urls),
			Status:            fmt.Sprintf("Processing detailed data for chunk %d/%d...", chunkIdx+1, totalChunks),
		})

		results, err := c.ScrapeDetails(ctx, chunk)
		if err != nil {
			progress(domain.Progress{
				CurrentChunk:      chunkIdx + 1,
				TotalChunks:       totalChunks,
				ProcessedProfiles: len(all),
				TotalProfiles:     len(urls),
				Status:            fmt.Sprintf("Error in chunk %d/%d: %v. Continuing with next chunk...", chunkIdx+1, totalChunks, err),
				Error:             err.Error(),
			})
			continue
		}

		all = append(all, results...)

		if cb.OnChunkComplete != nil {
			cb.OnChunkComplete(results, domain.ChunkInfo{
				ChunkIndex:        chunkIdx + 1,
				TotalChunks:       totalChunks,
				ProcessedProfiles: len(all),
				TotalProfiles:     len(urls),
			})
		}

		progress(domain.Progress{
			CurrentChunk:      chunkIdx + 1,
			TotalChunks:       totalChunks,
			ProcessedProfiles: len(all),
			TotalProfiles:     len(urls),
			Status:            fmt.Sprintf("Completed chunk %d/%d. %d/%d profiles processed.", chunkIdx+1, totalChunks, len(all), len(urls)),
		})

		if chunkIdx < totalChunks-1 && c.ChunkDelay > 0 {
			select {
			case <-ctx.Done():
				return all, ctx.Err()
			case <-time.After(c.ChunkDelay):
			}
		}
	}

	return all, nil
}
