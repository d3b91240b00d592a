// scoutctl runs a chunked scrape against a running engine and writes the
// result to an xlsx file. Handy for counts too large for one request.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"profilescout-engine/internal/client"
	"profilescout-engine/internal/config"
	"profilescout-engine/internal/domain"
)

// newClient honors the engine config's chunk settings when the config file is
// around; a bare checkout falls back to the built-in defaults.
func newClient(server string) *client.Client {
	dataDir := os.Getenv("PROFILESCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	for _, path := range []string{
		filepath.Join(dataDir, "config.yml"),
		filepath.Join("config", "config.yml"),
	} {
		if cfg, err := config.Load(path); err == nil {
			return client.NewFromConfig(server, cfg)
		}
	}
	return client.New(server)
}

func main() {
	server := flag.String("server", "http://127.0.0.1:5001", "engine base URL")
	title := flag.String("title", "", "job title filter")
	company := flag.String("company", "", "company filter")
	location := flag.String("location", "", "location filter")
	max := flag.Int("max", 20, "maximum profiles to fetch")
	out := flag.String("o", "linkedin-profiles.xlsx", "output xlsx path")
	flag.Parse()

	criteria := domain.SearchCriteria{
		Title:       *title,
		Company:     *company,
		Location:    *location,
		MaxProfiles: *max,
	}
	if err := criteria.Validate(); err != nil {
		log.Fatalf("invalid criteria: %v", err)
	}

	c := newClient(*server)
	ctx := context.Background()

	profiles, err := c.ScrapeChunked(ctx, criteria, client.Callbacks{
		OnProgress: func(p domain.Progress) {
			if p.Error != "" {
				fmt.Fprintf(os.Stderr, "! %s\n", p.Status)
				return
			}
			fmt.Println(p.Status)
		},
		OnChunkComplete: func(chunk []domain.NormalizedProfile, info domain.ChunkInfo) {
			fmt.Printf("  chunk %d/%d: +%d profiles\n", info.ChunkIndex, info.TotalChunks, len(chunk))
		},
	})
	if err != nil {
		log.Fatalf("scrape failed: %v", err)
	}
	if len(profiles) == 0 {
		log.Fatal("no profiles fetched")
	}

	buf, err := c.DownloadExcel(ctx, profiles)
	if err != nil {
		log.Fatalf("excel export failed: %v", err)
	}
	if err := os.WriteFile(*out, buf, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d profiles to %s\n", len(profiles), *out)
}
