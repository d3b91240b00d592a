package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims string fields and sanity-checks the numbers.
// Warnings don't block startup; errors do.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Apify.SearchActor = strings.TrimSpace(out.Apify.SearchActor)
	out.Apify.DetailActor = strings.TrimSpace(out.Apify.DetailActor)
	out.Ceipal.Email = strings.TrimSpace(out.Ceipal.Email)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.Apify.SearchActor == "" {
		res.addErr("apify.search_actor is required")
	}
	if out.Apify.DetailActor == "" {
		res.addErr("apify.detail_actor is required")
	}
	if out.Apify.RunTimeoutSeconds <= 0 {
		res.addErr("apify.run_timeout_seconds must be > 0")
	}

	if out.Scrape.BatchSize <= 0 {
		res.addErr("scrape.batch_size must be > 0")
	} else if out.Scrape.BatchSize > 10 {
		res.addWarn("scrape.batch_size is high (%d); the platform may rate-limit you.", out.Scrape.BatchSize)
	}
	if out.Scrape.BatchDelayMS < 0 {
		res.addErr("scrape.batch_delay_ms must be >= 0")
	}

	if out.Client.ChunkSize <= 0 {
		res.addErr("client.chunk_size must be > 0")
	}
	if out.Client.ChunkDelayMS < 0 {
		res.addErr("client.chunk_delay_ms must be >= 0")
	}

	return out, res
}
