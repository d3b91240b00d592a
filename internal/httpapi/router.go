package httpapi

import (
	"net/http"

	"profilescout-engine/internal/events"
)

type Deps struct {
	Pipeline Pipeline
	PDF      PDFRenderer
	Ceipal   ApplicantSink
	Secrets  SecretStore
	Hub      *events.Hub
}

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	sh := ScrapeHandler{Pipeline: d.Pipeline}
	mux.HandleFunc("/api/scrape", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Scrape,
	}))
	mux.HandleFunc("/api/search-urls", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SearchURLs,
	}))
	mux.HandleFunc("/api/scrape-details", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.ScrapeDetails,
	}))

	eh := ExportHandler{PDF: d.PDF}
	mux.HandleFunc("/api/download/excel", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.Excel,
	}))
	mux.HandleFunc("/api/download/pdf", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: eh.PDFDownload,
	}))

	ch := CeipalHandler{Sink: d.Ceipal}
	mux.HandleFunc("/api/ceipal/sync", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.Sync,
	}))

	secH := SecretsHandler{Store: d.Secrets}
	mux.HandleFunc("/api/secrets", methodMux(map[string]http.HandlerFunc{
		http.MethodPost:   secH.Set,
		http.MethodDelete: secH.Delete,
	}))

	ev := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ev.ServeSSE,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	return mux
}
