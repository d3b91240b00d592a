package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"profilescout-engine/internal/apify"
	"profilescout-engine/internal/ceipal"
	"profilescout-engine/internal/config"
	"profilescout-engine/internal/events"
	"profilescout-engine/internal/export"
	"profilescout-engine/internal/httpapi"
	"profilescout-engine/internal/scrape"
	"profilescout-engine/internal/secrets"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	dataDir := os.Getenv("PROFILESCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	config.ApplyEnv(&cfg)

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, wmsg := range res.Warnings {
		log.Printf("level=warn msg=%q", wmsg)
	}
	if !res.OK() {
		log.Fatalf("config invalid: %v", res.Errors)
	}

	token, err := secrets.ApifyToken()
	if err != nil {
		log.Fatalf("apify token: %v", err)
	}

	log.Printf("[engine] search_actor=%s detail_actor=%s", cfg.Apify.SearchActor, cfg.Apify.DetailActor)

	platform := apify.New(token, cfg.Apify.RequestsPerSecond, cfg.Apify.Burst)
	platform.RunTimeout = time.Duration(cfg.Apify.RunTimeoutSeconds) * time.Second

	hub := events.NewHub()

	scraper := scrape.New(platform, cfg.Apify.SearchActor, cfg.Apify.DetailActor)
	scraper.BatchSize = cfg.Scrape.BatchSize
	scraper.BatchDelay = time.Duration(cfg.Scrape.BatchDelayMS) * time.Millisecond
	scraper.Hub = hub

	ceipalPassword, _ := secrets.CeipalPassword()
	ceipalAPIKey, _ := secrets.CeipalAPIKey()
	sink := ceipal.New(cfg.Ceipal.AuthURL, cfg.Ceipal.PushURL, cfg.Ceipal.Email, ceipalPassword, ceipalAPIKey)

	mux := httpapi.NewMux(httpapi.Deps{
		Pipeline: scraper,
		PDF:      export.NewPDFRenderer(),
		Ceipal:   sink,
		Secrets:  secrets.Keyring{},
		Hub:      hub,
	})

	handler := httpapi.Chain(mux,
		httpapi.Recover,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s", addr)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
