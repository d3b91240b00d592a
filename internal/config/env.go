package config

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnv overlays environment variables onto a loaded config. Env wins
// over the yaml file so deployments can pin actors without editing it.
//
// Secrets (APIFY_API_TOKEN, CEIPAL_PASSWORD, CEIPAL_API_KEY) are not part of
// the config struct; see the secrets package.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = p
		}
	}
	if v := strings.TrimSpace(os.Getenv("APIFY_SEARCH_ACTOR_ID")); v != "" {
		cfg.Apify.SearchActor = v
	}
	if v := strings.TrimSpace(os.Getenv("APIFY_DETAIL_ACTOR_ID")); v != "" {
		cfg.Apify.DetailActor = v
	}
	if v := strings.TrimSpace(os.Getenv("CEIPAL_EMAIL")); v != "" {
		cfg.Ceipal.Email = v
	}
	if v := strings.TrimSpace(os.Getenv("CEIPAL_AUTH_URL")); v != "" {
		cfg.Ceipal.AuthURL = v
	}
	if v := strings.TrimSpace(os.Getenv("CEIPAL_PUSH_URL")); v != "" {
		cfg.Ceipal.PushURL = v
	}
}
