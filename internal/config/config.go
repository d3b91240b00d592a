package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Apify struct {
		SearchActor       string  `yaml:"search_actor"`
		DetailActor       string  `yaml:"detail_actor"`
		RunTimeoutSeconds int     `yaml:"run_timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"apify"`

	Scrape struct {
		BatchSize    int `yaml:"batch_size"`
		BatchDelayMS int `yaml:"batch_delay_ms"`
	} `yaml:"scrape"`

	Ceipal struct {
		AuthURL string `yaml:"auth_url"`
		PushURL string `yaml:"push_url"`
		Email   string `yaml:"email"`
	} `yaml:"ceipal"`

	Client struct {
		ChunkSize    int `yaml:"chunk_size"`
		ChunkDelayMS int `yaml:"chunk_delay_ms"`
	} `yaml:"client"`
}

// Actor IDs the engine falls back to when neither config nor env names one.
const (
	DefaultSearchActor = "harvestapi/linkedin-profile-search"
	DefaultDetailActor = "apimaestro/linkedin-profile-detail"
)

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 5001
	}
	if cfg.Apify.SearchActor == "" {
		cfg.Apify.SearchActor = DefaultSearchActor
	}
	if cfg.Apify.DetailActor == "" {
		cfg.Apify.DetailActor = DefaultDetailActor
	}
	if cfg.Apify.RunTimeoutSeconds == 0 {
		cfg.Apify.RunTimeoutSeconds = 300
	}
	if cfg.Apify.RequestsPerSecond == 0 {
		cfg.Apify.RequestsPerSecond = 5
	}
	if cfg.Apify.Burst == 0 {
		cfg.Apify.Burst = 5
	}
	if cfg.Scrape.BatchSize == 0 {
		cfg.Scrape.BatchSize = 3
	}
	if cfg.Scrape.BatchDelayMS == 0 {
		cfg.Scrape.BatchDelayMS = 1000
	}
	if cfg.Ceipal.AuthURL == "" {
		cfg.Ceipal.AuthURL = "https://api.ceipal.com/v1/createAuthtoken/"
	}
	if cfg.Client.ChunkSize == 0 {
		cfg.Client.ChunkSize = 50
	}
	if cfg.Client.ChunkDelayMS == 0 {
		cfg.Client.ChunkDelayMS = 2000
	}
}
