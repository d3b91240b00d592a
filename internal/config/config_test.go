package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "app:\n  port: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.App.Port)
	assert.Equal(t, DefaultSearchActor, cfg.Apify.SearchActor)
	assert.Equal(t, DefaultDetailActor, cfg.Apify.DetailActor)
	assert.Equal(t, 3, cfg.Scrape.BatchSize)
	assert.Equal(t, 1000, cfg.Scrape.BatchDelayMS)
	assert.Equal(t, 50, cfg.Client.ChunkSize)
	assert.Equal(t, 2000, cfg.Client.ChunkDelayMS)
	assert.Equal(t, "https://api.ceipal.com/v1/createAuthtoken/", cfg.Ceipal.AuthURL)
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
app:
  port: 8080
apify:
  search_actor: custom/search
scrape:
  batch_size: 5
`))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "custom/search", cfg.Apify.SearchActor)
	assert.Equal(t, 5, cfg.Scrape.BatchSize)
	// unset sections still get defaults
	assert.Equal(t, DefaultDetailActor, cfg.Apify.DetailActor)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APIFY_SEARCH_ACTOR_ID", "env/search")
	t.Setenv("APIFY_DETAIL_ACTOR_ID", " env/detail ")
	t.Setenv("CEIPAL_EMAIL", "recruiter@example.com")

	cfg, err := Load(writeConfig(t, "app:\n  port: 5001\n"))
	require.NoError(t, err)
	ApplyEnv(&cfg)

	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "env/search", cfg.Apify.SearchActor)
	assert.Equal(t, "env/detail", cfg.Apify.DetailActor)
	assert.Equal(t, "recruiter@example.com", cfg.Ceipal.Email)
}

func TestApplyEnvIgnoresEmptyAndInvalid(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("APIFY_SEARCH_ACTOR_ID", "  ")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	ApplyEnv(&cfg)

	assert.Equal(t, 5001, cfg.App.Port)
	assert.Equal(t, DefaultSearchActor, cfg.Apify.SearchActor)
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	cfg.Apify.SearchActor = "  spaced/actor  "

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "spaced/actor", out.Apify.SearchActor)
}

func TestNormalizeAndValidateErrors(t *testing.T) {
	var cfg Config
	cfg.App.Port = 70000
	cfg.Scrape.BatchSize = 0
	cfg.Client.ChunkDelayMS = -1

	_, res := NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
	assert.Contains(t, res.Errors, "app.port must be 1..65535")
	assert.Contains(t, res.Errors, "scrape.batch_size must be > 0")
	assert.Contains(t, res.Errors, "client.chunk_delay_ms must be >= 0")
}

func TestNormalizeAndValidateWarnsOnLargeBatch(t *testing.T) {
	cfg, err := Load(writeConfig(t, "scrape:\n  batch_size: 12\n"))
	require.NoError(t, err)

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "batch_size is high")
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yml")

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	cfg.App.Port = 6001

	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6001, got.App.Port)

	// second save keeps the previous file as .bak
	cfg.App.Port = 6002
	require.NoError(t, SaveAtomic(path, cfg))
	_, err = os.Stat(path + ".bak")
	require.NoError(t, err)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, 6001, bak.App.Port)
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	var cfg Config
	err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg)
	require.Error(t, err)

	var ice *InvalidConfigError
	require.True(t, errors.As(err, &ice))
	assert.NotEmpty(t, ice.Validation.Errors)
}

func TestEnsureUserConfigCopiesDefault(t *testing.T) {
	src := writeConfig(t, "app:\n  port: 7001\n")
	dataDir := t.TempDir()

	path, err := EnsureUserConfig(dataDir, src)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.App.Port)

	// an existing user config is never overwritten
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 7002\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, src)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7002, cfg.App.Port)
}
