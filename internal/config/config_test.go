package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  host: 0.0.0.0
  port: "9090"
log:
  level: debug
scrape:
  base_url: https://scrape.example.com
  wait_for: 5s
  include_tags: ["img", "p"]
keys:
  secret: 0123456789abcdef0123456789abcdef
chat:
  min_delay: 10ms
  max_delay: 20ms
  context_window: 6
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	tmp, err := os.CreateTemp(t.TempDir(), "cfg-*.yaml")
	require.NoError(t, err)
	_, err = tmp.WriteString(body)
	require.NoError(t, err)
	require.NoError(t, tmp.Close())
	return tmp.Name()
}

// TestLoad_ConfigPath verifies that Load reads the file named by CONFIG_PATH.
func TestLoad_ConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, sampleConfig))

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "https://scrape.example.com", cfg.Scrape.BaseURL)
	require.Equal(t, 5*time.Second, cfg.Scrape.WaitFor)
	require.Equal(t, []string{"img", "p"}, cfg.Scrape.IncludeTags)
	require.Equal(t, "0123456789abcdef0123456789abcdef", cfg.Keys.Secret)
	require.Equal(t, 10*time.Millisecond, cfg.Chat.MinDelay)
	require.Equal(t, 20*time.Millisecond, cfg.Chat.MaxDelay)
	require.Equal(t, 6, cfg.Chat.ContextWindow)

	// untouched sections keep their defaults
	require.Equal(t, "mishmish.db", cfg.Storage.Path)
	require.Equal(t, []string{"script", "style", "nav", "footer"}, cfg.Scrape.ExcludeTags)
}

func TestLoadFile_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadFile("")
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "firecrawl", cfg.Scrape.Provider)
	require.Equal(t, "https://api.firecrawl.dev", cfg.Scrape.BaseURL)
	require.Equal(t, 3*time.Second, cfg.Scrape.WaitFor)
	require.Equal(t, []string{"markdown", "html"}, cfg.Scrape.Formats)
	require.Equal(t, time.Second, cfg.Chat.MinDelay)
	require.Equal(t, 3500*time.Millisecond, cfg.Chat.MaxDelay)
	require.Equal(t, 4, cfg.Chat.ContextWindow)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	t.Setenv("MISHMISH_SERVER_PORT", "7070")
	t.Setenv("MISHMISH_SCRAPE_BASE_URL", "http://localhost:3002")

	cfg, err := LoadFile(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Equal(t, "7070", cfg.Server.Port)
	require.Equal(t, "http://localhost:3002", cfg.Scrape.BaseURL)
}

func TestLoadFile_MissingExplicitFile(t *testing.T) {
	_, err := LoadFile("/does/not/exist/config.yaml")
	require.Error(t, err)
}

func TestLoadFile_MaxDelayClamped(t *testing.T) {
	path := writeConfig(t, "chat:\n  min_delay: 2s\n  max_delay: 1s\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Chat.MaxDelay)
}
