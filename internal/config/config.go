package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Storage StorageConfig
	Scrape  ScrapeConfig
	Keys    KeysConfig
	Chat    ChatConfig
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// LogConfig holds the logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig points at the sqlite file holding persisted settings
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// ScrapeConfig holds the scrape provider configuration
type ScrapeConfig struct {
	Provider    string        `mapstructure:"provider"`
	BaseURL     string        `mapstructure:"base_url"`
	VerifyURL   string        `mapstructure:"verify_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	WaitFor     time.Duration `mapstructure:"wait_for"`
	Formats     []string      `mapstructure:"formats"`
	IncludeTags []string      `mapstructure:"include_tags"`
	ExcludeTags []string      `mapstructure:"exclude_tags"`
}

// KeysConfig holds the optional secret used to encrypt the stored API key
type KeysConfig struct {
	Secret string `mapstructure:"secret"`
}

// ChatConfig holds the widget pacing and context settings
type ChatConfig struct {
	MinDelay      time.Duration `mapstructure:"min_delay"`
	MaxDelay      time.Duration `mapstructure:"max_delay"`
	ContextWindow int           `mapstructure:"context_window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("storage.path", "mishmish.db")
	v.SetDefault("scrape.provider", "firecrawl")
	v.SetDefault("scrape.base_url", "https://api.firecrawl.dev")
	v.SetDefault("scrape.verify_url", "https://example.com")
	v.SetDefault("scrape.timeout", "60s")
	v.SetDefault("scrape.wait_for", "3s")
	v.SetDefault("scrape.formats", []string{"markdown", "html"})
	v.SetDefault("scrape.include_tags", []string{"img", "a", "h1", "h2", "h3", "p", "span", "div"})
	v.SetDefault("scrape.exclude_tags", []string{"script", "style", "nav", "footer"})
	v.SetDefault("keys.secret", "")
	v.SetDefault("chat.min_delay", "1s")
	v.SetDefault("chat.max_delay", "3500ms")
	v.SetDefault("chat.context_window", 4)
}

// Load loads the configuration from config.yaml in the working directory, or
// from the file named by CONFIG_PATH when set.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile loads the configuration from path. An empty path searches for
// config.yaml in the working directory; a missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MISHMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Chat.MaxDelay < config.Chat.MinDelay {
		config.Chat.MaxDelay = config.Chat.MinDelay
	}

	return &config, nil
}
