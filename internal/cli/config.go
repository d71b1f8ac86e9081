package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hupe1980/reclist"
	"github.com/hupe1980/reclist/source"
)

// Config holds CLI configuration.
type Config struct {
	PageSize  int             `mapstructure:"page_size" json:"pageSize"`
	Locale    string          `mapstructure:"locale" json:"locale"`
	Highlight HighlightConfig `mapstructure:"highlight" json:"highlight"`
	Log       LogConfig       `mapstructure:"log" json:"log"`
	Load      LoadConfig      `mapstructure:"load" json:"load"`
}

// HighlightConfig holds the highlight marker settings.
type HighlightConfig struct {
	Class string `mapstructure:"class" json:"class"`
	Tag   string `mapstructure:"tag" json:"tag"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// LoadConfig holds record file settings.
type LoadConfig struct {
	Dir         string `mapstructure:"dir" json:"dir"`
	Concurrency int    `mapstructure:"concurrency" json:"concurrency"`
}

// loadConfig reads configuration from file and env. Env var overrides use
// prefix RECLIST_. An explicit path must exist; the default
// $HOME/.config/reclist/config.{toml,yaml} is optional.
func loadConfig(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("page_size", reclist.DefaultPageSize)
	v.SetDefault("locale", "en")
	v.SetDefault("highlight.class", "highlight")
	v.SetDefault("highlight.tag", "span")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("load.dir", ".")
	v.SetDefault("load.concurrency", source.DefaultConcurrency)

	if path == "" {
		path = os.Getenv("RECLIST_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "reclist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RECLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
