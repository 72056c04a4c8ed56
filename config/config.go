package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Blockmail/blockmail/internal/domain"
)

const VERSION = "1.2"

// Config carries everything the render CLI needs: where overridden
// templates live, how chatty to be, and the theme defaults applied when a
// render request ships no settings of its own.
type Config struct {
	TemplateDir string
	LogLevel    string
	Minify      bool
	Defaults    domain.GlobalEmailSettings
	Version     string
}

// Load reads configuration from BLOCKMAIL_* environment variables with
// sensible defaults for everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BLOCKMAIL")
	v.AutomaticEnv()

	v.SetDefault("TEMPLATE_DIR", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MINIFY", false)
	v.SetDefault("FONT_FAMILY", "Helvetica Neue")
	v.SetDefault("PRIMARY_COLOR", "#4f46e5")
	v.SetDefault("BACKGROUND_COLOR", "#f4f4f7")
	v.SetDefault("MAX_WIDTH", 600)
	v.SetDefault("VERSION", VERSION)

	cfg := &Config{
		TemplateDir: v.GetString("TEMPLATE_DIR"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Minify:      v.GetBool("MINIFY"),
		Defaults: domain.GlobalEmailSettings{
			FontFamily:      v.GetString("FONT_FAMILY"),
			PrimaryColor:    v.GetString("PRIMARY_COLOR"),
			BackgroundColor: v.GetString("BACKGROUND_COLOR"),
			MaxWidth:        v.GetInt("MAX_WIDTH"),
		},
		Version: v.GetString("VERSION"),
	}

	if err := cfg.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default settings: %w", err)
	}
	return cfg, nil
}
