// Package config loads formatter style settings from a .docfmt.yaml
// file, falling back to the documented defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/docfmt/docfmt/internal/format"
)

// Config mirrors the .docfmt.yaml schema.
type Config struct {
	PrintWidth               int    `mapstructure:"printWidth"`
	TabWidth                 int    `mapstructure:"tabWidth"`
	ProseWrap                string `mapstructure:"proseWrap"`
	UnorderedListBulletStyle string `mapstructure:"unorderedListBulletStyle"`
}

// Load reads .docfmt.yaml from the current directory or
// ~/.config/docfmt, with defaults applied for anything unset. A missing
// config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".docfmt")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "docfmt"))
	}

	v.SetDefault("printWidth", 80)
	v.SetDefault("tabWidth", 2)
	v.SetDefault("proseWrap", "preserve")
	v.SetDefault("unorderedListBulletStyle", "dash")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Options validates the config and converts it to printer options.
func (c *Config) Options() (format.Options, error) {
	opts := format.Options{
		PrintWidth:  c.PrintWidth,
		TabWidth:    c.TabWidth,
		ProseWrap:   format.ProseWrap(c.ProseWrap),
		BulletStyle: format.BulletStyle(c.UnorderedListBulletStyle),
	}
	if opts.PrintWidth <= 0 {
		return opts, fmt.Errorf("printWidth must be positive, got %d", opts.PrintWidth)
	}
	if opts.TabWidth <= 0 {
		return opts, fmt.Errorf("tabWidth must be positive, got %d", opts.TabWidth)
	}
	switch opts.ProseWrap {
	case format.ProseWrapAlways, format.ProseWrapNever, format.ProseWrapPreserve:
	default:
		return opts, fmt.Errorf("proseWrap must be always, never or preserve, got %q", c.ProseWrap)
	}
	switch opts.BulletStyle {
	case format.BulletDash, format.BulletAsterisk, format.BulletPlus:
	default:
		return opts, fmt.Errorf("unorderedListBulletStyle must be dash, asterisk or plus, got %q", c.UnorderedListBulletStyle)
	}
	return opts, nil
}
