// Package config loads the site server configuration.
//
// Values come from, in increasing priority: built-in defaults, an optional
// config file (JSON, YAML or TOML, by extension) and SILK_* environment
// variables. Nested keys map to variables with dots replaced by
// underscores, so contact.webhook_url is SILK_CONTACT_WEBHOOK_URL.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gogpu/silk"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SILK"

// Config is the complete server configuration.
type Config struct {
	Addr     string `mapstructure:"addr"`
	LogLevel string `mapstructure:"log_level"`
	Dev      bool   `mapstructure:"dev"`

	Server   ServerConfig   `mapstructure:"server"`
	Contact  ContactConfig  `mapstructure:"contact"`
	Backdrop BackdropConfig `mapstructure:"backdrop"`
	Banner   BannerConfig   `mapstructure:"banner"`
}

// ServerConfig holds HTTP server timeouts.
type ServerConfig struct {
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ContactConfig configures the contact form proxy.
type ContactConfig struct {
	WebhookURL      string        `mapstructure:"webhook_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	FollowRedirects bool          `mapstructure:"follow_redirects"`
}

// BackdropConfig is the embedding contract of the page backdrop and the
// limits of the poster endpoint.
type BackdropConfig struct {
	Quality   string  `mapstructure:"quality"`
	Color     string  `mapstructure:"color"`
	Speed     float64 `mapstructure:"speed"`
	Scale     float64 `mapstructure:"scale"`
	Noise     float64 `mapstructure:"noise"`
	Rotation  float64 `mapstructure:"rotation"`
	MaxWidth  int     `mapstructure:"max_width"`
	MaxHeight int     `mapstructure:"max_height"`
}

// BannerConfig configures the share banner.
type BannerConfig struct {
	// Font is a TrueType/OpenType file used for headlines. Empty selects the
	// built-in Latin font, which has no Arabic glyphs.
	Font   string `mapstructure:"font"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// Configuration errors.
var (
	ErrNoAddr         = errors.New("config: addr is empty")
	ErrBadTimeout     = errors.New("config: contact.timeout must be positive")
	ErrBadWebhookURL  = errors.New("config: contact.webhook_url must be an absolute http(s) URL")
	ErrBadPosterLimit = errors.New("config: backdrop max size must be positive")
	ErrBadBannerSize  = errors.New("config: banner size must be positive")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("dev", false)

	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("contact.webhook_url", "")
	v.SetDefault("contact.timeout", 12*time.Second)
	v.SetDefault("contact.follow_redirects", true)

	d := silk.DefaultParams()
	v.SetDefault("backdrop.quality", d.Quality.String())
	v.SetDefault("backdrop.color", d.Color.Hex())
	v.SetDefault("backdrop.speed", d.Speed)
	v.SetDefault("backdrop.scale", d.Scale)
	v.SetDefault("backdrop.noise", d.Noise)
	v.SetDefault("backdrop.rotation", 2.0)
	v.SetDefault("backdrop.max_width", 1920)
	v.SetDefault("backdrop.max_height", 1080)

	v.SetDefault("banner.font", "")
	v.SetDefault("banner.width", 1200)
	v.SetDefault("banner.height", 630)
}

// Default returns the configuration with no file and no environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config: defaults: %v", err))
	}
	return &c
}

// Load reads the configuration. path may be empty to skip the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the values Load cannot type-check.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return ErrNoAddr
	}
	if c.Contact.Timeout <= 0 {
		return ErrBadTimeout
	}
	if c.Contact.WebhookURL != "" {
		u, err := url.Parse(c.Contact.WebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ErrBadWebhookURL
		}
	}
	if c.Backdrop.MaxWidth <= 0 || c.Backdrop.MaxHeight <= 0 {
		return ErrBadPosterLimit
	}
	if c.Banner.Width <= 0 || c.Banner.Height <= 0 {
		return ErrBadBannerSize
	}
	if _, err := c.Backdrop.Params(); err != nil {
		return err
	}
	return nil
}

// Params converts the backdrop section to validated silk parameters.
func (b BackdropConfig) Params() (silk.Params, error) {
	q, err := silk.ParseQuality(b.Quality)
	if err != nil {
		return silk.Params{}, fmt.Errorf("config: backdrop.quality: %w", err)
	}
	col, err := silk.ParseHex(b.Color)
	if err != nil {
		return silk.Params{}, fmt.Errorf("config: backdrop.color: %w", err)
	}
	p := silk.Params{
		Quality:  q,
		Speed:    b.Speed,
		Scale:    b.Scale,
		Noise:    b.Noise,
		Color:    col,
		Rotation: b.Rotation,
	}
	if err := p.Validate(); err != nil {
		return silk.Params{}, fmt.Errorf("config: backdrop: %w", err)
	}
	return p, nil
}
