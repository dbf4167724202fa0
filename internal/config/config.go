// Package config loads site configuration with Viper from an optional YAML
// file and the environment. The historical variable names (DATABASE_URL,
// RESEND_API_KEY, CONTACT_TO_EMAIL, CONTACT_FROM_EMAIL, SITE_URL,
// NEXT_PUBLIC_SITE_URL, SERVER_ADDR) are bound explicitly; every key can also be
// set as BASTIAN_<SECTION>_<KEY>.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"bastianbuilt.com/internal/logging"
)

const (
	DefaultServerAddr = ":8080"
	DefaultSiteURL    = "https://bastian.com.au"
	DefaultContactTo  = "contact@bastianbuilt.com"
	DefaultFrom       = "Portfolio Contact <onboarding@resend.dev>"
)

// ErrMissingDatabaseURL is returned when storage is needed but not configured
var ErrMissingDatabaseURL = errors.New("missing DATABASE_URL")

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Mail     MailConfig     `mapstructure:"mail"`
	Site     SiteConfig     `mapstructure:"site"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	PublicDir       string        `mapstructure:"public_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds contact storage settings
type DatabaseConfig struct {
	URL         string `mapstructure:"url"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// MailConfig holds notification email settings
type MailConfig struct {
	ResendAPIKey string `mapstructure:"resend_api_key"`
	To           string `mapstructure:"to"`
	From         string `mapstructure:"from"`
}

// SiteConfig holds public site settings
type SiteConfig struct {
	URL string `mapstructure:"url"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envBindings maps config keys to the environment variables read for them,
// in priority order.
var envBindings = map[string][]string{
	"server.addr":             {"BASTIAN_SERVER_ADDR", "SERVER_ADDR"},
	"database.url":            {"BASTIAN_DATABASE_URL", "DATABASE_URL"},
	"mail.resend_api_key":     {"BASTIAN_MAIL_RESEND_API_KEY", "RESEND_API_KEY"},
	"mail.to":                 {"BASTIAN_MAIL_TO", "CONTACT_TO_EMAIL"},
	"mail.from":               {"BASTIAN_MAIL_FROM", "CONTACT_FROM_EMAIL"},
	"site.url":                {"BASTIAN_SITE_URL", "SITE_URL", "NEXT_PUBLIC_SITE_URL"},
	"log.level":               {"BASTIAN_LOG_LEVEL", "LOG_LEVEL"},
	"log.format":              {"BASTIAN_LOG_FORMAT", "LOG_FORMAT"},
	"server.public_dir":       {"BASTIAN_SERVER_PUBLIC_DIR"},
	"server.shutdown_timeout": {"BASTIAN_SERVER_SHUTDOWN_TIMEOUT"},
	"database.auto_migrate":   {"BASTIAN_DATABASE_AUTO_MIGRATE"},
}

// SetDefaults registers defaults and environment bindings on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("server.public_dir", "public")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("mail.resend_api_key", "")
	v.SetDefault("mail.to", DefaultContactTo)
	v.SetDefault("mail.from", DefaultFrom)
	v.SetDefault("site.url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		_ = v.BindEnv(args...)
	}
}

// ConfigFileEnv names a config file when no path is given on the command line
const ConfigFileEnv = "BASTIAN_CONFIG_FILE"

// ReadConfigFile loads the config file into v. An explicit path, from the
// argument or ConfigFileEnv, must exist; the default ./.bastian.yml is
// optional.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(".bastian")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load reads configuration from v
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// An empty override should not erase the defaults.
	if strings.TrimSpace(cfg.Mail.To) == "" {
		cfg.Mail.To = DefaultContactTo
	}
	if strings.TrimSpace(cfg.Mail.From) == "" {
		cfg.Mail.From = DefaultFrom
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Server.ShutdownTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		result = multierror.Append(result, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Database.URL != "" {
		if _, err := url.Parse(c.Database.URL); err != nil {
			result = multierror.Append(result, fmt.Errorf("database.url: %w", err))
		}
	}

	return result.ErrorOrNil()
}

// DatabaseURL returns the storage URL or ErrMissingDatabaseURL
func (c *Config) DatabaseURL() (string, error) {
	if strings.TrimSpace(c.Database.URL) == "" {
		return "", ErrMissingDatabaseURL
	}
	return c.Database.URL, nil
}

// MailEnabled reports whether an email API key is configured
func (c *Config) MailEnabled() bool {
	return strings.TrimSpace(c.Mail.ResendAPIKey) != ""
}

// SiteURL returns the public base URL without trailing slashes. Absent or
// malformed values fall back to DefaultSiteURL.
func (c *Config) SiteURL() string {
	return ResolveSiteURL(c.Site.URL)
}

// ResolveSiteURL normalizes raw into an absolute http(s) base URL
func ResolveSiteURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return DefaultSiteURL
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return DefaultSiteURL
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return DefaultSiteURL
	}
	return trimmed
}

// Logger builds the application logger from the log settings
func (c *Config) Logger() *logging.SiteLogger {
	level, _ := logging.ParseLevel(c.Log.Level)
	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = c.Log.Format
	return logging.NewLogger(cfg)
}
