package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Dataset  DatasetConfig
	Resolver ResolverConfig
	Search   SearchConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// DatasetConfig points at the static merchant dataset
type DatasetConfig struct {
	Path string
}

// ResolverConfig holds location-resolution tuning
type ResolverConfig struct {
	SensorTimeout     time.Duration
	SensorMaxCacheAge time.Duration
	ProviderTimeout   time.Duration // per IP-geolocation provider
	IPProviders       []IPProviderConfig
	GeocoderBaseURL   string
}

// IPProviderConfig identifies one IP-geolocation service. Shape selects the
// payload normalization applied to its response.
type IPProviderConfig struct {
	Name  string
	URL   string
	Shape string // latlong, latlon, loc
}

// SearchConfig holds proximity-search defaults
type SearchConfig struct {
	DefaultRadiusKm float64
	RadiusStepKm    float64
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.store-locator")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("dataset.path", "data/merchants.json")
	viper.SetDefault("resolver.sensortimeout", "10s")
	viper.SetDefault("resolver.sensormaxcacheage", "60s")
	viper.SetDefault("resolver.providertimeout", "5s")
	viper.SetDefault("resolver.geocoderbaseurl", "https://nominatim.openstreetmap.org")
	viper.SetDefault("resolver.ipproviders", defaultIPProviders())
	viper.SetDefault("search.defaultradiuskm", 10.0)
	viper.SetDefault("search.radiusstepkm", 10.0)

	// Read from environment variables
	viper.SetEnvPrefix("STORE_LOCATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// defaultIPProviders lists the keyless lookup services tried in order when
// the device sensor fails. Order matters: the resolver stops at the first
// provider returning a valid coordinate.
func defaultIPProviders() []map[string]string {
	return []map[string]string{
		{"name": "ipapi.co", "url": "https://ipapi.co/json/", "shape": "latlong"},
		{"name": "ip-api.com", "url": "http://ip-api.com/json/", "shape": "latlon"},
		{"name": "ipinfo.io", "url": "https://ipinfo.io/json", "shape": "loc"},
		{"name": "ipwho.is", "url": "https://ipwho.is/", "shape": "latlong"},
		{"name": "freeipapi.com", "url": "https://freeipapi.com/api/json", "shape": "latlong"},
	}
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
