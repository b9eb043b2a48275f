package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// DefaultNumAlbums is the number of random albums sampled when
// GRAPLSUB_NUM_ALBUMS is not set.
const DefaultNumAlbums = 100

// MaxNumAlbums caps the sample size. Values above it are clamped with a
// warning, not rejected.
const MaxNumAlbums = 500

// Config holds application configuration
type Config struct {
	// Subsonic server base URL
	// Default: "http://localhost:4533"
	BaseURL string

	// Subsonic credentials (required)
	User string
	Pass string

	// Name of the playlist to recreate
	// Default: "graplsub_random_albums"
	PlaylistName string

	// Number of random albums to sample
	NumAlbums int
}

// Load reads configuration from file and environment
//
// Environment variables use the GRAPLSUB_ prefix (GRAPLSUB_USER,
// GRAPLSUB_PASS, GRAPLSUB_BASE_URL, GRAPLSUB_PLAYLIST_NAME,
// GRAPLSUB_NUM_ALBUMS) and take precedence over the optional config file.
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(getConfigDir())
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("base_url", "http://localhost:4533")
	v.SetDefault("playlist_name", "graplsub_random_albums")
	v.SetDefault("num_albums", DefaultNumAlbums)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("GRAPLSUB")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		BaseURL:      v.GetString("base_url"),
		User:         v.GetString("user"),
		Pass:         v.GetString("pass"),
		PlaylistName: v.GetString("playlist_name"),
		NumAlbums:    v.GetInt("num_albums"),
	}

	if cfg.User == "" || cfg.Pass == "" {
		return nil, fmt.Errorf("GRAPLSUB_USER and GRAPLSUB_PASS must be set")
	}

	return cfg, nil
}

// Normalize clamps NumAlbums into its valid range, warning when the
// configured value was above the cap and falling back to the default when
// it wasn't a positive number.
func (c *Config) Normalize(logger zerolog.Logger) {
	if c.NumAlbums > MaxNumAlbums {
		logger.Warn().
			Int("num_albums", c.NumAlbums).
			Int("max", MaxNumAlbums).
			Msg("GRAPLSUB_NUM_ALBUMS too big, clamping")
		c.NumAlbums = MaxNumAlbums
	}
	if c.NumAlbums <= 0 {
		c.NumAlbums = DefaultNumAlbums
	}
}

// getConfigDir returns the configuration directory path
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(homeDir, ".config", "graplsub")
}
