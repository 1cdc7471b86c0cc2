// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smileynet/contacts/internal/contact"
)

// Config holds all contacts configuration.
type Config struct {
	UI       UI        `yaml:"ui"`
	Log      Log       `yaml:"log"`
	Contacts []Contact `yaml:"contacts"`
}

// UI holds screen settings.
type UI struct {
	AltScreen      bool   `yaml:"alt_screen"`
	TitleAll       string `yaml:"title_all"`
	TitleFavorites string `yaml:"title_favorites"`
	FavoritesView  bool   `yaml:"favorites_view"` // Start in favorites view
}

// Log holds diagnostic logging settings.
type Log struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
	File  string `yaml:"file"`  // Empty discards log output
}

// Contact is a seed entry loaded into the store at startup.
type Contact struct {
	Name     string `yaml:"name"`
	Phone    string `yaml:"phone"`
	Favorite bool   `yaml:"favorite"`
}

// ErrInvalidLevel indicates an unrecognized log level.
var ErrInvalidLevel = errors.New("config: invalid log level")

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			AltScreen:      true,
			TitleAll:       "Contactos",
			TitleFavorites: "Favoritos",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	return LoadLayered(path)
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files and empty paths are skipped.
// A layer that sets contacts replaces the seed list of earlier layers.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.UI.TitleAll) == "" {
		return errors.New("config: ui.title_all cannot be empty")
	}
	if strings.TrimSpace(c.UI.TitleFavorites) == "" {
		return errors.New("config: ui.title_favorites cannot be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn or error, got %q", ErrInvalidLevel, c.Log.Level)
	}
	for i, ct := range c.Contacts {
		if contact.IsBlank(ct.Name) {
			return fmt.Errorf("config: contacts[%d].name cannot be blank", i)
		}
		if contact.IsBlank(ct.Phone) {
			return fmt.Errorf("config: contacts[%d].phone cannot be blank", i)
		}
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTS_LOG_LEVEL, CONTACTS_LOG_FILE, CONTACTS_ALT_SCREEN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("CONTACTS_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("CONTACTS_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("CONTACTS_ALT_SCREEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid CONTACTS_ALT_SCREEN %q: %w", v, err)
		}
		c.UI.AltScreen = b
	}
	return nil
}

// Seeds converts the configured contacts to store seeds.
func (c *Config) Seeds() []contact.Seed {
	if len(c.Contacts) == 0 {
		return nil
	}
	seeds := make([]contact.Seed, len(c.Contacts))
	for i, ct := range c.Contacts {
		seeds[i] = contact.Seed{Name: ct.Name, Phone: ct.Phone, Favorite: ct.Favorite}
	}
	return seeds
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI       *rawUI     `yaml:"ui"`
	Log      *rawLog    `yaml:"log"`
	Contacts *[]Contact `yaml:"contacts"`
}

type rawUI struct {
	AltScreen      *bool   `yaml:"alt_screen"`
	TitleAll       *string `yaml:"title_all"`
	TitleFavorites *string `yaml:"title_favorites"`
	FavoritesView  *bool   `yaml:"favorites_view"`
}

type rawLog struct {
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.AltScreen != nil {
			c.UI.AltScreen = *layer.UI.AltScreen
		}
		if layer.UI.TitleAll != nil {
			c.UI.TitleAll = *layer.UI.TitleAll
		}
		if layer.UI.TitleFavorites != nil {
			c.UI.TitleFavorites = *layer.UI.TitleFavorites
		}
		if layer.UI.FavoritesView != nil {
			c.UI.FavoritesView = *layer.UI.FavoritesView
		}
	}
	if layer.Log != nil {
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
	}
	if layer.Contacts != nil {
		c.Contacts = append([]Contact(nil), (*layer.Contacts)...)
	}
}
