package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tuiselect/internal/domain"
	"tuiselect/internal/eventbus"
)

const currentVersion = 1

// ErrNoOptions is returned by Validate when there is nothing to choose from
var ErrNoOptions = errors.New("config has no options")

// Config represents the application configuration
type Config struct {
	Version     int                 `toml:"version"`
	Prompt      string              `toml:"prompt"`
	Placeholder string              `toml:"placeholder"`
	Default     string              `toml:"default,omitempty"`
	MaxVisible  int                 `toml:"max_visible"`
	ShowHelp    bool                `toml:"show_help"`
	Options     []OptionConfig      `toml:"options"`
	Keys        map[string][]string `toml:"keys,omitempty"` // action name -> keys
}

// OptionConfig is one selectable entry. Value defaults to Label.
type OptionConfig struct {
	Label    string `toml:"label"`
	Value    string `toml:"value,omitempty"`
	Disabled bool   `toml:"disabled,omitempty"`
}

func (o OptionConfig) value() string {
	if o.Value != "" {
		return o.Value
	}
	return o.Label
}

// DomainOptions converts the configured options, keyed by value
func (c *Config) DomainOptions() []domain.Option[string] {
	out := make([]domain.Option[string], 0, len(c.Options))
	for _, o := range c.Options {
		v := o.value()
		out = append(out, domain.Option[string]{ID: v, Value: v, Text: o.Label, Disabled: o.Disabled})
	}
	return out
}

// Validate checks that options are usable: labels present and values unique
func (c *Config) Validate() error {
	if len(c.Options) == 0 {
		return ErrNoOptions
	}
	seen := make(map[string]bool, len(c.Options))
	for i, o := range c.Options {
		if o.Label == "" {
			return fmt.Errorf("option %d has no label", i+1)
		}
		v := o.value()
		if seen[v] {
			return fmt.Errorf("duplicate option value %q", v)
		}
		seen[v] = true
	}
	if c.MaxVisible < 0 {
		return fmt.Errorf("max_visible must not be negative, got %d", c.MaxVisible)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "tuiselect", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the file used by Load and Save
func DefaultPath(cs ConfigService) string {
	if s, ok := cs.(*configService); ok {
		return s.filePath
	}
	return ""
}

// Load loads the configuration from the default file, falling back to
// DefaultConfig when it does not exist yet
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Options: len(cfg.Options)})
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Version > currentVersion {
		return nil, fmt.Errorf("config %s has version %d, newest supported is %d", path, cfg.Version, currentVersion)
	}
	if cfg.Keys == nil {
		cfg.Keys = make(map[string][]string)
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: path, Options: len(cfg.Options)})
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) publish(e eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(e)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     currentVersion,
		Prompt:      "Select:",
		Placeholder: "nothing selected",
		MaxVisible:  8,
		ShowHelp:    true,
		Keys:        make(map[string][]string),
	}
}

// StarterConfig is what `--init` writes: the defaults plus a few sample options
func StarterConfig() *Config {
	cfg := DefaultConfig()
	cfg.Options = []OptionConfig{
		{Label: "Apple", Value: "apple"},
		{Label: "Banana", Value: "banana"},
		{Label: "Cherry", Value: "cherry", Disabled: true},
		{Label: "Durian", Value: "durian"},
	}
	cfg.Keys = map[string][]string{"next": {"down", "ctrl+n"}}
	return cfg
}
