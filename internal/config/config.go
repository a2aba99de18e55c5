package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultAPIBaseURL     = "https://www.googleapis.com/youtube/v3"
	DefaultFeedBaseURL    = "https://www.youtube.com/feeds/videos.xml"
	DefaultMaxResults     = 30
	DefaultRequestTimeout = 15
	DefaultPlayerCommand  = "mpv"

	// MaxResultsLimit is the largest page size the search API accepts
	MaxResultsLimit = 50
)

// Config represents the application configuration
type Config struct {
	APIKey                string              `toml:"api_key,omitempty"`
	APIBaseURL            string              `toml:"api_base_url"`
	FeedBaseURL           string              `toml:"feed_base_url"`
	MaxResults            int                 `toml:"max_results"`
	RequestTimeoutSeconds int                 `toml:"request_timeout_seconds"`
	Player                PlayerSettings      `toml:"player"`
	UI                    UISettings          `toml:"ui"`
	Keys                  map[string][]string `toml:"keys,omitempty"`
	Subscriptions         []Subscription      `toml:"subscriptions,omitempty"`
}

// PlayerSettings configures the external media player
type PlayerSettings struct {
	Command string `toml:"command"`
	Args    string `toml:"args"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowInfo bool `toml:"show_info"`
}

// Subscription is a channel listed on the subscriptions tab
type Subscription struct {
	Name      string `toml:"name"`
	ChannelID string `toml:"channel_id"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// DefaultPath returns the config location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "ytgrip", "config.toml")
}

// NewConfigService creates a config service bound to the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file.
// A missing file is created with defaults.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.fillDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path.
// The API key is never written back.
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *config
	out.APIKey = ""

	data, err := toml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:            DefaultAPIBaseURL,
		FeedBaseURL:           DefaultFeedBaseURL,
		MaxResults:            DefaultMaxResults,
		RequestTimeoutSeconds: DefaultRequestTimeout,
		Player: PlayerSettings{
			Command: DefaultPlayerCommand,
		},
	}
}

func (c *Config) fillDefaults() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.FeedBaseURL == "" {
		c.FeedBaseURL = DefaultFeedBaseURL
	}
	if c.MaxResults == 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = DefaultRequestTimeout
	}
	if c.Player.Command == "" {
		c.Player.Command = DefaultPlayerCommand
	}
}

// ApplyEnv overlays environment variables onto the config.
// YTGRIP_API_KEY wins over API_KEY; MPV_OPTION replaces player args.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if key := getenv("YTGRIP_API_KEY"); key != "" {
		c.APIKey = key
	} else if key := getenv("API_KEY"); key != "" {
		c.APIKey = key
	}
	if opts := getenv("MPV_OPTION"); opts != "" {
		c.Player.Args = opts
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.MaxResults < 1 || c.MaxResults > MaxResultsLimit {
		return fmt.Errorf("invalid max_results %d: must be between 1 and %d", c.MaxResults, MaxResultsLimit)
	}
	if c.RequestTimeoutSeconds < 1 {
		return fmt.Errorf("invalid request_timeout_seconds %d: must be positive", c.RequestTimeoutSeconds)
	}
	if strings.TrimSpace(c.Player.Command) == "" {
		return errors.New("invalid player.command: must not be empty")
	}
	for i, sub := range c.Subscriptions {
		if strings.TrimSpace(sub.ChannelID) == "" {
			return fmt.Errorf("invalid subscription %d (%q): channel_id is required", i, sub.Name)
		}
	}
	return nil
}

// KeyOverrides returns the configured key bindings per action name
func (c *Config) KeyOverrides() map[string][]string {
	out := make(map[string][]string, len(c.Keys))
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			continue
		}
		out[strings.ToLower(action)] = append([]string(nil), keys...)
	}
	return out
}
