package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nikogura/lifesim/pkg/refdata"
)

// Output formats accepted by the draw command.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Config represents the application configuration.
type Config struct {
	Region     string        `json:"region"`
	DataSource string        `json:"data_source,omitempty"`
	Seed       *int64        `json:"seed,omitempty"`
	LogLevel   string        `json:"log_level,omitempty"`
	Store      StoreConfig   `json:"store"`
	Pandoc     PandocConfig  `json:"pandoc,omitempty"`
	Defaults   DefaultConfig `json:"defaults"`
}

// StoreConfig holds the batch archive location.
type StoreConfig struct {
	Path string `json:"path"`
}

// PandocConfig holds pandoc-related configuration for PDF life reports.
type PandocConfig struct {
	TemplatePath string `json:"template_path,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	Count  int    `json:"count"`
	Format string `json:"format"`
}

// Default returns the configuration used when no config file exists.
func Default() (cfg Config) {
	cfg = Config{
		Region:   refdata.RegionTokyo,
		LogLevel: zerolog.LevelInfoValue,
		Store: StoreConfig{
			Path: defaultStorePath(),
		},
		Defaults: DefaultConfig{
			Count:  1,
			Format: FormatText,
		},
	}
	return cfg
}

// DefaultPath returns $HOME/.lifesim/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".lifesim", "config.json")
	return path, err
}

func defaultStorePath() (path string) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		path = "lifesim.db"
		return path
	}
	path = filepath.Join(homeDir, ".lifesim", "lifesim.db")
	return path
}

// Load reads configuration from file with environment variable overrides. When configPath
// is empty and the default file does not exist, built-in defaults are used; an explicitly
// named file must exist.
func Load(configPath string) (cfg Config, err error) {
	cfg = Default()

	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	// Read config file
	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'lifesim init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// Override with environment variables if set
	err = cfg.applyEnv()
	if err != nil {
		return cfg, err
	}

	// Validate required fields
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() (err error) {
	if region := os.Getenv("LIFESIM_REGION"); region != "" {
		c.Region = region
	}

	if source := os.Getenv("LIFESIM_DATA_SOURCE"); source != "" {
		c.DataSource = source
	}

	if raw := os.Getenv("LIFESIM_SEED"); raw != "" {
		var seed int64
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			err = errors.Wrapf(err, "invalid LIFESIM_SEED: %s", raw)
			return err
		}
		c.Seed = &seed
	}

	return err
}

// Validate checks that the configuration is usable and fills in missing defaults.
func (c *Config) Validate() (err error) {
	if c.Region == "" {
		err = errors.New("region is required in config")
		return err
	}

	// an overlay may define further regions, so only built-in names are checked without one
	if c.DataSource == "" {
		_, err = refdata.Builtin().Region(c.Region)
		if err != nil {
			err = errors.Wrapf(err, "unknown region in config: %s", c.Region)
			return err
		}
	}

	if c.LogLevel != "" {
		_, err = zerolog.ParseLevel(c.LogLevel)
		if err != nil {
			err = errors.Wrapf(err, "invalid log_level: %s", c.LogLevel)
			return err
		}
	}

	if c.Defaults.Count < 0 {
		err = errors.Errorf("defaults.count must not be negative, got %d", c.Defaults.Count)
		return err
	}
	if c.Defaults.Count == 0 {
		c.Defaults.Count = 1
	}

	switch c.Defaults.Format {
	case "":
		c.Defaults.Format = FormatText
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		err = errors.Errorf("defaults.format must be one of %s, %s, %s; got %q", FormatText, FormatJSON, FormatMarkdown, c.Defaults.Format)
		return err
	}

	// Set default store path if not specified
	if c.Store.Path == "" {
		c.Store.Path = defaultStorePath()
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	// Determine config file location
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Default()
	defaultConfig.Store.Path = filepath.Join(dir, "lifesim.db")

	// Write to file
	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
