/*
Package config manages TOML config for wordhint.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the config file created in the user config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Dict       DictConfig       `toml:"dict"`
	Constraint ConstraintConfig `toml:"constraint"`
	CLI        CliConfig        `toml:"cli"`
	Server     ServerConfig     `toml:"server"`
}

// DictConfig holds word list options.
type DictConfig struct {
	Path       string `toml:"path"`
	WordLength int    `toml:"word_length"`
}

// ConstraintConfig holds guess compilation options.
type ConstraintConfig struct {
	Strict bool `toml:"strict"`
}

// CliConfig holds cli output options.
type CliConfig struct {
	Limit int `toml:"limit"`
	Top   int `toml:"top"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit   int `toml:"max_limit"`
	MaxGuesses int `toml:"max_guesses"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:       "/usr/share/dict/words",
			WordLength: 5,
		},
		Constraint: ConstraintConfig{
			Strict: false,
		},
		CLI: CliConfig{
			Limit: 10,
			Top:   10,
		},
		Server: ServerConfig{
			MaxLimit:   64,
			MaxGuesses: 12,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path resolved by the caller
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	if defaultPath == "" {
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.Sanitize()
	return config, nil
}

// tryPartialParse keeps every value of the expected type and falls back to
// defaults for the rest. A file with a syntax error yields all defaults.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "constraint"); ok {
		if val, ok := utils.ExtractBool(section, "strict"); ok {
			config.Constraint.Strict = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	config.Sanitize()
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "word_length"); ok {
		dict.WordLength = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		cli.Limit = val
	}
	if val, ok := utils.ExtractInt64(data, "top"); ok {
		cli.Top = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_guesses"); ok {
		server.MaxGuesses = val
	}
}

// Sanitize resets out of range values to their defaults. It runs on every
// load and again after command line overrides.
func (c *Config) Sanitize() {
	def := DefaultConfig()
	if c.Dict.Path == "" {
		c.Dict.Path = def.Dict.Path
	}
	if c.Dict.WordLength < 1 {
		log.Warnf("Invalid word_length %d, using %d", c.Dict.WordLength, def.Dict.WordLength)
		c.Dict.WordLength = def.Dict.WordLength
	}
	if c.CLI.Limit < 1 {
		log.Warnf("Invalid limit %d, using %d", c.CLI.Limit, def.CLI.Limit)
		c.CLI.Limit = def.CLI.Limit
	}
	if c.CLI.Top < 1 {
		log.Warnf("Invalid top %d, using %d", c.CLI.Top, def.CLI.Top)
		c.CLI.Top = def.CLI.Top
	}
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = def.Server.MaxLimit
	}
	if c.Server.MaxGuesses < 1 {
		c.Server.MaxGuesses = def.Server.MaxGuesses
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}
