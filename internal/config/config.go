// Package config loads config.yaml from the configuration directory with
// Viper. HOMELISTS_* environment variables override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "HOMELISTS"

	KeyBackend = "backend"
	KeyDataDir = "data_dir"
	KeyTheme   = "theme"
)

// Store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	DefaultBackend = BackendJSON
	DefaultTheme   = "classic"
)

var ErrUnknownBackend = errors.New("unknown backend")

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# homelists configuration

# Store backend: json, sqlite or memory
backend: json

# Data directory (optional; overridable by --data-dir)
# data_dir:

# Output theme: classic, neon or mono
theme: classic
`

// Config is the resolved configuration for one run.
type Config struct {
	Backend string
	DataDir string
	Theme   string
}

// Load reads config.yaml from configDir, creating the directory and a
// default file on first run. dataDirFlag wins over every other data_dir
// source. A missing config.yaml is not an error.
func Load(configDir, dataDirFlag string) (Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyBackend, DefaultBackend)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	_ = v.BindEnv(KeyBackend)
	_ = v.BindEnv(KeyTheme)

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		Theme:   v.GetString(KeyTheme),
	}
	switch cfg.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return Config{}, fmt.Errorf("%w %q (want json, sqlite or memory)", ErrUnknownBackend, cfg.Backend)
	}

	dataDir, err := ResolveDataDir(dataDirFlag, v.GetString(KeyDataDir))
	if err != nil {
		return Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	cfg.DataDir = dataDir
	return cfg, nil
}

func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
