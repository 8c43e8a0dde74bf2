package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileLoaderConfig holds configuration for the JSON-file record loader.
type FileLoaderConfig struct {
	DataDir string `yaml:"data_dir"`
}

// HTTPLoaderConfig contains connection details for an HTTP record source.
type HTTPLoaderConfig struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// LoaderConfig selects and configures the record loader implementation.
type LoaderConfig struct {
	Type string            `yaml:"type"`
	File *FileLoaderConfig `yaml:"file,omitempty"`
	HTTP *HTTPLoaderConfig `yaml:"http,omitempty"`
}

// KeywordConfig optionally overrides the built-in keyword tables. An
// empty list keeps the corresponding default list; the tables are
// loaded once at startup and never mutated afterwards.
type KeywordConfig struct {
	NRGeneric   []string `yaml:"nr_generic,omitempty"`
	NRSpecific  []string `yaml:"nr_specific,omitempty"`
	Coactivator []string `yaml:"coactivator,omitempty"`
	Corepressor []string `yaml:"corepressor,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Loader   LoaderConfig  `yaml:"loader"`
	Keywords KeywordConfig `yaml:"keywords"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/nrclassify/config.yaml.
// If neither exists, it writes defaults to ~/.config/nrclassify/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nrclassify", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Loader: LoaderConfig{Type: "file", File: &FileLoaderConfig{DataDir: "data"}},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Loader.Type == "file" || cfg.Loader.Type == "" {
		if cfg.Loader.File == nil {
			cfg.Loader.File = &FileLoaderConfig{}
		}
		if cfg.Loader.File.DataDir == "" {
			cfg.Loader.File.DataDir = "data"
		}
	}
	if cfg.Loader.Type == "http" && cfg.Loader.HTTP != nil {
		if cfg.Loader.HTTP.TimeoutSecs == 0 {
			cfg.Loader.HTTP.TimeoutSecs = 30
		}
	}
}
