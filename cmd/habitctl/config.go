package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"habitrack/client/api"
)

const (
	envServerURL = "HABITRACK_SERVER"
	envAPIKey    = "HABITRACK_API_KEY"
)

type cliConfig struct {
	ServerURL string `toml:"server_url"`
	APIKey    string `toml:"api_key,omitempty"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{ServerURL: api.DefaultServerURL}
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "habitrack")
	}

	home, _ := os.UserHomeDir()

	return filepath.Join(home, ".config", "habitrack")
}

func defaultConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// loadCLIConfig returns defaults when the file does not exist.
func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, errors.Wrap(err, "reading config")
	}

	if err = toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing config")
	}

	return cfg, nil
}

func saveCLIConfig(path string, cfg cliConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config dir")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return errors.Wrap(err, "creating config file")
	}
	defer f.Close()

	return errors.Wrap(toml.NewEncoder(f).Encode(cfg), "writing config")
}

// resolve applies environment overrides, then flag overrides.
func (c cliConfig) resolve(serverFlag, apiKeyFlag string) cliConfig {
	if v := os.Getenv(envServerURL); v != "" {
		c.ServerURL = v
	}

	if v := os.Getenv(envAPIKey); v != "" {
		c.APIKey = v
	}

	if serverFlag != "" {
		c.ServerURL = serverFlag
	}

	if apiKeyFlag != "" {
		c.APIKey = apiKeyFlag
	}

	return c
}
