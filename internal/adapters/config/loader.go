// Package config provides the configuration loader for vlr.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// AppName names the per-user configuration, state and runtime directories.
	AppName = "vlr"
	// EnvPrefix prefixes environment overrides, e.g. VLR_CHUNK_SIZE.
	EnvPrefix = "VLR"
)

// Loader implements ports.ConfigLoader using viper.
// Precedence from low to high: defaults, config file, VLR_* environment variables.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// DefaultChannelAddress returns the unix socket the extractor listens on by default.
func DefaultChannelAddress() string {
	return filepath.Join(xdg.RuntimeDir, AppName, "extractor.sock")
}

// DefaultLedgerPath returns the default location of the verification ledger.
func DefaultLedgerPath() string {
	return filepath.Join(xdg.StateHome, AppName, "ledger.json")
}

// Load reads the configuration. An empty path searches $XDG_CONFIG_HOME/vlr/config.yaml.
func (l *Loader) Load(path string) (*domain.Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
		}
		l.logger.Debug("no config file found, using defaults")
	} else {
		l.logger.Debug("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, zerr.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_root", ".")
	v.SetDefault("mission_data_root", "")
	v.SetDefault("manifest_name", domain.DefaultManifestName)
	v.SetDefault("chunk_size", domain.DefaultChunkSize)
	v.SetDefault("extractor_path", domain.DefaultExtractorPath)
	v.SetDefault("channel_address", DefaultChannelAddress())
	v.SetDefault("connect_retry_interval", domain.DefaultConnectRetryInterval)
	v.SetDefault("connect_timeout", 0)
	v.SetDefault("use_pty", false)
	v.SetDefault("ledger_path", DefaultLedgerPath())
	v.SetDefault("log_level", "info")
	v.SetDefault("output_mode", string(domain.OutputAuto))
	v.SetDefault("trace_path", "")
}
