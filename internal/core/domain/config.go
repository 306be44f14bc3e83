package domain

import (
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultChunkSize is the read size of the streaming hasher.
	DefaultChunkSize = 32 * 1024
	// MinChunkSize is the smallest accepted chunk size.
	MinChunkSize = 1024
	// DefaultConnectRetryInterval is how often the supervisor polls for the event channel.
	DefaultConnectRetryInterval = 100 * time.Millisecond
	// DefaultExtractorPath is looked up on PATH when no extractor is configured.
	DefaultExtractorPath = "vlr-extractor"
)

// OutputMode selects the renderer used for progress output.
type OutputMode string

const (
	// OutputAuto picks the TUI on an interactive terminal and linear output otherwise.
	OutputAuto OutputMode = "auto"
	// OutputTUI forces the interactive renderer.
	OutputTUI OutputMode = "tui"
	// OutputLinear forces line-oriented output.
	OutputLinear OutputMode = "linear"
)

// Config is the process-wide configuration, built once at startup and passed explicitly.
type Config struct {
	// DataRoot is the root of the disc or archive, typically its mount point.
	DataRoot string `mapstructure:"data_root"`
	// MissionDataRoot is the directory holding the mission data and its manifest.
	// Relative values are resolved against DataRoot.
	MissionDataRoot string `mapstructure:"mission_data_root"`
	ManifestName    string `mapstructure:"manifest_name"`
	ChunkSize       int    `mapstructure:"chunk_size"`

	ExtractorPath        string        `mapstructure:"extractor_path"`
	ChannelAddress       string        `mapstructure:"channel_address"`
	ConnectRetryInterval time.Duration `mapstructure:"connect_retry_interval"`
	// ConnectTimeout bounds the wait for the event channel. Zero waits forever.
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	UsePTY         bool          `mapstructure:"use_pty"`

	LedgerPath string     `mapstructure:"ledger_path"`
	LogLevel   string     `mapstructure:"log_level"`
	OutputMode OutputMode `mapstructure:"output_mode"`
	// TracePath, if set, receives a JSON-lines journal of every recorded step.
	TracePath string `mapstructure:"trace_path"`
}

// MissionRoot returns the mission data root resolved against the data root.
func (c *Config) MissionRoot() string {
	if c.MissionDataRoot == "" {
		return c.DataRoot
	}
	if filepath.IsAbs(c.MissionDataRoot) {
		return c.MissionDataRoot
	}
	return filepath.Join(c.DataRoot, c.MissionDataRoot)
}

// ManifestPath returns the location of the checksum manifest.
func (c *Config) ManifestPath() string {
	name := c.ManifestName
	if name == "" {
		name = DefaultManifestName
	}
	return filepath.Join(c.MissionRoot(), name)
}

// Validate checks that numeric settings are in range.
func (c *Config) Validate() error {
	if c.ChunkSize < MinChunkSize {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "chunk size too small"), "chunk_size", c.ChunkSize)
	}
	if c.ConnectRetryInterval <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "retry interval must be positive"),
			"connect_retry_interval", c.ConnectRetryInterval.String())
	}
	if c.ConnectTimeout < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "connect timeout must not be negative"),
			"connect_timeout", c.ConnectTimeout.String())
	}
	switch c.OutputMode {
	case OutputAuto, OutputTUI, OutputLinear, "":
	default:
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "unknown output mode"), "output_mode", string(c.OutputMode))
	}
	return nil
}
