package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/update-plist/internal/core"
	"github.com/indaco/update-plist/internal/plistfile"
	"github.com/indaco/update-plist/internal/updater"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings that tune how a property list is updated.
type Config struct {
	// BuildVersionKey receives the version argument (CFBundleVersion).
	BuildVersionKey string `yaml:"build-version-key,omitempty" toml:"build-version-key,omitempty"`

	// DisplayVersionKey receives the version argument (CFBundleShortVersionString).
	DisplayVersionKey string `yaml:"display-version-key,omitempty" toml:"display-version-key,omitempty"`

	// BuildKey, when set, receives the build argument.
	BuildKey string `yaml:"build-key,omitempty" toml:"build-key,omitempty"`

	// OutputFormat is one of preserve, xml or binary.
	OutputFormat string `yaml:"output-format,omitempty" toml:"output-format,omitempty"`

	// Theme names the prompt theme used by --confirm.
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BuildVersionKey:   updater.DefaultBuildVersionKey,
		DisplayVersionKey: updater.DefaultDisplayVersionKey,
		OutputFormat:      plistfile.FormatPreserve.String(),
	}
}

// Load reads the configuration at path. An empty path returns Default().
// Missing fields in the file keep their default values.
func Load(ctx context.Context, fs core.FileSystem, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	case ".toml":
		err = decodeTOML(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (want .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
}

// Format returns the parsed output format.
func (c *Config) Format() plistfile.Format {
	f, err := plistfile.ParseFormat(c.OutputFormat)
	if err != nil {
		return plistfile.FormatPreserve
	}
	return f
}

// UpdaterOptions translates the configuration into updater options.
func (c *Config) UpdaterOptions() []updater.Option {
	return []updater.Option{
		updater.WithKeys(c.BuildVersionKey, c.DisplayVersionKey),
		updater.WithBuildKey(c.BuildKey),
		updater.WithOutputFormat(c.Format()),
	}
}
