// Package config loads keyshield settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/saylorsolutions/keyshield/pkg/compress"
	"github.com/saylorsolutions/keyshield/pkg/diagram"
	"github.com/saylorsolutions/keyshield/pkg/textenc"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	// Encoding is the text encoding of compressed and sealed output, either "hex" or "base64".
	Encoding string `yaml:"encoding"`
	// LogLevel is any level name understood by logrus.
	LogLevel string `yaml:"logLevel"`

	Compression CompressionConfig `yaml:"compression"`
	Stretch     StretchConfig     `yaml:"stretch"`
	Generator   GeneratorConfig   `yaml:"generator"`
}

type CompressionConfig struct {
	// Level is a flate compression level. -1 selects the default level.
	Level int `yaml:"level"`
}

// StretchConfig holds the scrypt parameters used to turn a diagram into a seed.
// Changing any of these changes every master key derived from a diagram.
type StretchConfig struct {
	Iterations        uint64 `yaml:"iterations"`
	RelativeBlockSize uint8  `yaml:"relativeBlockSize"`
	CPUCost           uint8  `yaml:"cpuCost"`
}

const DefaultMaxCount uint64 = 1 << 16

type GeneratorConfig struct {
	// Workers bounds how many indexes are derived at once. 0 uses the number of CPUs.
	Workers int `yaml:"workers"`
	// MaxCount bounds how many indexes one Generate call may cover. 0 removes the limit.
	MaxCount uint64 `yaml:"maxCount"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Encoding: textenc.Hex.String(),
		LogLevel: logrus.InfoLevel.String(),
		Compression: CompressionConfig{
			Level: compress.DefaultLevel,
		},
		Stretch: StretchConfig{
			Iterations:        diagram.DefaultInteractiveIterations,
			RelativeBlockSize: diagram.DefaultRelBlockSize,
			CPUCost:           diagram.DefaultCpuCost,
		},
		Generator: GeneratorConfig{
			MaxCount: DefaultMaxCount,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that can't be used.
func (c *Config) Validate() error {
	if _, err := c.TextEncoding(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Compression.Level < compress.MinLevel || c.Compression.Level > compress.MaxLevel {
		return fmt.Errorf("%w: compression level %d is outside [%d, %d]", ErrInvalid, c.Compression.Level, compress.MinLevel, compress.MaxLevel)
	}
	if _, err := diagram.NewStretcher(c.StretchOpts()...); err != nil {
		return fmt.Errorf("%w: stretch: %w", ErrInvalid, err)
	}
	if c.Generator.Workers < 0 {
		return fmt.Errorf("%w: generator workers cannot be negative, got %d", ErrInvalid, c.Generator.Workers)
	}
	return nil
}

func (c *Config) TextEncoding() (textenc.Encoding, error) {
	enc, err := textenc.ParseEncoding(c.Encoding)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return enc, nil
}

// Level returns the parsed log level.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return lvl, nil
}

// StretchOpts converts the stretch settings to options for diagram.NewStretcher.
func (c *Config) StretchOpts() []diagram.StretchOpt {
	return []diagram.StretchOpt{
		diagram.SetIterations(c.Stretch.Iterations),
		diagram.SetRelativeBlockSize(c.Stretch.RelativeBlockSize),
		diagram.SetCPUCost(c.Stretch.CPUCost),
	}
}
