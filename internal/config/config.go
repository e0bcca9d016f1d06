package config

import (
	"io"
	"os"
	"strconv"

	"github.com/ei-projects/lzss/pkg/lzss"
	"github.com/nuclio/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the command line tool and the service.
type Config struct {
	EI            int    `yaml:"ei"`
	EJ            int    `yaml:"ej"`
	Fill          int    `yaml:"fill"`
	LogLevel      string `yaml:"logLevel"`
	ListenAddr    string `yaml:"listenAddr"`
	MaxBodySize   int64  `yaml:"maxBodySize"`
	MaxOutputSize int64  `yaml:"maxOutputSize"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		EI:            lzss.Default.EI(),
		EJ:            lzss.Default.EJ(),
		Fill:          int(lzss.Default.C()),
		LogLevel:      "info",
		ListenAddr:    ":8080",
		MaxBodySize:   50 * 1024 * 1024,
		MaxOutputSize: 256 * 1024 * 1024,
	}
}

// Load builds the configuration from the defaults, the YAML file at path (if
// there is one) and the LZSS_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case err == nil:
			defer file.Close() // nolint: errcheck
			if err := cfg.Read(file); err != nil {
				return nil, errors.Wrap(err, "Failed to read configuration file")
			}
		case !os.IsNotExist(err):
			return nil, errors.Wrap(err, "Failed to open configuration file")
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, errors.Wrap(err, "Failed to read configuration from environment")
	}
	return cfg, nil
}

// Read overrides the fields present in the YAML document.
func (c *Config) Read(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "Failed to read configuration")
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnv() error {
	var err error
	if c.EI, err = getEnvInt("LZSS_EI", c.EI); err != nil {
		return err
	}
	if c.EJ, err = getEnvInt("LZSS_EJ", c.EJ); err != nil {
		return err
	}
	if c.Fill, err = getEnvInt("LZSS_FILL", c.Fill); err != nil {
		return err
	}
	if c.MaxBodySize, err = getEnvInt64("LZSS_MAX_BODY", c.MaxBodySize); err != nil {
		return err
	}
	if c.MaxOutputSize, err = getEnvInt64("LZSS_MAX_OUTPUT", c.MaxOutputSize); err != nil {
		return err
	}
	c.LogLevel = getEnv("LZSS_LOG_LEVEL", c.LogLevel)
	c.ListenAddr = getEnv("LZSS_LISTEN", c.ListenAddr)
	return nil
}

// Params validates the configured parameter set.
func (c *Config) Params() (lzss.Params, error) {
	if c.Fill < 0 || c.Fill > 0xFF {
		return lzss.Params{}, errors.New("Fill byte must be in range 0..255")
	}
	p, err := lzss.New(c.EI, c.EJ, byte(c.Fill))
	if err != nil {
		return lzss.Params{}, errors.Wrap(err, "Invalid compression parameters")
	}
	return p, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v, err := getEnvInt64(key, int64(defaultValue))
	return int(v), err
}

// getEnvInt64 accepts decimal and 0x-prefixed values.
func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Invalid value of %s", key)
	}
	return v, nil
}
