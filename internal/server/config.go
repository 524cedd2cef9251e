package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/dealerdesk/quote-engine/internal/config"
	"github.com/dealerdesk/quote-engine/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address          string               `yaml:"address"`
	MaxRequestSize   string               `yaml:"maxRequestSize"`
	Logging          config.LoggingConfig `yaml:"logging"`
	requestSizeBytes int64
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:          constants.DefaultServerAddress,
		MaxRequestSize:   fmt.Sprintf("%d", constants.DefaultMaxRequestSizeBytes),
		Logging:          config.LoggingConfig{},
		requestSizeBytes: constants.DefaultMaxRequestSizeBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequestSizeBytes returns the configured request size limit in bytes.
func (c *Config) RequestSizeBytes() int64 {
	return c.requestSizeBytes
}

// SetRequestSizeBytes overrides the configured request size limit.
func (c *Config) SetRequestSizeBytes(size int64) {
	if size > 0 {
		c.requestSizeBytes = size
		c.MaxRequestSize = fmt.Sprintf("%d", size)
	}
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	sizeStr := strings.TrimSpace(c.MaxRequestSize)
	if sizeStr == "" {
		c.requestSizeBytes = constants.DefaultMaxRequestSizeBytes
		c.MaxRequestSize = fmt.Sprintf("%d", constants.DefaultMaxRequestSizeBytes)
		return nil
	}

	bytes, err := ParseSize(sizeStr)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxRequestSizeBytes
	}
	c.requestSizeBytes = bytes
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxRequestSizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
