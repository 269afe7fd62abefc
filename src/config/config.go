// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no config
// path is given explicitly.
const EnvConfigFile = "CHECKSSL_CONFIG_FILE"

// ErrInvalidConfig indicates a config file that does not match the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed schema.json
var schema []byte

// Schema returns the JSON Schema config files are validated against.
func Schema() []byte {
	return append([]byte(nil), schema...)
}

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Defaults holds the settings flags fall back to.
type Defaults struct {
	// Port: TLS port for domains without an explicit one
	Port int `json:"port" yaml:"port"`
	// TimeoutSeconds: Dial and handshake timeout per domain
	TimeoutSeconds int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	// Concurrency: Checks in flight
	Concurrency int `json:"concurrency" yaml:"concurrency"`
	// RatePerSecond: Handshake pacing, 0 disables it
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
	// Order: "asc" or "desc"
	Order string `json:"order" yaml:"order"`
	// MinColumnWidth: Minimum domain column width of the text report
	MinColumnWidth int `json:"minColumnWidth" yaml:"minColumnWidth"`
	// DateLayout: "dmy" (dd.mm.yyyy) or "mdy" (mm/dd/yyyy)
	DateLayout string `json:"dateLayout" yaml:"dateLayout"`
	// Output: "text", "markdown" or "json"
	Output string `json:"output" yaml:"output"`
}

// Config is the checkssl configuration file.
type Config struct {
	Defaults Defaults `json:"defaults" yaml:"defaults"`
	// Domains: Checked when no domain is given on the command line
	Domains []string `json:"domains,omitempty" yaml:"domains,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			Port:           443,
			TimeoutSeconds: 10,
			Concurrency:    8,
			RatePerSecond:  0,
			Order:          "asc",
			MinColumnWidth: 10,
			DateLayout:     "dmy",
			Output:         "text",
		},
	}
}

// Timeout returns the per-domain timeout as a duration.
func (d Defaults) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// detectConfigFormat determines the configuration file format based on file
// extension, case-insensitively. Anything that is not .yaml or .yml is JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig decodes data in the given format into v.
func unmarshalConfig(data []byte, v any, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// validate checks a decoded document against the embedded schema. Every
// violation is reported, joined with "; ".
func validate(doc any) error {
	// an empty YAML file decodes to nil
	if doc == nil {
		doc = map[string]any{}
	}

	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to validate config: %w", err)
	}
	if res.Valid() {
		return nil
	}

	combinedErr := &multierror.Error{}
	combinedErr.ErrorFormat = formatErrors
	for _, validationErr := range res.Errors() {
		combinedErr = multierror.Append(combinedErr, errors.New(validationErr.String()))
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, combinedErr.ErrorOrNil())
}

func formatErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Parse decodes and validates a config document. Values missing from the
// document keep their defaults.
//
// Parameters:
//   - data: Raw file contents
//   - yamlFormat: Decode as YAML instead of JSON
//
// Returns:
//   - *Config: Defaults overridden by the document
//   - error: Syntax error, or [ErrInvalidConfig] listing schema violations
func Parse(data []byte, yamlFormat bool) (*Config, error) {
	format := configFormatJSON
	if yamlFormat {
		format = configFormatYAML
	}

	var doc any
	if err := unmarshalConfig(data, &doc, format); err != nil {
		return nil, err
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	config := Default()
	if err := unmarshalConfig(data, config, format); err != nil {
		return nil, err
	}
	return config, nil
}

// Load reads the configuration from configPath, or from the file named by
// [EnvConfigFile] when configPath is empty. With neither set, [Default] is
// returned. The format is detected from the file extension.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Parse(data, detectConfigFormat(configPath) == configFormatYAML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return config, nil
}
