package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	OutputConfig struct {
		Format    string `yaml:"format" validate:"required,oneof=srt vtt ass"`
		Overwrite bool   `yaml:"overwrite"`
	}

	LoggingConfig struct {
		Level string `yaml:"level" validate:"required,oneof=none debug normal"`
	}

	Config struct {
		Version     int           `yaml:"version" validate:"eq=1"`
		Output      OutputConfig  `yaml:"output"`
		Concurrency int           `yaml:"concurrency" validate:"min=1,max=64"`
		Logging     LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// only fields we know about are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfiguration returns the embedded defaults with the file at path,
// if any, superimposed on top of them.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) == 0 {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Default returns the embedded configuration text.
func Default() []byte {
	return bytes.Clone(defaultConfig)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
