package process

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects the automation binary and extra child environment. It is
// deliberately small: the operation catalog itself is fixed in code and not
// configurable.
type Config struct {
	Binary      string            `yaml:"binary" json:"binary"`
	Environment map[string]string `yaml:"env" json:"env"`
}

// LoadConfig reads a runner configuration file (YAML). A missing file is
// not an error; it means "all defaults".
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read runner config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse runner config: %w", err)
	}
	return cfg, nil
}

// Options converts the config into executor options.
func (c Config) Options() []Option {
	return []Option{
		WithBinary(c.Binary),
		WithEnvironment(c.Environment),
	}
}
