package game

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	tt "github.com/gnoswap-labs/guess/internal/types"
)

// DefaultConfigPath is where the CLI looks for a configuration file.
const DefaultConfigPath = ".guess.yaml"

// Config is the on-disk configuration of the game.
type Config struct {
	Name  string   `yaml:"name"`
	Range tt.Range `yaml:"range"`
	// Echo prints each parsed guess back to the player.
	Echo  bool `yaml:"echo"`
	Color bool `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Name:  "guess",
		Range: tt.DefaultRange,
		Echo:  true,
		Color: true,
	}
}

func (c Config) Validate() error {
	return c.Range.Validate()
}

// ParseConfigurationFile decodes the YAML file at path on top of DefaultConfig.
// A missing file is only tolerated at DefaultConfigPath.
func ParseConfigurationFile(configurationPath string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(configurationPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && configurationPath == DefaultConfigPath {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("error decoding %s: %w", configurationPath, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration %s: %w", configurationPath, err)
	}

	return config, nil
}

// WriteConfigurationFile creates or truncates path and writes config as YAML.
func WriteConfigurationFile(configurationPath string, config Config) error {
	if configurationPath == "" {
		configurationPath = DefaultConfigPath
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
