// Package config loads the optional slscmigrate.yaml project file and its
// SLSCMIGRATE_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ErrConfigExists is returned by Write when it would overwrite an existing file.
var ErrConfigExists = errors.New("config file already exists")

type OutputConfig struct {
	Indent int    `yaml:"indent" mapstructure:"indent"`
	Backup bool   `yaml:"backup" mapstructure:"backup"`
	Suffix string `yaml:"suffix" mapstructure:"suffix"`
}

type LogConfig struct {
	File    string `yaml:"file,omitempty" mapstructure:"file"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

type ProjectConfig struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`

	// Path is the file the configuration was read from, or "" when only
	// defaults and environment variables apply.
	Path string `yaml:"-" mapstructure:"-"`
}

const ConfigFileName = slscmigrate.ConfigFileName

// Default returns the configuration used when no file or environment overrides exist.
func Default() ProjectConfig {
	return ProjectConfig{
		Output: OutputConfig{
			Indent: 0,
			Backup: false,
			Suffix: slscmigrate.DefaultOutputSuffix,
		},
	}
}

// Find returns the path of the config file in dir.
func Find(dir string) (string, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return "", ErrConfigNotFound
		}
		return "", err
	}
	return configPath, nil
}

// Load reads the config file in dir, if there is one, and applies
// SLSCMIGRATE_* environment overrides (for example SLSCMIGRATE_OUTPUT_INDENT)
// on top of it. A missing file is not an error.
func Load(dir string) (*ProjectConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault("output.indent", def.Output.Indent)
	v.SetDefault("output.backup", def.Output.Backup)
	v.SetDefault("output.suffix", def.Output.Suffix)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.verbose", def.Log.Verbose)

	v.SetEnvPrefix(slscmigrate.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configPath, err := Find(dir)
	switch {
	case err == nil:
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %v: %w", configPath, err, slscmigrate.ErrInvalidConfig)
		}
	case errors.Is(err, ErrConfigNotFound):
		configPath = ""
	default:
		return nil, err
	}

	var cfg ProjectConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %v: %w", err, slscmigrate.ErrInvalidConfig)
	}
	cfg.Path = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. It returns a multi-error if several fields are invalid.
func (c *ProjectConfig) Validate() error {
	var errs []error
	if c.Output.Indent < 0 {
		errs = append(errs, fmt.Errorf("output.indent cannot be negative: %w", slscmigrate.ErrInvalidConfig))
	}
	if strings.TrimSpace(c.Output.Suffix) == "" {
		errs = append(errs, fmt.Errorf("output.suffix cannot be empty: %w", slscmigrate.ErrInvalidConfig))
	}
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		errs = append(errs, fmt.Errorf("output.suffix cannot contain path separators: %w", slscmigrate.ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

const fileHeader = "# slscmigrate project configuration.\n" +
	"# Every key can be overridden with an SLSCMIGRATE_ environment variable,\n" +
	"# for example SLSCMIGRATE_OUTPUT_INDENT=2.\n"

// Write stores cfg as the config file in dir and returns its path.
// An existing file is only replaced when force is set.
func Write(dir string, cfg ProjectConfig, force bool) (string, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return "", fmt.Errorf("%s: %w", configPath, ErrConfigExists)
		}
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return "", fmt.Errorf("encoding configuration: %w", err)
	}

	if err := os.WriteFile(configPath, append([]byte(fileHeader), data...), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", configPath, err)
	}
	return configPath, nil
}
