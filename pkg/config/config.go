// Package config loads fhirmeta settings.
//
// Values are resolved in this order, highest first: command-line flags,
// FHIRMETA_* environment variables, a .env file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gofhir/metadata/pkg/loader"
	"github.com/gofhir/metadata/pkg/logger"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "FHIRMETA"

// Keys, as used in the environment (after EnvPrefix) and in .env files.
const (
	KeyPackagePath = "PACKAGE_PATH"
	KeyFHIRVersion = "FHIR_VERSION"
	KeyLogLevel    = "LOG_LEVEL"
	KeyOutput      = "OUTPUT"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalid is wrapped by every validation error returned from Load.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	PackagePath string `mapstructure:"PACKAGE_PATH"`
	FHIRVersion string `mapstructure:"FHIR_VERSION"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	Output      string `mapstructure:"OUTPUT"`
}

// Options controls where Load looks for values.
type Options struct {
	// EnvFile is read with godotenv when present. Empty means ".env".
	EnvFile string
	// Flags maps config keys to command-line flags. A flag only wins
	// when it was set explicitly.
	Flags map[string]*pflag.Flag
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyPackagePath, loader.DefaultPackagePath())
	v.SetDefault(KeyFHIRVersion, "4.0.1")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyOutput, OutputText)

	for _, key := range []string{KeyPackagePath, KeyFHIRVersion, KeyLogLevel, KeyOutput} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}
	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that have a fixed set of values.
func (c *Config) Validate() error {
	var errs []error
	if c.Output != OutputText && c.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("%w: output %q (want text or json)", ErrInvalid, c.Output))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if _, ok := loader.DefaultPackages[c.FHIRVersion]; !ok {
		errs = append(errs, fmt.Errorf("%w: FHIR version %q (supported: %s)",
			ErrInvalid, c.FHIRVersion, strings.Join(loader.SupportedVersions(), ", ")))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level.
func (c *Config) Level() logger.Level {
	level, _ := logger.ParseLevel(c.LogLevel)
	return level
}

// JSON reports whether JSON output was requested.
func (c *Config) JSON() bool {
	return c.Output == OutputJSON
}
