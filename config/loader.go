package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultBasePath  = "/disruptions"
	DefaultLanguage  = "en"
	DefaultTimezone  = "America/New_York"
)

// DefaultPaths are tried in order when LoadAppConfig is given no path
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Config is the global application configuration
var Config = Defaults()

// Defaults returns the configuration used when no file sets a value
func Defaults() AppConfig {
	var cfg AppConfig
	applyDefaults(&cfg)
	return cfg
}

// LoadAppConfig loads and validates the application configuration from the first
// readable path, storing it in Config.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// FromYAML parses and validates a configuration document
func FromYAML(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// Validate checks every section against its struct tags
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s failed %q: %w", verrs[0].Namespace(), verrs[0].Tag(), err)
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Calendar.BasePath == "" {
		cfg.Calendar.BasePath = DefaultBasePath
	}
	if cfg.Export.Language == "" {
		cfg.Export.Language = DefaultLanguage
	}
	if cfg.Export.Timezone == "" {
		cfg.Export.Timezone = DefaultTimezone
	}
}
