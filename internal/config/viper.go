// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g.
// SWIFTMX_LOG_LEVEL or SWIFTMX_BATCH_WORKERS.
const EnvPrefix = "SWIFTMX"

// Bounds for batch.workers.
const (
	MinWorkers = 1
	MaxWorkers = 64
)

var mtTypePattern = regexp.MustCompile(`^(MT)?\d{3}(COV)?$`)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Conversion struct {
		SurfaceAdvisories bool   `mapstructure:"surface_advisories" yaml:"surface_advisories"`
		DefaultMtType     string `mapstructure:"default_mt_type" yaml:"default_mt_type"`
	} `mapstructure:"conversion" yaml:"conversion"`

	Batch struct {
		Workers     int    `mapstructure:"workers" yaml:"workers"`
		ReportFile  string `mapstructure:"report_file" yaml:"report_file"`
		MtExtension string `mapstructure:"mt_extension" yaml:"mt_extension"`
		MxExtension string `mapstructure:"mx_extension" yaml:"mx_extension"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then SWIFTMX_ environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.swift-mx")
	v.AddConfigPath(".swift-mx")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// Defaults always decode.
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("conversion.surface_advisories", true)
	v.SetDefault("conversion.default_mt_type", "")

	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.report_file", "")
	v.SetDefault("batch.mt_extension", ".fin")
	v.SetDefault("batch.mx_extension", ".xml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Batch.Workers < MinWorkers || config.Batch.Workers > MaxWorkers {
		return fmt.Errorf("batch.workers must be between %d and %d, got: %d", MinWorkers, MaxWorkers, config.Batch.Workers)
	}

	for key, ext := range map[string]string{
		"batch.mt_extension": config.Batch.MtExtension,
		"batch.mx_extension": config.Batch.MxExtension,
	} {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\ `) {
			return fmt.Errorf("%s must be a file extension such as .xml, got: %q", key, ext)
		}
	}
	if config.Batch.MtExtension == config.Batch.MxExtension {
		return fmt.Errorf("batch.mt_extension and batch.mx_extension must differ, both are %s", config.Batch.MtExtension)
	}

	if t := strings.ToUpper(strings.TrimSpace(config.Conversion.DefaultMtType)); t != "" && !mtTypePattern.MatchString(t) {
		return fmt.Errorf("conversion.default_mt_type must look like 103 or MT202COV, got: %s", config.Conversion.DefaultMtType)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
