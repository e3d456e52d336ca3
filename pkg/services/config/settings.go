package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "WELLNESS"

type Config struct {
	Product    string        `mapstructure:"product"`
	OutputDir  string        `mapstructure:"output_dir"`
	Theme      string        `mapstructure:"theme"`
	ThemesFile string        `mapstructure:"themes_file"`
	History    HistoryConfig `mapstructure:"history"`
	Storage    StorageConfig `mapstructure:"storage"`
	Log        LogConfig     `mapstructure:"log"`
}

type HistoryConfig struct {
	DbPath string `mapstructure:"db_path"`
}

// StorageConfig describes where finished reports are published. Publishing is
// disabled while Bucket is empty.
type StorageConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Region string `mapstructure:"region"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("product", "MindWell")
	v.SetDefault("output_dir", "reports")
	v.SetDefault("theme", "default")
	v.SetDefault("themes_file", "")
	v.SetDefault("history.db_path", "wellness.db")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.prefix", "reports")
	v.SetDefault("storage.region", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// LoadConfig reads settings from path, or from defaults and WELLNESS_*
// environment variables alone when path is empty.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Product) == "" {
		errs = append(errs, errors.New("product must not be empty"))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, errors.New("log rotation limits must not be negative"))
	}
	if c.Storage.Bucket == "" && c.Storage.Region != "" {
		errs = append(errs, errors.New("storage.region is set but storage.bucket is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
