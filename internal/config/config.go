// Package config loads knightpaths settings from defaults, an optional YAML
// file, and KNIGHTPATHS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knightpaths/render"
)

// EnvPrefix is prepended to every environment override, e.g. KNIGHTPATHS_LOGGER_LEVEL.
const EnvPrefix = "KNIGHTPATHS"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates application configuration values.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
}

// LoggerConfig controls structured logging.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // console|json
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// OutputConfig names the generated artifacts.
type OutputConfig struct {
	Name    string   `mapstructure:"name" yaml:"name"`
	Dir     string   `mapstructure:"dir" yaml:"dir"`
	Formats []string `mapstructure:"formats" yaml:"formats"`
}

// RenderConfig tunes image and animation output.
type RenderConfig struct {
	SquareSize int           `mapstructure:"square_size" yaml:"square_size"`
	FrameDelay time.Duration `mapstructure:"frame_delay" yaml:"frame_delay"`
	ShowLabels bool          `mapstructure:"show_labels" yaml:"show_labels"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "knightpaths")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("output.name", "paths")
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.formats", []string{"dot", "png", "gif"})

	v.SetDefault("render.square_size", 80)
	v.SetDefault("render.frame_delay", time.Second)
	v.SetDefault("render.show_labels", true)
}

// Load reads configuration into a Config. If file is empty, ./knightpaths.yaml
// is used when present; a missing default file is not an error.
// Environment variables override file values.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("knightpaths")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(file), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Logger.Level)); err != nil {
		return fmt.Errorf("%w: logger.level %q", ErrInvalidConfig, c.Logger.Level)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logger.format %q (want console or json)", ErrInvalidConfig, c.Logger.Format)
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("%w: output.formats is empty", ErrInvalidConfig)
	}
	for _, f := range c.Output.Formats {
		if _, err := render.ParseFormat(f); err != nil {
			return fmt.Errorf("%w: output.formats: %w", ErrInvalidConfig, err)
		}
	}
	if strings.TrimSpace(c.Output.Name) == "" {
		return fmt.Errorf("%w: output.name is empty", ErrInvalidConfig)
	}
	if c.Render.SquareSize < 8 {
		return fmt.Errorf("%w: render.square_size %d (want >= 8)", ErrInvalidConfig, c.Render.SquareSize)
	}
	if c.Render.FrameDelay < 0 {
		return fmt.Errorf("%w: render.frame_delay %v", ErrInvalidConfig, c.Render.FrameDelay)
	}
	return nil
}

func describe(file string) string {
	if file == "" {
		return "knightpaths.yaml"
	}
	return file
}
