package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FASTA_LOG_LEVEL.
const EnvPrefix = "FASTA"

// Name is the config file base name searched in the working directory.
const Name = "fasta-cli-tools"

type Config struct {
	LogFile   string `mapstructure:"log_file"`
	LogLevel  string `mapstructure:"log_level"`
	LineWidth int    `mapstructure:"line_width"`
	Uppercase bool   `mapstructure:"uppercase"`
	Workers   int    `mapstructure:"workers"`
	Seed      uint64 `mapstructure:"seed"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("line_width", 60)
	v.SetDefault("uppercase", false)
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("seed", 0)
}

// LoadConfig loads configuration from path, or from ./fasta-cli-tools.{json,yaml,toml}
// when path is empty. A missing file is not fatal: defaults apply. A .env file in
// the working directory, if any, is loaded into the environment first and
// FASTA_* variables override file values.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if c.LineWidth < 0 {
		return nil, fmt.Errorf("line_width must not be negative, got %d", c.LineWidth)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return &c, nil
}

// Exists reports whether an explicit config path points at a file.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
