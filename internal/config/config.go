package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StatsBackendFile   = "file"
	StatsBackendRedis  = "redis"
	StatsBackendSQLite = "sqlite"
)

var ErrUnknownStatsBackend = errors.New("unknown stats backend")

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"warn"`
	Stats    Stats  `yaml:"stats"`
}

type Stats struct {
	Backend    string `yaml:"backend" env-default:"file"`
	Path       string `yaml:"path" env-default:"game_stats/stats.json"`
	SQLitePath string `yaml:"sqlite-path" env-default:"game_stats/stats.db"`
	Redis      Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
	Key  string `yaml:"key" env-default:"stats"`
}

// MustLoad - load configuration from the yml file at path; defaults are used when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not apply defaults: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("could not stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	if err = config.Stats.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Stats) Validate() error {
	switch that.Backend {
	case StatsBackendFile, StatsBackendRedis, StatsBackendSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatsBackend, that.Backend)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
