package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"info"`
	Board    Board   `yaml:"board"`
	Storage  Storage `yaml:"storage"`
}

// Board holds the default size used when a session starts or when the
// player asks for a new game without an explicit size.
type Board struct {
	Rows int `yaml:"rows" env-default:"6"`
	Cols int `yaml:"cols" env-default:"7"`
}

// Storage selects where save slots live.
type Storage struct {
	Backend string    `yaml:"backend" env-default:"file"`
	File    FileStore `yaml:"file"`
	SQLite  SQLite    `yaml:"sqlite"`
	Redis   Redis     `yaml:"redis"`
}

type FileStore struct {
	Dir string `yaml:"dir" env-default:"saves"`
}

type SQLite struct {
	Path string `yaml:"path" env-default:"connect4.db"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
