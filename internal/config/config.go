package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	GameTicTacToe = "tictactoe"
	GameRPS       = "rps"
	GameWords     = "words"

	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string  `yaml:"log-format" env:"LOG_FORMAT" env-default:"text"`
	Game      string  `yaml:"game" env:"GAME" env-default:"tictactoe"`
	Seed      uint64  `yaml:"seed" env:"SEED" env-default:"0"`
	Storage   Storage `yaml:"storage"`
	Redis     Redis   `yaml:"redis"`
	Words     Words   `yaml:"words"`
}

type Storage struct {
	Driver string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	TTL    time.Duration `yaml:"ttl" env:"STORAGE_TTL" env-default:"0s"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Words struct {
	File        string `yaml:"file" env:"WORDS_FILE"`
	MaxAttempts int    `yaml:"max-attempts" env:"WORDS_MAX_ATTEMPTS" env-default:"5"`
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
	if that.Host == "" || that.Port == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
