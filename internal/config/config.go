package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board      Board      `yaml:"board"`
	Scoreboard Scoreboard `yaml:"scoreboard"`
	Redis      Redis      `yaml:"redis"`
}

type Board struct {
	Dimension   int    `yaml:"dimension" env:"BOARD_DIMENSION" env-default:"3"`
	NoughtGlyph string `yaml:"nought-glyph" env-default:"O"`
	CrossGlyph  string `yaml:"cross-glyph" env-default:"X"`
}

type Scoreboard struct {
	Enabled bool `yaml:"enabled" env:"SCOREBOARD_ENABLED" env-default:"false"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in the config.yml file.
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
