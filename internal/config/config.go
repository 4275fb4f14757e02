package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Seed     int64  `yaml:"seed" env:"SEED" env-default:"0"`
	Board    Board  `yaml:"board"`
	Redis    Redis  `yaml:"redis"`
}

type Board struct {
	Size               int   `yaml:"size" env:"BOARD_SIZE" env-default:"6"`
	Fleet              []int `yaml:"fleet" env:"BOARD_FLEET" env-default:"3,2,2,1,1,1,1"`
	PlacementAttempts  int   `yaml:"placement-attempts" env:"BOARD_PLACEMENT_ATTEMPTS" env-default:"2000"`
	BoardAttempts      int   `yaml:"board-attempts" env:"BOARD_ATTEMPTS" env-default:"100"`
	ContourBlocksShots bool  `yaml:"contour-blocks-shots" env:"CONTOUR_BLOCKS_SHOTS" env-default:"false"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
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
