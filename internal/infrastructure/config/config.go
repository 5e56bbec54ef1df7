package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Maps    MapsConfig
	Sweep   SweepConfig
	History HistoryConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type MapsConfig struct {
	APIKey  string `env:"GOOGLE_MAPS_API_KEY"`
	City    string `env:"GEOCODE_CITY,    default=Jakarta"`
	Country string `env:"GEOCODE_COUNTRY, default=Indonesia"`
}

type SweepConfig struct {
	Interval  time.Duration `env:"SWEEP_INTERVAL, default=15m"`
	Workers   int           `env:"SWEEP_WORKERS,  default=4"`
	RoadsFile string        `env:"ROADS_FILE"`
}

type HistoryConfig struct {
	Lookback time.Duration `env:"HISTORY_LOOKBACK, default=720h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=jakarta_traffic"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
