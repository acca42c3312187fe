package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port           string        `mapstructure:"port"`
	Storage        string        `mapstructure:"storage"`
	MongoURI       string        `mapstructure:"MONGODB_URI"`
	MongoDatabase  string        `mapstructure:"mongo_database"`
	JWTSecret      string        `mapstructure:"JWT_SECRET"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
	MockLatency    time.Duration `mapstructure:"mock_latency"`
	AllowedOrigins string        `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8080")
	v.SetDefault("storage", StorageMongo)
	v.SetDefault("mongo_database", "portal")
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("mock_latency", 0)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.BindEnv("MONGODB_URI")
	v.BindEnv("JWT_SECRET")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Storage != StorageMongo && config.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage)
	}

	return &config, nil
}
