package config

import (
	"strings"

	"github.com/robohr/ai-service/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// defaults are applied before the config file and ENV are read.
var defaults = map[string]interface{}{
	"server.host":                   "0.0.0.0",
	"server.port":                   8000,
	"log.level":                     "info",
	"openai.model":                  "gpt-3.5-turbo",
	"nlp.confidence_threshold":      0.5,
	"nlp.cache_enabled":             true,
	"speech.provider":               "mock",
	"speech.max_file_size":          10 * 1024 * 1024,
	"speech.max_file_age":           24 * 60,
	"speech.sweep_every":            60,
	"translation.provider":          "mock",
	"translation.cache_enabled":     true,
	"translation.cache_ttl":         3600,
	"translation.max_length":        5000,
	"cache.type":                    "memory",
	"cache.redis.url":               "redis://localhost:6379",
	"store.type":                    "memory",
	"store.purge_every":             60,
}

// LoadConfig loads the config file and ENV variables into a Config struct
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("HRAI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine. Defaults and ENV cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	err := viper.BindEnv("openai.api_key", "HRAI_OPENAI_API_KEY")
	if err != nil {
		log.Fatalf("Error binding environment variable: %s", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Warn(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
