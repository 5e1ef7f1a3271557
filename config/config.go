package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Tika     Tika
	Ingest   Ingest
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string // "sqlite" or "postgres"
	Path     string // sqlite file path
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Tika struct {
	URL     string
	Timeout time.Duration
}

type Ingest struct {
	SampleDir string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "data/theory.db")
	viper.SetDefault("TIKA_URL", "http://localhost:9998")
	viper.SetDefault("TIKA_TIMEOUT", "30s")
	viper.SetDefault("SAMPLE_DIR", "sample_files")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Path = viper.GetString("DATABASE_PATH")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Tika.URL = viper.GetString("TIKA_URL")
	config.Tika.Timeout = viper.GetDuration("TIKA_TIMEOUT")

	config.Ingest.SampleDir = viper.GetString("SAMPLE_DIR")

	log.Info().Str("driver", config.Database.Driver).Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
