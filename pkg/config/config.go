package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config aggregates all runtime settings for the portal.
type Config struct {
	Env string

	Storage StorageConfig
	Admin   AdminConfig
	Log     LogConfig
	Seed    SeedConfig
}

// StorageConfig locates the persisted collections and rendered exports.
type StorageConfig struct {
	DataDir    string
	ExportsDir string
}

// AdminConfig carries the single fixed credential pair.
type AdminConfig struct {
	Username string
	Password string
}

// LogConfig tunes logger output.
type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig controls sample-data creation on an empty store.
type SeedConfig struct {
	SampleData bool
}

// Load reads configuration from the environment and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Storage = StorageConfig{
		DataDir:    v.GetString("DATA_DIR"),
		ExportsDir: v.GetString("EXPORTS_DIR"),
	}

	cfg.Admin = AdminConfig{
		Username: v.GetString("ADMIN_USERNAME"),
		Password: v.GetString("ADMIN_PASSWORD"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{
		SampleData: v.GetBool("SEED_SAMPLE_DATA"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("EXPORTS_DIR", "./exports")

	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SEED_SAMPLE_DATA", true)
}
