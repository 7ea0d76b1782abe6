package config

import (
	"envportal/internal/logger"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Port        int
	PublicURL   string

	DatabaseDbPath       string
	DatabaseCacheAddress string
	DatabaseCachePort    int

	StorageDir        string
	StoragePublicPath string

	SessionTTLHours int
	BcryptCost      int
}

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("PORTAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("environment", "development")
	viper.SetDefault("port", 8080)
	viper.SetDefault("public_url", "http://localhost:8080")
	viper.SetDefault("database.db_path", "data/portal.db")
	viper.SetDefault("database.cache_address", "localhost")
	viper.SetDefault("database.cache_port", 6379)
	viper.SetDefault("storage.dir", "data/uploads")
	viper.SetDefault("storage.public_path", "/uploads")
	viper.SetDefault("session.ttl_hours", 24)
	viper.SetDefault("bcrypt_cost", 12)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, log.Err("failed to read config file", err)
		}
		log.Info("No config file found, using environment and defaults")
	}

	config := Config{
		Environment:          viper.GetString("environment"),
		Port:                 viper.GetInt("port"),
		PublicURL:            viper.GetString("public_url"),
		DatabaseDbPath:       viper.GetString("database.db_path"),
		DatabaseCacheAddress: viper.GetString("database.cache_address"),
		DatabaseCachePort:    viper.GetInt("database.cache_port"),
		StorageDir:           viper.GetString("storage.dir"),
		StoragePublicPath:    viper.GetString("storage.public_path"),
		SessionTTLHours:      viper.GetInt("session.ttl_hours"),
		BcryptCost:           viper.GetInt("bcrypt_cost"),
	}

	if config.DatabaseDbPath == "" {
		return Config{}, log.ErrMsg("database path is required")
	}

	return config, nil
}
