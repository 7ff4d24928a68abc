package config

import (
	"log"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds runtime settings, read from config.yaml and overridable
// via environment variables (APP_PORT, APP_DATABASE_PATH, ...).
type Config struct {
	Port         string `mapstructure:"port"`
	GinMode      string `mapstructure:"gin_mode"`
	DatabasePath string `mapstructure:"database_path"`
	JWTSecret    string `mapstructure:"jwt_secret"`
	SeedOnStart  bool   `mapstructure:"seed_on_start"`
	SeedPassword string `mapstructure:"seed_password"`
}

// Load reads configuration with sane development defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("database_path", "food_ordering.db")
	v.SetDefault("jwt_secret", "food-ordering-secret-change-in-production")
	v.SetDefault("seed_on_start", false)
	v.SetDefault("seed_password", "password123")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional; env vars and defaults are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitDB opens the sqlite database and migrates all models.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
	); err != nil {
		return nil, err
	}

	log.Println("database connected and migrated")
	return db, nil
}
