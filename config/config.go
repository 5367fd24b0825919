package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mariahavens/restaurant-pos/utils"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Upload   UploadConfig
	LogFile  string
}

type ServerConfig struct {
	Port           string
	Env            string
	JWTSecret      string
	JWTExpiryHours int
}

type DatabaseConfig struct {
	Driver   string // mysql, postgres or sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	// Path is only used by the sqlite driver.
	Path string
}

type UploadConfig struct {
	Dir     string
	BaseURL string
}

var AppConfig *Config

// Load reads .env plus OS environment variables into AppConfig.
func Load() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	if err := viper.ReadInConfig(); err != nil {
		utils.InfoLogger.Printf("no .env file, relying on environment: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("DB_DRIVER", "mysql")
	viper.SetDefault("DB_HOST", "127.0.0.1")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_NAME", "restaurant_pos")
	viper.SetDefault("SQLITE_PATH", "restaurant_pos.db")
	viper.SetDefault("UPLOAD_DIR", "public/uploads")
	viper.SetDefault("UPLOAD_BASE_URL", "http://localhost:8080")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:           viper.GetString("PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			JWTSecret:      viper.GetString("JWT_SECRET"),
			JWTExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			Path:     viper.GetString("SQLITE_PATH"),
		},
		Upload: UploadConfig{
			Dir:     viper.GetString("UPLOAD_DIR"),
			BaseURL: viper.GetString("UPLOAD_BASE_URL"),
		},
		LogFile: viper.GetString("LOG_FILE"),
	}

	utils.SetJWTSecret(AppConfig.Server.JWTSecret)
}

// InitDB opens the configured database and applies the pool settings.
func InitDB() (*gorm.DB, error) {
	cfg := AppConfig.Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.Path)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		dialector = mysql.Open(dsn)
	}

	logLevel := logger.Warn
	if AppConfig.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// JWTExpiry returns the configured token lifetime.
func JWTExpiry() time.Duration {
	if AppConfig == nil || AppConfig.Server.JWTExpiryHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(AppConfig.Server.JWTExpiryHours) * time.Hour
}
