package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Defaults DefaultsConfig
	AI       AIConfig
}

type ServerConfig struct {
	Port              string
	AllowRegistration bool
	JWTSecret         string
	JWTExpirationHours int
}

type DatabaseConfig struct {
	Driver string // 'sqlite' (default) or 'mysql'
	DSN    string
}

type DefaultsConfig struct {
	AdminPassword string
	StaffPassword string
	CompanyName   string
}

type AIConfig struct {
	GeminiAPIKey string
}

var AppConfig *Config

// Load reads .env plus the process environment into AppConfig.
// Every key has a sensible single-shop default so a bare checkout runs.
func Load() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "invoicer.db")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("STAFF_PASSWORD", "staff123")
	viper.SetDefault("COMPANY_NAME", "Invoicer Pro")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			AllowRegistration:  viper.GetBool("ALLOW_REGISTRATION"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Driver: viper.GetString("DB_DRIVER"),
			DSN:    viper.GetString("DB_DSN"),
		},
		Defaults: DefaultsConfig{
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
			StaffPassword: viper.GetString("STAFF_PASSWORD"),
			CompanyName:   viper.GetString("COMPANY_NAME"),
		},
		AI: AIConfig{
			GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),
		},
	}

	if AppConfig.Server.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, using an insecure development default")
		AppConfig.Server.JWTSecret = "invoicer-pro-dev-secret"
	}

	log.Printf("Configuration loaded (driver=%s, port=%s)", AppConfig.Database.Driver, AppConfig.Server.Port)
}
