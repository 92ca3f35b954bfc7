package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort       string `mapstructure:"HTTP_PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`

	AccessSecret    string `mapstructure:"ACCESS_SECRET"`
	RefreshSecret   string `mapstructure:"REFRESH_SECRET"`
	AccessTokenTTL  string `mapstructure:"ACCESS_TOKEN_TTL"`  // например "15m"
	RefreshTokenTTL string `mapstructure:"REFRESH_TOKEN_TTL"` // например "168h"

	SendgridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	SenderEmail    string `mapstructure:"SENDER_EMAIL"`
	SupportEmail   string `mapstructure:"SUPPORT_EMAIL"`
	FrontendURL    string `mapstructure:"FRONTEND_URL"`

	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// ВАЖНО: Явно биндим
	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("ACCESS_SECRET")
	viper.BindEnv("REFRESH_SECRET")
	viper.BindEnv("ACCESS_TOKEN_TTL")
	viper.BindEnv("REFRESH_TOKEN_TTL")
	viper.BindEnv("SENDGRID_API_KEY")
	viper.BindEnv("SENDER_EMAIL")
	viper.BindEnv("SUPPORT_EMAIL")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("GEMINI_API_KEY")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
