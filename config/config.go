package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	App      App
	Gemini   Gemini
	SendGrid SendGrid
	Stripe   Stripe
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// App holds application-wide settings shared across services.
type App struct {
	// BaseURL is the public origin used to build test links, invite links
	// and Stripe redirect URLs, e.g. https://app.chartme.io
	BaseURL string
}

type Gemini struct {
	ApiKey string
	Model  string
}

type SendGrid struct {
	ApiKey    string
	FromEmail string
	FromName  string
}

type Stripe struct {
	SecretKey     string
	WebhookSecret string
	PriceID       string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("SENDGRID_FROM_EMAIL", "no-reply@chartme.io")
	viper.SetDefault("SENDGRID_FROM_NAME", "ChartMe")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.App.BaseURL = viper.GetString("APP_BASE_URL")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")

	config.SendGrid.ApiKey = viper.GetString("SENDGRID_API_KEY")
	config.SendGrid.FromEmail = viper.GetString("SENDGRID_FROM_EMAIL")
	config.SendGrid.FromName = viper.GetString("SENDGRID_FROM_NAME")

	config.Stripe.SecretKey = viper.GetString("STRIPE_SECRET_KEY")
	config.Stripe.WebhookSecret = viper.GetString("STRIPE_WEBHOOK_SECRET")
	config.Stripe.PriceID = viper.GetString("STRIPE_PRICE_ID")

	log.Info().Str("port", config.Server.Port).Str("base_url", config.App.BaseURL).Msg("Config loaded")
	return &config, nil
}
