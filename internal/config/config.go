package config

import (
	"github.com/Bharani-dharan-k/civic-main-sub000/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name  string `mapstructure:"NAME"`
		Port  string `mapstructure:"PORT"`
		State string `mapstructure:"STATE"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
		}
	}

	APP_SECRET struct {
		Paseto struct {
			HexKey string `mapstructure:"HEX_KEY"`
		}
	}

	MAILTRAP struct {
		Sandbox struct {
			SandboxHost   string `mapstructure:"SANDBOX_HOST"`
			SandboxAPI    string `mapstructure:"SANDBOX_API"`
			SandboxURL    string `mapstructure:"SANDBOX_URL"`
			SandboxDomain string `mapstructure:"SANDBOX_DOMAIN"`
		}
		API struct {
			APIToken         string `mapstructure:"API_TOKEN"`
			APIHost          string `mapstructure:"API_HOST"`
			MailtrapTokenAPI string `mapstructure:"MAILTRAP_TOKEN_API"`
			MailtrapURL      string `mapstructure:"MAILTRAP_URL"`
			MailtrapDomain   string `mapstructure:"MAILTRAP_DOMAIN"`
		}
	}

	RETENTION struct {
		NotificationDays int `mapstructure:"NOTIFICATION_DAYS"`
	}
}

func LoadConfig() *AppConfig {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Error().Err(err).Msg("Failed to read configuration file")
		return nil
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal configuration")
		return nil
	}

	if config.APP.Port == "" {
		config.APP.Port = "8080"
	}

	if config.DATABASE.Postgres.DSN == "" {
		log.Error().Msg("Database DSN is not configured")
		return nil
	}

	if config.APP_SECRET.Paseto.HexKey == "" {
		config.APP_SECRET.Paseto.HexKey = utils.GenerateSymmetricKey()
	}

	if config.RETENTION.NotificationDays <= 0 {
		config.RETENTION.NotificationDays = 90
	}

	log.Info().Msg("Configuration loaded...")
	return &config
}
