package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Database DatabaseConfig `mapstructure:"database"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LLMConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Enabled reports whether an interaction-history database is configured.
// Without one the learned scoring signal degrades to its neutral default.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type ScoringConfig struct {
	HistoryWindow         int `mapstructure:"history_window"`
	HistoryTimeoutSeconds int `mapstructure:"history_timeout_seconds"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

var globalConfig Config

func Load(configPath string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Missing file is fine; environment variables take over.
	}

	if err := viper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaultValues()

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8000
	}
	if globalConfig.LLM.APIKey == "" {
		globalConfig.LLM.APIKey = os.Getenv("GROQ_API_KEY")
	}
	if globalConfig.LLM.BaseURL == "" {
		globalConfig.LLM.BaseURL = "https://api.groq.com/openai/v1"
	}
	if globalConfig.LLM.Model == "" {
		globalConfig.LLM.Model = "openai/gpt-oss-20b"
	}
	if globalConfig.Scoring.HistoryWindow == 0 {
		globalConfig.Scoring.HistoryWindow = 200
	}
	if globalConfig.Scoring.HistoryTimeoutSeconds == 0 {
		globalConfig.Scoring.HistoryTimeoutSeconds = 2
	}
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if len(globalConfig.CORS.AllowOrigins) == 0 {
		globalConfig.CORS.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
		}
	}
	if globalConfig.Metrics.Port == 0 {
		globalConfig.Metrics.Port = 9090
	}
}

func GetConfig() *Config {
	return &globalConfig
}
