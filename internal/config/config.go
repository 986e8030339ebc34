package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"rift-rewind/internal/constants"
)

type Config struct {
	RiotAPIKey string
	DBPath     string
	ServerPort string
	LogLevel   string

	AWSRegion      string
	BedrockModelID string

	ShortWindowLimit    int
	ShortWindowDuration time.Duration
	LongWindowLimit     int
	LongWindowDuration  time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey: getEnv("RIOT_API_KEY", ""),
		DBPath:     getEnv("DB_PATH", "rewind.db"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		BedrockModelID: getEnv("BEDROCK_MODEL_ID", "anthropic.claude-3-5-sonnet-20241022-v2:0"),

		ShortWindowLimit:    getEnvInt("RATE_LIMIT_SHORT", constants.ShortWindowLimit),
		ShortWindowDuration: constants.ShortWindowDuration,
		LongWindowLimit:     getEnvInt("RATE_LIMIT_LONG", constants.LongWindowLimit),
		LongWindowDuration:  constants.LongWindowDuration,
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("aws_region", cfg.AWSRegion).
		Str("bedrock_model", cfg.BedrockModelID).
		Int("rate_limit_short", cfg.ShortWindowLimit).
		Int("rate_limit_long", cfg.LongWindowLimit).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
