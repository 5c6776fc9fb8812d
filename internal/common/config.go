package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Pipeline PipelineConfig
	Collage  CollageConfig
	Telegram TelegramConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// PipelineConfig holds intake pipeline configuration
type PipelineConfig struct {
	MediaRoot   string
	Concurrency int
	PaceDelay   time.Duration
	ChunkSize   int
	OCRTimeout  time.Duration
}

// CollageConfig holds collage composition configuration
type CollageConfig struct {
	FontPath       string
	CanvasWidth    int
	CanvasHeight   int
	CurrencySymbol string
}

// TelegramConfig holds publish channel configuration
type TelegramConfig struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Timeout  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Pipeline: PipelineConfig{
			MediaRoot:   getEnv("MEDIA_ROOT", "./media"),
			Concurrency: getEnvAsInt("PIPELINE_CONCURRENCY", 4),
			PaceDelay:   getEnvAsDuration("PIPELINE_PACE_DELAY", 150*time.Millisecond),
			ChunkSize:   getEnvAsInt("PIPELINE_CHUNK_SIZE", 25),
			OCRTimeout:  getEnvAsDuration("OCR_TIMEOUT", 60*time.Second),
		},
		Collage: CollageConfig{
			FontPath:       getEnv("COLLAGE_FONT", ""),
			CanvasWidth:    getEnvAsInt("COLLAGE_WIDTH", 1080),
			CanvasHeight:   getEnvAsInt("COLLAGE_HEIGHT", 1350),
			CurrencySymbol: getEnv("COLLAGE_CURRENCY", "$"),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
			BaseURL:  getEnv("TELEGRAM_API_BASE", "https://api.telegram.org"),
			Timeout:  getEnvAsDuration("TELEGRAM_TIMEOUT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Collage.FontPath == "" {
		return NewAppError("CONFIG_ERROR", "COLLAGE_FONT is required", ErrInvalidInput)
	}
	if c.Telegram.BotToken == "" {
		return NewAppError("CONFIG_ERROR", "TELEGRAM_BOT_TOKEN is required", ErrInvalidInput)
	}
	if c.Telegram.ChatID == "" {
		return NewAppError("CONFIG_ERROR", "TELEGRAM_CHAT_ID is required", ErrInvalidInput)
	}
	if c.Pipeline.Concurrency < 1 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_CONCURRENCY must be >= 1", ErrInvalidInput)
	}
	return nil
}
