package common

import (
	"os"
	"runtime"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Image     ImageConfig
	OCR       OCRConfig
	Match     MatchConfig
	RateLimit RateLimitConfig
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

// ImageConfig bounds what the validator accepts before any decoding happens.
type ImageConfig struct {
	MaxBytes  int64
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Language        string
	TessdataDir     string
	ConfidenceFloor float64 // tokens at/below this are excluded from the mean
	MinDimension    int     // upscale threshold for preprocessing
	ProfileTimeout  time.Duration
	Workers         int // bounded pool for CPU-bound recognition
	TempDir         string
}

// MatchConfig holds ingredient matching configuration
type MatchConfig struct {
	SimilarityThreshold float64
	MaxSuggestions      int
	SearchLimit         int
	PriceMin            float64
	PriceMax            float64
	NameRefreshInterval time.Duration
}

// RateLimitConfig holds admission-control configuration for the OCR endpoints.
type RateLimitConfig struct {
	Window          time.Duration
	MaxRequests     int
	DelayMultiplier float64
	MaxDelay        time.Duration
	SweepInterval   time.Duration
	StaleCutoff     time.Duration
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
		Image: ImageConfig{
			MaxBytes:  getEnvAsInt64("IMAGE_MAX_BYTES", 10<<20),
			MinWidth:  getEnvAsInt("IMAGE_MIN_WIDTH", 100),
			MaxWidth:  getEnvAsInt("IMAGE_MAX_WIDTH", 8000),
			MinHeight: getEnvAsInt("IMAGE_MIN_HEIGHT", 100),
			MaxHeight: getEnvAsInt("IMAGE_MAX_HEIGHT", 8000),
		},
		OCR: OCRConfig{
			Language:        getEnv("OCR_LANGUAGE", "eng"),
			TessdataDir:     getEnv("TESSDATA_PREFIX", ""),
			ConfidenceFloor: getEnvAsFloat64("OCR_CONFIDENCE_FLOOR", 30),
			MinDimension:    getEnvAsInt("OCR_MIN_DIMENSION", 1000),
			ProfileTimeout:  getEnvAsDuration("OCR_PROFILE_TIMEOUT", 30*time.Second),
			Workers:         getEnvAsInt("OCR_WORKERS", runtime.GOMAXPROCS(0)),
			TempDir:         getEnv("OCR_TEMP_DIR", ""),
		},
		Match: MatchConfig{
			SimilarityThreshold: getEnvAsFloat64("MATCH_SIMILARITY_THRESHOLD", 0.3),
			MaxSuggestions:      getEnvAsInt("MATCH_MAX_SUGGESTIONS", 3),
			SearchLimit:         getEnvAsInt("MATCH_SEARCH_LIMIT", 10),
			PriceMin:            getEnvAsFloat64("PRICE_MIN", 0.01),
			PriceMax:            getEnvAsFloat64("PRICE_MAX", 999.99),
			NameRefreshInterval: getEnvAsDuration("NAME_REFRESH_INTERVAL", 1*time.Hour),
		},
		RateLimit: RateLimitConfig{
			Window:          getEnvAsDuration("RATE_WINDOW", 1*time.Minute),
			MaxRequests:     getEnvAsInt("RATE_MAX_REQUESTS", 10),
			DelayMultiplier: getEnvAsFloat64("RATE_DELAY_MULTIPLIER", 2.0),
			MaxDelay:        getEnvAsDuration("RATE_MAX_DELAY", 15*time.Minute),
			SweepInterval:   getEnvAsDuration("RATE_SWEEP_INTERVAL", 5*time.Minute),
			StaleCutoff:     getEnvAsDuration("RATE_STALE_CUTOFF", 30*time.Minute),
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Image.MaxBytes <= 0 {
		return NewAppError("CONFIG_ERROR", "IMAGE_MAX_BYTES must be positive", ErrInvalidInput)
	}
	if c.Image.MinWidth <= 0 || c.Image.MinHeight <= 0 {
		return NewAppError("CONFIG_ERROR", "image minimum dimensions must be positive", ErrInvalidInput)
	}
	if c.Image.MaxWidth < c.Image.MinWidth || c.Image.MaxHeight < c.Image.MinHeight {
		return NewAppError("CONFIG_ERROR", "image maximum dimensions below minimums", ErrInvalidInput)
	}
	if c.Match.PriceMax <= c.Match.PriceMin {
		return NewAppError("CONFIG_ERROR", "PRICE_MAX must exceed PRICE_MIN", ErrInvalidInput)
	}
	if c.RateLimit.MaxRequests <= 0 {
		return NewAppError("CONFIG_ERROR", "RATE_MAX_REQUESTS must be positive", ErrInvalidInput)
	}
	return nil
}
