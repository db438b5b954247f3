package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds listener and HTTP server settings.
type ServerConfig struct {
	Host            string
	Port            string
	Workers         int
	ReadBufferSize  int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	ReusePort       bool
}

// Addr returns the host:port pair the listener binds to.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level    string
	Format   string
	Timezone string
}

// Location resolves Timezone, falling back to UTC when it is empty or unknown.
func (l LogConfig) Location() *time.Location {
	if l.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AppConfig is the centralized configuration struct for an engine process.
// It is populated from environment variables.
type AppConfig struct {
	Server         ServerConfig
	Log            LogConfig
	MetricsEnabled bool
	SwaggerEnabled bool
}

// DefaultReadBufferSize bounds the request line plus headers of one request.
const DefaultReadBufferSize = 64 * 1024

// Defaults carries the per-engine values used when the environment is silent.
type Defaults struct {
	Workers int
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load(def Defaults) *AppConfig {
	workers := def.Workers
	if workers <= 0 {
		workers = 1
	}
	return &AppConfig{
		Server: ServerConfig{
			Host:            getEnv("HOST", ""),
			Port:            getEnv("PORT", "8080"),
			Workers:         getEnvInt("WORKERS", workers),
			ReadBufferSize:  getEnvInt("READ_BUFFER_SIZE", DefaultReadBufferSize),
			ReadTimeout:     time.Duration(getEnvInt("READ_TIMEOUT_SEC", 10)) * time.Second,
			WriteTimeout:    time.Duration(getEnvInt("WRITE_TIMEOUT_SEC", 10)) * time.Second,
			ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SEC", 5)) * time.Second,
			ReusePort:       getEnvBool("REUSE_PORT", true),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Format:   getEnv("LOG_FORMAT", "json"),
			Timezone: getEnv("APP_TIMEZONE", "UTC"),
		},
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
