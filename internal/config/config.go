package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"agendas-mcp/internal/dataset"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath            string
	LogDir              string
	DataSources         []string
	HTTPAddr            string
	LoadTimeout         time.Duration
	LoadMaxAttempts     int
	LoadRetryDelay      time.Duration
	StrictSchema        bool
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return fromEnv(exeDir), nil
}

func fromEnv(exeDir string) *AppConfig {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))

	sources := splitList(getEnv("DATA_SOURCE", ""))
	if len(sources) == 0 {
		sources = []string{filepath.Join(dataPath, "dados.json")}
	}

	return &AppConfig{
		DataPath:            dataPath,
		LogDir:              logDir,
		DataSources:         sources,
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		LoadTimeout:         time.Duration(getEnvInt("LOAD_TIMEOUT_SECONDS", 30)) * time.Second,
		LoadMaxAttempts:     getEnvInt("LOAD_MAX_ATTEMPTS", 3),
		LoadRetryDelay:      time.Duration(getEnvInt("LOAD_RETRY_DELAY_SECONDS", 2)) * time.Second,
		StrictSchema:        getEnvBool("STRICT_SCHEMA", false),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", true),
	}
}

// Loader builds the dataset loader described by the configuration.
func (c *AppConfig) Loader() *dataset.Loader {
	return dataset.NewLoader(
		dataset.NewSources(c.DataSources, c.LoadTimeout),
		dataset.LoaderConfig{
			MaxAttempts:    c.LoadMaxAttempts,
			RetryDelay:     c.LoadRetryDelay,
			AttemptTimeout: c.LoadTimeout,
			Strict:         c.StrictSchema,
		},
	)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && intVal >= 0 {
			return intVal
		}
		log.Warn().Str("key", key).Str("value", value).Int("default", fallback).Msg("Ignoring invalid integer setting")
	}
	return fallback
}
