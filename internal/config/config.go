package config

import (
	"os"
	"path/filepath"
	"strconv"

	"glpi-insights/internal/auth"
	"glpi-insights/internal/ingest"
	"glpi-insights/internal/stats"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultCSVPath is the local export read when no file is uploaded.
const DefaultCSVPath = "glpi.csv"

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Credentials         auth.Credentials
	CSVPath             string
	DataPath            string
	LogDir              string
	ReportDir           string
	CacheSize           int
	RulesPath           string
	Rules               stats.ProblemRules
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

	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))
	reportDir := filepath.Join(dataPath, "reports")

	if err := os.MkdirAll(reportDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", reportDir).Msg("Failed to create report directory")
	}

	cfg := &AppConfig{
		Credentials: auth.Credentials{
			Username: getEnv("DASHBOARD_USERNAME", ""),
			Password: getEnv("DASHBOARD_PASSWORD", ""),
		},
		CSVPath:             resolvePath(dataPath, getEnv("GLPI_CSV_PATH", DefaultCSVPath)),
		DataPath:            dataPath,
		LogDir:              logDir,
		ReportDir:           reportDir,
		CacheSize:           getEnvInt("LOAD_CACHE_SIZE", ingest.DefaultCacheSize),
		RulesPath:           getEnv("RULES_PATH", ""),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", true),
	}

	rules, err := LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, err
	}
	cfg.Rules = rules

	if !cfg.Credentials.Configured() {
		log.Warn().Msg("DASHBOARD_USERNAME/DASHBOARD_PASSWORD not set, login will report misconfiguration")
	}
	return cfg, nil
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(base, path)
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
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring invalid integer setting")
	}
	return fallback
}
