package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/flagx"
	"github.com/joho/godotenv"
)

// loadDotEnv is a test seam for godotenv.Load.
var loadDotEnv = func() error { return godotenv.Load() }

// parseEnv overlays BLOG_* environment variables. A .env file in the working
// directory is loaded first; variables already set in the process win.
func parseEnv(config *Config) {
	_ = loadDotEnv()

	config.EndpointAddrHTTP = getEnv("BLOG_ADDR", config.EndpointAddrHTTP)
	if port := getEnv("PORT", ""); port != "" && os.Getenv("BLOG_ADDR") == "" {
		config.EndpointAddrHTTP = ":" + port
	}
	config.DatabaseDSN = getEnv("BLOG_DATABASE_DSN", getEnv("DB_CONNECTION_STRING", config.DatabaseDSN))
	config.SecretKey = getEnv("BLOG_SECRET_KEY", config.SecretKey)
	config.AccessTokenValidityDuration = getEnvDuration("BLOG_TOKEN_TTL", config.AccessTokenValidityDuration)
	config.BcryptCost = getEnvInt("BLOG_BCRYPT_COST", config.BcryptCost)
	config.LogLevel = getEnv("BLOG_LOG_LEVEL", config.LogLevel)
	if origins := flagx.SplitCSV(getEnv("BLOG_CORS_ALLOWED_ORIGINS", "")); len(origins) > 0 {
		config.CorsAllowedOrigins = origins
	}
	config.LoginRateLimit = getEnvInt("BLOG_LOGIN_RATE_LIMIT", config.LoginRateLimit)
	config.LoginRateWindow = getEnvDuration("BLOG_LOGIN_RATE_WINDOW", config.LoginRateWindow)
	config.S3RootUser = getEnv("BLOG_S3_ROOT_USER", config.S3RootUser)
	config.S3RootPassword = getEnv("BLOG_S3_ROOT_PASSWORD", config.S3RootPassword)
	config.S3Bucket = getEnv("BLOG_S3_BUCKET", config.S3Bucket)
	config.S3Region = getEnv("BLOG_S3_REGION", config.S3Region)
	config.S3BaseEndpoint = getEnv("BLOG_S3_BASE_ENDPOINT", config.S3BaseEndpoint)
	config.ArchiveDir = getEnv("BLOG_ARCHIVE_DIR", config.ArchiveDir)
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return d
	}
	return fallback
}
