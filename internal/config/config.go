package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    int
	AppEnv        string
	DataDir       string
	UploadsDir    string
	JWTSecretKey  string
	TokenExpiry   time.Duration
	MaxUploadSize int64
	DemoMode      bool
	AdminUser     string
	AdminPassword string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:    getEnvAsInt("PORT", 8080),
		AppEnv:        getEnv("APP_ENV", "development"),
		DataDir:       getEnv("DATA_DIR", "data"),
		UploadsDir:    getEnv("UPLOADS_DIR", "public/img"),
		JWTSecretKey:  getEnv("JWT_SECRET", ""),
		TokenExpiry:   parseDuration(getEnv("TOKEN_EXPIRY", "12h"), 12*time.Hour),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		DemoMode:      getEnvBool("DEMO_MODE", false),
		AdminUser:     getEnv("ADMIN_USER", "lidija"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}
