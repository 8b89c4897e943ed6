package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DataDir   string
	UploadDir string
	WebDir    string

	// Shared admin-panel password. Empty keeps the admin routes open, which
	// matches the reference deployment where the gate lived in the client.
	AdminPassword string

	// Player verification upstream. The player id is appended as the "id"
	// query parameter; VerifyAPIKey is sent as "key" when set.
	VerifyAPIURL string
	VerifyAPIKey string

	// Optional Telegram channel for new-order alerts.
	TelegramBotToken    string
	TelegramAdminChatID int64

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		DataDir:   getEnv("DATA_DIR", "data"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		WebDir:    getEnv("WEB_DIR", "web"),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		VerifyAPIURL: os.Getenv("VERIFY_API_URL"),
		VerifyAPIKey: os.Getenv("VERIFY_API_KEY"),

		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAdminChatID: getEnvAsInt64("TELEGRAM_ADMIN_CHAT_ID", 0),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
