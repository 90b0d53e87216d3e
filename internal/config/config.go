package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	StorageDriver string
	DataDir       string
	ProductsFile  string
	EquipmentFile string
	NewsFile      string
	DatabaseURL   string
	RedisAddr     string

	UploadDir string

	BotWebhookURL        string
	BotMessageWebhookURL string
	RelayTimeout         time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	relayTimeout, err := time.ParseDuration(getEnv("RELAY_TIMEOUT", "30s"))
	if err != nil {
		relayTimeout = 30 * time.Second
	}

	dataDir := getEnv("DATA_DIR", ".")

	return &Config{
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("ENV", "development"),

		StorageDriver: getEnv("STORAGE_DRIVER", "file"),
		DataDir:       dataDir,
		ProductsFile:  filepath.Join(dataDir, getEnv("PRODUCTS_FILE", "mockdata.json")),
		EquipmentFile: filepath.Join(dataDir, getEnv("EQUIPMENT_FILE", "equipments.json")),
		NewsFile:      filepath.Join(dataDir, getEnv("NEWS_FILE", "news.json")),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),

		UploadDir: getEnv("UPLOAD_DIR", filepath.Join(os.TempDir(), "listing-api-uploads")),

		BotWebhookURL:        getEnv("BOT_WEBHOOK_URL", ""),
		BotMessageWebhookURL: getEnv("BOT_MESSAGE_WEBHOOK_URL", ""),
		RelayTimeout:         relayTimeout,
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
