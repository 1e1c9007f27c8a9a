package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	DataDir      string
	StatePath    string
	DatabasePath string

	// API config
	Port      string
	JWTSecret string

	// Telegram config (optional; the bot surface is disabled without a token)
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
	AdminTelegramID        int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	statePath := os.Getenv("PLAN_STATE_PATH")
	if statePath == "" {
		statePath = filepath.Join(dataDir, "plan_state.json")
	}

	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		databasePath = filepath.Join(dataDir, "menu_planner.db")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Required by the API server; validated there so the CLI stays usable
	// without it.
	jwtSecret := os.Getenv("JWT_SECRET")

	cfg := &Config{
		DataDir:            dataDir,
		StatePath:          statePath,
		DatabasePath:       databasePath,
		Port:               port,
		JWTSecret:          jwtSecret,
		TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL: os.Getenv("TELEGRAM_WEBHOOK_URL"),
	}

	if ids := os.Getenv("TELEGRAM_ALLOWED_USER_IDS"); ids != "" {
		for _, part := range strings.Split(ids, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid TELEGRAM_ALLOWED_USER_IDS entry %q: %w", part, err)
			}
			cfg.TelegramAllowedUserIDs = append(cfg.TelegramAllowedUserIDs, id)
		}
	}

	if admin := os.Getenv("ADMIN_TELEGRAM_ID"); admin != "" {
		id, err := strconv.ParseInt(strings.TrimSpace(admin), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_ID %q: %w", admin, err)
		}
		cfg.AdminTelegramID = id
	}

	return cfg, nil
}
