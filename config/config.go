package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	JWTSecret   string
	ChatUserID  string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "3001"),
		Timezone:    get("TZ", "Asia/Baku"),
		DBPath:      get("DB_PATH", "smartfarm.db"),
		LLMEndpoint: get("LLM_ENDPOINT", "https://api.openai.com"),
		LLMAPIKey:   get("OPENAI_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		JWTSecret:   get("JWT_SECRET", "your-secret-key-change-in-production"),
		ChatUserID:  get("CHAT_USER_ID", ""),
	}
	log.Printf("[cfg] port=%s db=%s model=%s", cfg.Port, cfg.DBPath, cfg.LLMModel)
	return cfg
}
