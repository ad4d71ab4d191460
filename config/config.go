package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	Timezone  string
	DBPath    string
	JWTSecret string
	UploadDir string
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
		Port:      get("PORT", "5000"),
		Timezone:  get("TZ", "Africa/Kigali"),
		DBPath:    get("DB_PATH", "agridev.db"),
		JWTSecret: get("JWT_SECRET", "dev-secret-change-me"),
		UploadDir: get("UPLOAD_DIR", "uploads"),
	}
	log.Printf("[cfg] port=%s db=%s uploads=%s", cfg.Port, cfg.DBPath, cfg.UploadDir)
	return cfg
}
