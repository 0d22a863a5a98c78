package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host       string
	Port       int
	Sender     string
	User       string
	Password   string
	TimeoutSec int
}

type AppConfig struct {
	Port            string
	DBPath          string
	BoundaryDir     string
	HaversineMode   string // standard|legacy
	SMTP            SMTPConfig
	AlertRecipient  string
	HotAlertEnabled bool
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
	getInt := func(k string, def int) int {
		v, err := strconv.Atoi(get(k, ""))
		if err != nil || v <= 0 {
			return def
		}
		return v
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		DBPath:        get("DB_PATH", "agri.db"),
		BoundaryDir:   get("BOUNDARY_DIR", "boundaries"),
		HaversineMode: get("HAVERSINE_MODE", "standard"),
		SMTP: SMTPConfig{
			Host:       get("SMTP_HOST", "smtp.example.com"),
			Port:       getInt("SMTP_PORT", 587),
			Sender:     get("SMTP_SENDER", "agriculture_alerts@example.com"),
			User:       get("SMTP_USER", ""),
			Password:   get("SMTP_PASSWORD", ""),
			TimeoutSec: getInt("SMTP_TIMEOUT_SEC", 15),
		},
		AlertRecipient:  get("ALERT_RECIPIENT", "farmer@example.com"),
		HotAlertEnabled: get("HOT_ALERT_ENABLED", "true") == "true",
	}
	log.Printf("[cfg] %+v", cfg.masked())
	return cfg
}

// masked hides the SMTP password for logging.
func (c AppConfig) masked() AppConfig {
	if c.SMTP.Password != "" {
		c.SMTP.Password = "***"
	}
	return c
}
