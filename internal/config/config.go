package config

import (
	"os"
	"time"
)

type Config struct {
	ServerAddress   string
	AllowedOrigin   string
	MongoURI        string
	MongoDatabase   string
	DataDir         string
	UploadDir       string
	MaxUploadSizeMB int64
	AdminKey        string
	JWTSecret       string
	TokenTTL        time.Duration
	SendGridAPIKey  string
	ContactFrom     string
	ContactTo       string
}

func Load() *Config {
	return &Config{
		ServerAddress:   getEnv("SERVER_ADDRESS", ":5000"),
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DB", "portfolio"),
		DataDir:         getEnv("DATA_DIR", "./data"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSizeMB: 10,
		AdminKey:        getEnv("ADMIN_KEY", ""),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenTTL:        7 * 24 * time.Hour,
		SendGridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		ContactFrom:     getEnv("CONTACT_FROM_EMAIL", ""),
		ContactTo:       getEnv("CONTACT_TO_EMAIL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
