// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage providers accepted by CDN_PROVIDER.
const (
	ProviderLocal      = "local"
	ProviderS3         = "s3"
	ProviderCloudinary = "cloudinary"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port      string
	AppEnv    string
	JWTSecret string

	// Root directory that every relative image path resolves against.
	PublicDir string

	CDNEnabled  bool
	CDNBaseURL  string
	CDNProvider string

	S3         S3Config
	Cloudinary CloudinaryConfig
}

// S3Config configures the S3-compatible object storage backend (AWS S3, MinIO).
type S3Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	Region     string
	UseSSL     bool
	PublicBase string // browser-accessible base URL, e.g. "https://alumni-images.s3.amazonaws.com"
}

// CloudinaryConfig is read for completeness; no backend consumes it yet.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		AppEnv:    getEnv("APP_ENV", "development"),
		JWTSecret: getEnv("JWT_SECRET", "change_me_in_production"),

		PublicDir: getEnv("PUBLIC_DIR", "./public"),

		CDNEnabled:  getBool("CDN_ENABLED", false),
		CDNBaseURL:  getEnv("CDN_BASE_URL", ""),
		CDNProvider: strings.ToLower(getEnv("CDN_PROVIDER", ProviderLocal)),

		S3: S3Config{
			Endpoint:   getEnv("AWS_S3_ENDPOINT", "s3.amazonaws.com"),
			AccessKey:  getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Bucket:     getEnv("AWS_S3_BUCKET", "alumni-images"),
			Region:     getEnv("AWS_REGION", "us-east-1"),
			UseSSL:     getBool("AWS_S3_USE_SSL", true),
			PublicBase: getEnv("AWS_S3_PUBLIC_BASE", ""),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}
