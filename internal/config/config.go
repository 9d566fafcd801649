package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting the tag list

	"github.com/joho/godotenv" // For loading .env files
)

// DefaultTags is the seeded tag vocabulary used when GALLERY_TAGS is unset
var DefaultTags = []string{"nature", "animal", "people", "city", "abstract"}

// Config holds the application configuration
type Config struct {
	AppPort    string   // Application port
	DBUser     string   // Database user
	DBPassword string   // Database password
	DBHost     string   // Database host
	DBPort     string   // Database port
	DBName     string   // Database name
	JWTSecret  string   // JWT secret key
	RedisAddr  string   // Redis server address
	RedisPass  string   // Redis password
	RedisDB    int      // Redis database number
	UploadDir  string   // Directory holding uploaded binary content
	Tags       []string // Seeded tag vocabulary
	IsProd     bool     // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	uploadDir := os.Getenv("UPLOAD_DIR") // Upload directory, defaults to ./uploads
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &Config{
		AppPort:    os.Getenv("APP_PORT"),          // Application port
		DBUser:     os.Getenv("DB_USER"),           // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),       // Database password
		DBHost:     os.Getenv("DB_HOST"),           // Database host
		DBPort:     os.Getenv("DB_PORT"),           // Database port
		DBName:     os.Getenv("DB_NAME"),           // Database name
		JWTSecret:  os.Getenv("JWT_SECRET"),        // JWT secret key
		RedisAddr:  os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:    redisDB,                        // Redis database number
		UploadDir:  uploadDir,                      // Upload directory
		Tags:       parseTags(),                    // Seeded tag vocabulary
		IsProd:     os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// parseTags reads the comma-separated GALLERY_TAGS list, falling back to DefaultTags
func parseTags() []string {
	raw := os.Getenv("GALLERY_TAGS")
	if raw == "" {
		return DefaultTags
	}
	var tags []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			tags = append(tags, name)
		}
	}
	if len(tags) == 0 {
		return DefaultTags
	}
	return tags
}
