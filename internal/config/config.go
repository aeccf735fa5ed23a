package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string // Application port
	DBDSN         string // Full database DSN, overrides the parts below
	DBUser        string // Database user
	DBPassword    string // Database password
	DBHost        string // Database host
	DBPort        string // Database port
	DBName        string // Database name
	AutoMigrate   bool   // Run schema migration on server start
	RedisAddr     string // Redis server address, empty keeps flashes in memory
	RedisPass     string // Redis password
	RedisDB       int    // Redis database number
	SessionSecret string // HMAC key for the session cookie
	LogLevel      string // Logrus level name
	IsProd        bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env
func FromEnv() *Config {
	redisDB, err := strconv.Atoi(os.Getenv("REDIS_DB"))
	if err != nil {
		redisDB = 0 // Default Redis database
	}
	return &Config{
		AppPort:       getEnv("PORT", "3000"),                       // Application port
		DBDSN:         os.Getenv("DB_DSN"),                          // Full DSN
		DBUser:        getEnv("DB_USER", "root"),                    // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                     // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),               // Database host
		DBPort:        getEnv("DB_PORT", "3306"),                    // Database port
		DBName:        getEnv("DB_NAME", "chainwatch"),              // Database name
		AutoMigrate:   os.Getenv("DB_AUTO_MIGRATE") == "true",       // Migrate on start
		RedisAddr:     os.Getenv("REDIS_ADDR"),                      // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                      // Redis password
		RedisDB:       redisDB,                                      // Redis database number
		SessionSecret: getEnv("SESSION_SECRET", "chainwatchsecret"), // Session cookie key
		LogLevel:      getEnv("LOG_LEVEL", "info"),                  // Log level
		IsProd:        os.Getenv("IS_PROD") == "true",               // Is production environment
	}
}

// DSN returns the MySQL Data Source Name for the configured database
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN // Explicit DSN wins
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&charset=utf8mb4&loc=UTC"
}

// getEnv returns the value of key or fallback when it is unset or empty
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
