package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Mail       MailConfig
	Admin      AdminConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// MailConfig selects the delivery provider. Provider is "smtp" (default,
// works against Mailhog in development) or "sendgrid".
type MailConfig struct {
	Provider       string
	FromEmail      string
	FromName       string
	SendGridAPIKey string
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
}

// AdminConfig seeds the initial administrator account on startup.
type AdminConfig struct {
	Email    string
	Password string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	AppConfig = &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Database:   GetDatabaseConfig(),
		Redis:      GetRedisConfig(),
		JWT:        GetJWTConfig(),
		Mail:       GetMailConfig(),
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@parking.local"),
			Password: getEnv("ADMIN_PASSWORD", "changeme"),
		},
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // test DB runs on 5433
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // test Redis runs on 6380
		Password: "",
		DB:       1,
	}

	return &Config{
		ServerPort: "8081",
		Database:   *testConfig,
		Redis:      testRedisConfig,
		JWT: JWTConfig{
			Secret:     "test-secret",
			Expiration: time.Hour,
		},
		Mail: MailConfig{
			Provider:  "smtp",
			FromEmail: "noreply@parking.local",
			FromName:  "Parking Test",
			SMTPHost:  "localhost",
			SMTPPort:  1025,
		},
		Admin: AdminConfig{
			Email:    "admin@parking.local",
			Password: "changeme",
		},
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "parking_db"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetJWTConfig() JWTConfig {
	hours, err := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	if err != nil {
		panic(err)
	}

	return JWTConfig{
		Secret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		Expiration: time.Duration(hours) * time.Hour,
	}
}

func GetMailConfig() MailConfig {
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "1025"))
	if err != nil {
		panic(err)
	}

	return MailConfig{
		Provider:       getEnv("MAIL_PROVIDER", "smtp"),
		FromEmail:      getEnv("MAIL_FROM_EMAIL", "noreply@parking.local"),
		FromName:       getEnv("MAIL_FROM_NAME", "Parking Management"),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		SMTPHost:       getEnv("SMTP_HOST", "localhost"),
		SMTPPort:       smtpPort,
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
