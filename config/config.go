package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config gom toàn bộ cấu hình đọc từ biến môi trường
type Config struct {
	Env            string
	Port           string
	DBDriver       string
	DB             DBConfig
	Redis          RedisConfig
	JWTSecret      string
	GoogleClientID string
	CloudinaryURL  string
	BackupDir      string
	LogLevel       string
	LogFormat      string
	GormLogLevel   string
}

type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// LoadEnv nạp biến môi trường từ tệp `.env` nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

// Load đọc cấu hình. Các biến DB_* được tìm theo tiền tố môi trường trước
// (DEV_DB_HOST khi ENV=dev), sau đó mới tới tên không tiền tố.
func Load() *Config {
	env := GetEnv("ENV", "dev")
	return &Config{
		Env:      env,
		Port:     GetEnv("PORT", "8083"),
		DBDriver: strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres)),
		DB: DBConfig{
			Host:            envFor(env, "DB_HOST", "localhost"),
			Port:            envFor(env, "DB_PORT", "5432"),
			User:            envFor(env, "DB_USER", "postgres"),
			Password:        envFor(env, "DB_PASSWORD", ""),
			Name:            envFor(env, "DB_NAME", "orionhotel"),
			SSLMode:         envFor(env, "DB_SSLMODE", "disable"),
			TimeZone:        envFor(env, "DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Redis: RedisConfig{
			Addr:     GetEnv("REDIS_ADDR", "localhost:6379"),
			Username: GetEnv("REDIS_USER", ""),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWTSecret:      GetEnv("JWT_SECRET", "orion-dev-secret"),
		GoogleClientID: GetEnv("GOOGLE_CLIENT_ID", ""),
		CloudinaryURL:  GetEnv("CLOUDINARY_URL", ""),
		BackupDir:      GetEnv("BACKUP_DIR", "backups/daily"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		LogFormat:      GetEnv("LOG_FORMAT", "console"),
		GormLogLevel:   GetEnv("GORM_LOG_LEVEL", "warn"),
	}
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFor(env, key, fallback string) string {
	if env != "" {
		if v := os.Getenv(strings.ToUpper(env) + "_" + key); v != "" {
			return v
		}
	}
	return GetEnv(key, fallback)
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: %s=%q không phải số, dùng mặc định %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: %s=%q không phải duration, dùng mặc định %s", key, v, fallback)
		return fallback
	}
	return d
}
