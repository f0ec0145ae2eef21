// Package config arma la configuración de la app una sola vez al
// arranque, desde variables de entorno (con .env opcional vía godotenv).
// El struct se pasa explícito a los componentes; no hay global ambiente.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

type Config struct {
	Env       string
	Port      string
	SecretKey string

	UploadFolder     string
	MaxContentLength int64

	// DatabaseURL completa manda; si viene vacía se arma desde DB_*.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env si existe y después el entorno. Los defaults son
// seguros para desarrollo.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:       envOr("APP_ENV", EnvDevelopment),
		Port:      envOr("PORT", "8080"),
		SecretKey: envOr("SECRET_KEY", "dev-secret-key-cambiar-en-produccion"),

		UploadFolder:     envOr("UPLOAD_FOLDER", "static/uploads"),
		MaxContentLength: envInt64("MAX_CONTENT_LENGTH", 16*1024*1024),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      envOr("DB_HOST", "localhost"),
		DBPort:      envOr("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		AppName:   envOr("APP_NAME", "adopciones"),
	}
}

// DSN devuelve la cadena de conexión a Postgres, o vacío si no hay
// base configurada (en ese caso la app corre con repos en memoria).
func (c Config) DSN() string {
	if c.Env == EnvTesting {
		return ""
	}
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBUser == "" || c.DBName == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
