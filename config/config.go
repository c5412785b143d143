package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	I18n     I18nConfig
	Observ   ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Path string
}

type SessionConfig struct {
	Secret     string
	CookieName string
}

type I18nConfig struct {
	Dir         string
	DefaultLang string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "data/ventas.db"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "1234"),
			CookieName: getEnv("SESSION_COOKIE", "sisventas_session"),
		},
		I18n: I18nConfig{
			Dir:         getEnv("TRANSLATIONS_DIR", "translations"),
			DefaultLang: getEnv("DEFAULT_LANG", "es"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
