package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config хранит всю конфигурацию сервиса. Заполняется один раз при старте
// и дальше только читается — никаких глобальных мутабельных переменных.
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Name string
	Port string
}

type MongoConfig struct {
	ConnString string
	Database   string
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
}

// New loads the configuration from the environment. A .env file next to the
// binary is read first if present, real environment variables win.
func New() (*Config, error) {
	// .env опционален: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "shop-backend"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Mongo: MongoConfig{
			ConnString: os.Getenv("MONGODB_CONN_STRING"),
			Database:   os.Getenv("DB"),
		},
		JWT: JWTConfig{
			AccessSecret:  os.Getenv("JWT_SECRET_KEY"),
			RefreshSecret: os.Getenv("JWT_REFRESH_SECRET_KEY"),
		},
	}

	if cfg.Mongo.ConnString == "" || cfg.Mongo.Database == "" {
		return nil, fmt.Errorf("config: MONGODB_CONN_STRING and DB must be set")
	}

	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET_KEY and JWT_REFRESH_SECRET_KEY must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
