package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	CORSOrigins []string
}

// LoadEnv reads configuration from the environment, with .env support
// for local development.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr: envOrDefault("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:  envOrDefault("DB_USER", "root"),
		DBPass:  strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:  envOrDefault("DB_HOST", "127.0.0.1:3306"),
		DBName:  envOrDefault("DB_NAME", "bus_booking"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	} else {
		env.CORSOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return env
}

func envOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
