package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Env      string `envconfig:"ENV" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// DB: postgres://... or sqlite://path (sqlite://:memory: works too)
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:"sqlite://minimal-api.db"`
	PageSize    int    `envconfig:"PAGE_SIZE" default:"10"`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`

	// Seeded on boot when missing
	SeedAdminEmail    string `envconfig:"SEED_ADMIN_EMAIL" default:"administrador@teste.com"`
	SeedAdminPassword string `envconfig:"SEED_ADMIN_PASSWORD" default:"123456"`

	// Optional collaborators; empty disables them
	RedisURL       string `envconfig:"REDIS_URL"`
	RabbitURL      string `envconfig:"RABBIT_URL"`
	EventsExchange string `envconfig:"EVENTS_EXCHANGE" default:"minimalapi.events"`
	OTLPEndpoint   string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Login throttling per client IP
	LoginRPS   float64 `envconfig:"LOGIN_RPS" default:"5"`
	LoginBurst int     `envconfig:"LOGIN_BURST" default:"10"`
}

func (a App) JWTTTL() time.Duration {
	return time.Duration(a.JWTExpireMin) * time.Minute
}

// Load reads .env (if present) and then the process environment.
func Load() (App, error) {
	_ = godotenv.Load(".env")
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
