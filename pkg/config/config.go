package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server Server
	Mongo  Mongo
	Redis  Redis
	NATS   NATS
	Auth   Auth
	Stripe Stripe
	Email  Email
	Upload Upload
	CORS   CORS
}

type Server struct {
	Port         string
	Env          string // development or production
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func (s Server) IsProduction() bool { return s.Env == "production" }

type Mongo struct {
	URI      string
	Database string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	Enabled  bool
}

type NATS struct {
	URL     string
	DevMode bool // log events instead of publishing
}

type Auth struct {
	JWTSecret  string
	CookieName string
	TokenTTL   time.Duration
}

type Stripe struct {
	SecretKey string
}

type Email struct {
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	SMTPUseTLS    bool
	MailerSendKey string
	FromName      string
	DevMode       bool // print emails to logs instead of sending
}

type Upload struct {
	Dir string
}

type CORS struct {
	Origins []string
}

func Load() *Config {
	return &Config{
		Server: Server{
			Port:         getEnv("PORT", "8000"),
			Env:          getEnv("APP_ENV", "development"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Mongo: Mongo{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "hotelNest"),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
			Enabled:  getBool("REDIS_ENABLED", false),
		},
		NATS: NATS{
			URL:     getEnv("NATS_URL", "nats://localhost:4222"),
			DevMode: getBool("EVENTS_DEV_MODE", true),
		},
		Auth: Auth{
			JWTSecret:  getEnv("ACCESS_TOKEN_SECRET", "dev-only-secret-change-in-prod"),
			CookieName: getEnv("AUTH_COOKIE_NAME", "token"),
			TokenTTL:   getDuration("ACCESS_TOKEN_TTL", 365*24*time.Hour),
		},
		Stripe: Stripe{
			SecretKey: getEnv("STRIPE_SECRET", ""),
		},
		Email: Email{
			SMTPHost:      getEnv("SMTP_HOST", "localhost"),
			SMTPPort:      getInt("SMTP_PORT", 1025),
			SMTPUser:      getEnv("SMTP_USER", ""),
			SMTPPass:      getEnv("SMTP_PASS", ""),
			SMTPFrom:      getEnv("SMTP_FROM", "noreply@stayvista.local"),
			SMTPUseTLS:    getBool("SMTP_USE_TLS", false),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			FromName:      getEnv("MAIL_FROM_NAME", "StayVista"),
			DevMode:       getBool("EMAIL_DEV_MODE", true),
		},
		Upload: Upload{
			Dir: getEnv("UPLOAD_DIR", "./uploads"),
		},
		CORS: CORS{
			Origins: getList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:5174"}),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
