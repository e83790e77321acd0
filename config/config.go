package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string
	DBURL      string

	JWTSecret string
	AppURL    string // frontend origin: setup page and login redirects
	APIURL    string // public base of this server: magic-link verification

	TrustedProxies []string // nil trusts no proxy headers

	CORSOrigins []string
	AdminEmails []string

	MailDriver string // "ses" or "log"
	MailFrom   string
	AWSRegion  string

	S3Bucket      string
	S3Region      string
	CloudFrontURL string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads .env when present and builds a Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, os.Getenv in production.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Env:        get("APP_ENV", "production"),
		Port:       get("PORT", "8080"),
		DBDriver:   get("DB_DRIVER", "postgres"),
		DBHost:     get("DB_HOST", "localhost"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD"),
		DBName:     get("DB_NAME", "trimspire"),
		DBPort:     get("DB_PORT", "5432"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),
		DBURL:      get("DATABASE_URL", ""),

		JWTSecret: getenv("JWT_SECRET"),
		AppURL:    strings.TrimRight(get("APP_URL", "http://localhost:3001"), "/"),

		TrustedProxies: splitList(getenv("TRUSTED_PROXIES")),

		CORSOrigins: splitList(get("CORS_ORIGINS", "http://localhost:3000")),
		AdminEmails: splitList(strings.ToLower(getenv("ADMIN_EMAILS"))),

		MailDriver: get("MAIL_DRIVER", "log"),
		MailFrom:   get("MAIL_FROM", `"Trimspire" <noreply@trimspire.com>`),
		AWSRegion:  get("AWS_REGION", "eu-central-1"),

		S3Bucket:      getenv("S3_BUCKET"),
		CloudFrontURL: strings.TrimRight(getenv("CLOUDFRONT_URL"), "/"),
	}
	cfg.S3Region = get("S3_REGION", cfg.AWSRegion)
	cfg.APIURL = strings.TrimRight(get("API_URL", "http://localhost:"+cfg.Port), "/")

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not defined")
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "10")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}

	switch cfg.MailDriver {
	case "ses", "log":
	default:
		return nil, fmt.Errorf("unknown MAIL_DRIVER %q", cfg.MailDriver)
	}
	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// IsDevelopment is true only for an explicit APP_ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range c.AdminEmails {
		if a == email {
			return true
		}
	}
	return false
}

// DSN returns DATABASE_URL when set, otherwise a key/value postgres DSN. For sqlite
// the database name is used as the file path.
func (c *Config) DSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	if c.DBDriver == "sqlite" {
		return c.DBName
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
