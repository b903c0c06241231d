package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Load reads the environment into a Config. A .env file is honored when
// present; deployments are expected to inject real values instead.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort: envStr("APP_PORT", "8080"),

		MySQLHost: envStr("MYSQL_HOST", "mysql"),
		MySQLPort: envStr("MYSQL_PORT", "3306"),
		MySQLDB:   envStr("MYSQL_DB", "microloan"),
		MySQLUser: envStr("MYSQL_USER", "microloan"),
		MySQLPass: envStr("MYSQL_PASS", "microloan"),

		RedisAddr: envStr("REDIS_ADDR", "redis:6379"),
		RedisDB:   envInt("REDIS_DB", 0),

		IdempTTLSecs: envInt("IDEMPOTENCY_TTL_SECONDS", 300),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.MySQLHost == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("IDEMPOTENCY_TTL_SECONDS must be positive, got %d", c.IdempTTLSecs)
	}
	return nil
}

// MySQLDSN builds the go-sql-driver DSN. parseTime is required for
// DATETIME columns to scan into time.Time.
func (c *Config) MySQLDSN() string {
	addr := net.JoinHostPort(c.MySQLHost, c.MySQLPort)
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, addr, c.MySQLDB)
}
