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

	// Accurate.id credentials; the OAuth exchange happens out of band and
	// hands us a bearer token plus an open-database session id.
	AccurateBaseURL     string
	AccurateAccessToken string
	AccurateSessionID   string

	// Fixed GL accounts. Posting and balance lookups must agree on the
	// receivables account.
	ReceivableAccountNo string
	CashAccountNo       string

	SessionTTLSecs int
	IdempTTLSecs   int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	// .env is a dev convenience; absence is not an error
	_ = godotenv.Load()

	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "koperasi"),
		MySQLUser: getenv("MYSQL_USER", "koperasi"),
		MySQLPass: getenv("MYSQL_PASS", "koperasi"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),

		AccurateBaseURL:     getenv("ACCURATE_BASE_URL", "https://zeus.accurate.id"),
		AccurateAccessToken: os.Getenv("ACCURATE_ACCESS_TOKEN"),
		AccurateSessionID:   os.Getenv("ACCURATE_SESSION_ID"),

		ReceivableAccountNo: getenv("RECEIVABLE_ACCOUNT_NO", "110303"),
		CashAccountNo:       getenv("CASH_ACCOUNT_NO", "123456789"),

		SessionTTLSecs: 86400,
		IdempTTLSecs:   300,
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("SESSION_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SessionTTLSecs = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.ReceivableAccountNo == "" || c.CashAccountNo == "" {
		return errors.New("missing GL account config (RECEIVABLE_ACCOUNT_NO/CASH_ACCOUNT_NO)")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
