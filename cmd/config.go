package cmd

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"strconv"

	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/journalrepo"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/jobs"
	"canteen/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPHost = "127.0.0.1"
	DefaultHTTPPort = "8080"
)

type Config struct {
	HTTPHost       string
	HTTPPort       string
	TokenStart     kernel.Token
	ReportSchedule string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	JournalTable   string
}

// LoadConfig reads the configuration from the environment. Variables found
// in the given dotenv files are added first, without overriding variables
// that are already set; missing files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	tokenStart, err := parseTokenStart(os.Getenv("TOKEN_START"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPHost:       envOrDefault("HTTP_HOST", DefaultHTTPHost),
		HTTPPort:       envOrDefault("HTTP_PORT", DefaultHTTPPort),
		TokenStart:     tokenStart,
		ReportSchedule: envOrDefault("REPORT_SCHEDULE", jobs.DefaultReportSchedule),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		JournalTable:   envOrDefault("JOURNAL_TABLE", journalrepo.DefaultTableName),
	}, nil
}

// Addr is the listen address of the HTTP surface.
func (c Config) Addr() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

// JournalEnabled reports whether order events are exported to PostgreSQL.
func (c Config) JournalEnabled() bool {
	return c.DBHost != ""
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func parseTokenStart(raw string) (kernel.Token, error) {
	if raw == "" {
		return kernel.MinToken, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("TOKEN_START", err)
	}

	if value < int64(kernel.MinToken) || value > int64(kernel.MaxTokenStart) {
		return 0, errs.NewValueIsOutOfRangeError("TOKEN_START", value, int64(kernel.MinToken), int64(kernel.MaxTokenStart))
	}
	return kernel.Token(value), nil
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
