// Package postgres opens the optional PostgreSQL database that receives the
// order event journal.
//
// The journal is an export: the ledger writes every change to it through a
// listener and never reads it back. Orders therefore do not survive a
// restart even when the journal is enabled.
//
// Usage:
//
//	db, err := postgres.Open(postgres.Config{
//	    Host: "localhost", Port: "5432", User: "canteen",
//	    Password: "secret", Name: "canteen", SSLMode: "disable",
//	})
//	if err != nil {
//	    return err
//	}
//	journal := journalrepo.NewGormOrderEventJournal(db, "order_events", clock.NewSystem())
//	if err := journal.Migrate(ctx); err != nil {
//	    return err
//	}
package postgres

import (
	"fmt"
	"net"
	"net/url"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds connection settings for the journal database.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns a postgres URL for the configuration.
// The password is URL-escaped; an empty SSLMode defaults to "disable".
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}

// Open connects to the database with GORM's logger silenced; the
// application logs journal failures itself.
func Open(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}
	return db, nil
}
