package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLStore exposes the tables of a MySQL schema.  A zero MySQLStore has
// no handle and reports itself unavailable.
type MySQLStore struct {
	DB *sql.DB
}

// OpenMySQL connects to MySQL and verifies the connection.  raw is either a
// mysql:// URL or a go-sql-driver DSN; a non-empty name overrides the
// schema named in raw.
func OpenMySQL(ctx context.Context, raw, name string) (*MySQLStore, error) {
	dsn, err := mysqlDSN(raw, name)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// only the diagnostic endpoint uses this pool
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &MySQLStore{DB: db}, nil
}

func (s *MySQLStore) IsAvailable() bool { return s != nil && s.DB != nil }

// ListCollections returns the table names of the current schema.
func (s *MySQLStore) ListCollections(ctx context.Context) ([]string, error) {
	if !s.IsAvailable() {
		return nil, ErrNotInitialized
	}
	rows, err := s.DB.QueryContext(ctx, "SHOW TABLES")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (s *MySQLStore) Close(context.Context) error {
	if !s.IsAvailable() {
		return nil
	}
	return s.DB.Close()
}

// mysqlDSN turns raw into a driver DSN with parseTime and UTC set.
func mysqlDSN(raw, name string) (string, error) {
	var cfg *mysql.Config
	if strings.HasPrefix(strings.ToLower(raw), "mysql://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("parse mysql url: %w", err)
		}
		cfg = mysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = u.Host
		if cfg.Addr == "" {
			cfg.Addr = "127.0.0.1:3306"
		} else if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
			cfg.Addr = net.JoinHostPort(cfg.Addr, "3306")
		}
		if u.User != nil {
			cfg.User = u.User.Username()
			cfg.Passwd, _ = u.User.Password()
		}
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
	} else {
		var err error
		if cfg, err = mysql.ParseDSN(raw); err != nil {
			return "", fmt.Errorf("parse mysql dsn: %w", err)
		}
	}
	if name != "" {
		cfg.DBName = name
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}
