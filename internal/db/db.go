package db

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/addresses/cities/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const (
	DuplicateEntry  = 1062
	UniqueViolation = "23505"

	driverMySQL    = "mysql"
	driverPostgres = "pgx"
)

// New opens a pooled connection for the given storage driver (mysql or postgres).
func New(driver string, cfg config.Database) (*sqlx.DB, error) {
	var (
		name string
		dsn  string
		err  error
	)

	switch driver {
	case config.StorageMySQL:
		name = driverMySQL
		dsn, err = mysqlDSN(cfg)
	case config.StoragePostgres:
		name = driverPostgres
		dsn = postgresDSN(cfg)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	dbConn, err := sqlx.Connect(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)

	if err := dbConn.Ping(); err != nil {
		return nil, err
	}

	return dbConn, nil
}

func mysqlDSN(cfg config.Database) (string, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return "", fmt.Errorf("time load location failed: %w", err)
	}
	conf := mysql.NewConfig()
	conf.Net = cfg.Net
	conf.Addr = cfg.Server
	conf.User = cfg.User
	conf.Passwd = cfg.Password
	conf.DBName = cfg.DBName
	conf.Timeout = cfg.Timeout
	conf.Loc = location
	conf.ParseTime = true

	return conf.FormatDSN(), nil
}

func postgresDSN(cfg config.Database) string {
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	q.Set("connect_timeout", fmt.Sprintf("%d", int(cfg.Timeout.Seconds())))
	if cfg.TimeZone != "" {
		q.Set("timezone", cfg.TimeZone)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Server,
		Path:     "/" + cfg.DBName,
		RawQuery: q.Encode(),
	}

	return u.String()
}

// IsDuplicate reports whether err is a unique key violation from either driver.
func IsDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == DuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == UniqueViolation
	}

	return false
}
