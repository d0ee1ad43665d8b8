package datastore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"todo-api-backend/config"
	"todo-api-backend/ent"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const defaultMaxConns = 20

// NewDSN builds the data source name of the configured database.
func NewDSN() string {
	db := config.C.Database
	switch db.Dialect {
	case dialect.MySQL:
		return newMySQLDSN()
	case dialect.SQLite:
		return db.File
	default:
		return "postgres://" + db.User + ":" + db.Password + "@" + db.Addr + ":" + db.Port + "/" + db.DBName + "?sslmode=disable"
	}
}

func newMySQLDSN() string {
	db := config.C.Database

	c := mysql.NewConfig()
	c.User = db.User
	c.Passwd = db.Password
	c.Net = db.Net
	c.Addr = db.Addr + ":" + db.Port
	c.DBName = db.DBName
	c.AllowNativePasswords = db.AllowNativePasswords
	// Report matched rows so an update that changes nothing is not mistaken for a missing row.
	c.ClientFoundRows = true
	c.TLSConfig = db.Params.TLS
	if parseTime, err := strconv.ParseBool(db.Params.ParseTime); err == nil {
		c.ParseTime = parseTime
	}
	if db.Params.Loc != "" {
		if loc, err := time.LoadLocation(db.Params.Loc); err == nil {
			c.Loc = loc
		}
	}
	if db.Params.Charset != "" {
		c.Params = map[string]string{"charset": db.Params.Charset}
	}
	return c.FormatDSN()
}

// NewClient creates a new ent client for the configured dialect and DSN.
func NewClient() (*ent.Client, error) {
	return NewClientWithDSN(config.C.Database.Dialect, NewDSN())
}

// NewClientWithDSN opens a client for dialectName. PostgreSQL goes through a
// pgx connection pool, MySQL and SQLite through database/sql.
func NewClientWithDSN(dialectName, dsn string) (*ent.Client, error) {
	drv, err := newDriver(dialectName, dsn)
	if err != nil {
		return nil, err
	}

	opts := []ent.Option{ent.Driver(drv)}
	if config.C.Database.Debug {
		opts = append(opts, ent.Debug(), ent.Log(zap.S().Debug))
	}
	return ent.NewClient(opts...), nil
}

func newDriver(dialectName, dsn string) (*sql.Driver, error) {
	switch dialectName {
	case dialect.Postgres, "":
		return newPostgresDriver(dsn)
	case dialect.MySQL, dialect.SQLite:
		drv, err := sql.Open(dialectName, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s connection: %w", dialectName, err)
		}
		return drv, nil
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", dialectName)
	}
}

// Create a new ent driver using pgxpool
func newPostgresDriver(dsn string) (*sql.Driver, error) {
	// Create pgx connection pool
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to create pool config: %w", err)
	}
	poolConfig.MaxConns = defaultMaxConns
	if config.C.Database.MaxConns > 0 {
		poolConfig.MaxConns = config.C.Database.MaxConns
	}
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Minute * 2
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	// Use stdlib to wrap pgxpool in database/sql compatibility
	sqlDB := stdlib.OpenDBFromPool(pool)

	// Wrap the sql.DB with Ent's SQL driver
	return sql.OpenDB(dialect.Postgres, sqlDB), nil
}
