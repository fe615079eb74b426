package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewDB opens a pooled connection for one of the supported drivers and
// verifies it with a ping.
func NewDB(ctx context.Context, driver, dsn string, pool PoolConfig) (*sqlx.DB, error) {
	if _, ok := dialects[driver]; !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// a single connection keeps :memory: databases shared and serialises writers
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(pool.MaxOpenConns)
		db.SetMaxIdleConns(pool.MaxIdleConns)
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

type dialect struct {
	// returning is true when INSERT ... RETURNING id is used instead of LastInsertId.
	returning  bool
	lockClause string
	schema     []string
}

var dialects = map[string]dialect{
	DriverPostgres: {returning: true, lockClause: " FOR UPDATE", schema: postgresSchema},
	DriverMySQL:    {lockClause: " FOR UPDATE", schema: mysqlSchema},
	DriverSQLite:   {schema: sqliteSchema},
}

func dialectOf(db *sqlx.DB) dialect {
	if d, ok := dialects[db.DriverName()]; ok {
		return d
	}
	return dialects[DriverPostgres]
}

// EnsureSchema creates the todos, labels and todo_labels tables if missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range dialectOf(db).schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// withTx runs fn inside a transaction, committing on success and rolling back
// on any error.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return unexpected("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return unexpected("failed to commit transaction", err)
	}
	return nil
}

// insertID runs an INSERT and returns the generated id, using RETURNING or
// LastInsertId depending on the dialect.
func insertID(ctx context.Context, tx *sqlx.Tx, d dialect, query string, args ...any) (int64, error) {
	query = tx.Rebind(query)
	if d.returning {
		var id int64
		if err := tx.QueryRowxContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
