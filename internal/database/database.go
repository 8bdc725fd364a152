package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// OpenDB initializes and returns the application's connection pool.
// The database path comes from the SHELFTRACK_DB_PATH environment
// variable, falling back to a file in the working directory.
func OpenDB() (*sql.DB, error) {
	path := os.Getenv("SHELFTRACK_DB_PATH")
	if path == "" {
		path = "shelftrack.db"
	}
	return OpenDBAtPath(path)
}

// OpenDBAtPath creates and configures a connection pool for the SQLite
// database at the given path. The file is created if it does not exist.
// Use ":memory:" for a throwaway in-memory database (tests).
func OpenDBAtPath(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports a single writer at a time; capping the pool at
	// one connection avoids SQLITE_BUSY on interleaved writes and
	// keeps an in-memory database on a single shared connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	logrus.WithField("path", path).Info("Database connection pool established")
	return db, nil
}

// applyPragmas sets the required SQLite configuration. Foreign-key
// enforcement is off by default and the schema relies on it for
// ON DELETE SET NULL.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	return nil
}
