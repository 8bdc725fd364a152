package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// SchemaConfig carries the schema identity and version explicitly, so
// callers (and tests) construct managers against different versions
// instead of sharing package-level state.
type SchemaConfig struct {
	Name    string
	Version int
}

// DefaultSchema is the configuration the application ships with.
var DefaultSchema = SchemaConfig{Name: "shelftrack", Version: 2}

// SchemaManager creates and migrates the three-table schema: users,
// categories, and inventory, with a set-null foreign key from inventory
// to categories.
type SchemaManager struct {
	db  *sql.DB
	cfg SchemaConfig
}

func NewSchemaManager(db *sql.DB, cfg SchemaConfig) *SchemaManager {
	return &SchemaManager{db: db, cfg: cfg}
}

// Initialize guarantees the schema exists at the configured version.
// A fresh database gets the tables created and the version stamped; a
// database stamped with a different version is migrated first. Any
// failure here is non-recoverable for the rest of the application and
// is returned for the caller to treat as fatal.
func (m *SchemaManager) Initialize() error {
	stored, err := m.storedVersion()
	if err != nil {
		return err
	}

	if stored != 0 && stored != m.cfg.Version {
		if err := m.Migrate(stored, m.cfg.Version); err != nil {
			return err
		}
		return nil
	}

	if err := m.createTables(); err != nil {
		return fmt.Errorf("create schema %q: %w", m.cfg.Name, err)
	}
	if err := m.stampVersion(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"schema":  m.cfg.Name,
		"version": m.cfg.Version,
	}).Info("Database schema ready")
	return nil
}

// Migrate moves the schema from oldVersion to newVersion. There is no
// incremental ALTER path: all tables are dropped and recreated, which
// discards existing rows.
func (m *SchemaManager) Migrate(oldVersion, newVersion int) error {
	logrus.WithFields(logrus.Fields{
		"schema": m.cfg.Name,
		"from":   oldVersion,
		"to":     newVersion,
	}).Warn("Migrating database schema (destructive)")

	drops := []string{
		"DROP TABLE IF EXISTS inventory",
		"DROP TABLE IF EXISTS categories",
		"DROP TABLE IF EXISTS users",
	}
	for _, stmt := range drops {
		if _, err := m.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate schema %q: %w", m.cfg.Name, err)
		}
	}

	if err := m.createTables(); err != nil {
		return fmt.Errorf("migrate schema %q: %w", m.cfg.Name, err)
	}
	return m.stampVersion()
}

func (m *SchemaManager) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			category_id INTEGER,
			quantity INTEGER DEFAULT 0,
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_inventory_category ON inventory(category_id)`,
	}

	for _, stmt := range stmts {
		if _, err := m.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (m *SchemaManager) storedVersion() (int, error) {
	var version int
	if err := m.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return version, nil
}

func (m *SchemaManager) stampVersion() error {
	// PRAGMA does not accept bound parameters.
	if _, err := m.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.cfg.Version)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}
