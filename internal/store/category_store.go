package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/rmccall/shelftrack-golang/internal/models"
)

// CategoryStore owns the reference table of named categories.
type CategoryStore struct {
	DB *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{DB: db}
}

// Add inserts a category and returns its id, or -1 with an error. A
// blank name is ErrInvalidArgument; a name collision is ErrDuplicate.
func (s *CategoryStore) Add(name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, ErrInvalidArgument
	}

	res, err := s.DB.Exec("INSERT INTO categories (name) VALUES (?)", name)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return -1, ErrDuplicate
		}
		logrus.WithError(err).Error("Error adding category")
		return -1, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return -1, err
	}
	return id, nil
}

// List returns all categories ordered by name ascending. No categories
// is an empty slice, not an error.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.DB.Query("SELECT id, name FROM categories ORDER BY name ASC")
	if err != nil {
		logrus.WithError(err).Error("Error retrieving categories")
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// Delete removes a category by id, reporting true iff a row went away.
// Referencing inventory rows get their category_id nulled by the
// schema's foreign-key action, not deleted.
func (s *CategoryStore) Delete(id int64) (bool, error) {
	res, err := s.DB.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		logrus.WithError(err).Error("Error deleting category")
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IDByName resolves a category name to its id for legacy name-based
// callers. Returns -1 when the name is blank, unknown, or the lookup
// fails.
func (s *CategoryStore) IDByName(name string) int64 {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1
	}

	var id int64
	err := s.DB.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logrus.WithError(err).Error("Error getting category ID")
		}
		return -1
	}
	return id
}
