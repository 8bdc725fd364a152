package store

import (
	"database/sql"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rmccall/shelftrack-golang/internal/models"
)

// InventoryStore persists inventory records. Every query is bound,
// never string-concatenated; the join against categories happens on
// read paths only.
type InventoryStore struct {
	DB *sql.DB
}

func NewInventoryStore(db *sql.DB) *InventoryStore {
	return &InventoryStore{DB: db}
}

const listColumns = `
	SELECT i.id, i.title, i.description, i.category_id, c.name, i.quantity
	FROM inventory i
	LEFT JOIN categories c ON i.category_id = c.id`

// AddItem inserts an inventory record and returns its id. The title is
// required; a non-positive categoryID means "no category"; a negative
// quantity is clamped to zero rather than rejected.
func (s *InventoryStore) AddItem(title, description string, categoryID int64, quantity int) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return -1, ErrInvalidArgument
	}

	res, err := s.DB.Exec(
		"INSERT INTO inventory (title, description, category_id, quantity) VALUES (?, ?, ?, ?)",
		title, nullableText(description), nullableID(categoryID), clampQuantity(quantity),
	)
	if err != nil {
		logrus.WithError(err).Error("Error adding inventory item")
		return -1, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return -1, err
	}
	return id, nil
}

// UpdateItem rewrites every mutable column of an item. A non-positive
// categoryID explicitly clears the stored reference instead of leaving
// it unchanged.
func (s *InventoryStore) UpdateItem(id int64, title, description string, categoryID int64, quantity int) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, ErrInvalidArgument
	}

	res, err := s.DB.Exec(
		"UPDATE inventory SET title = ?, description = ?, category_id = ?, quantity = ? WHERE id = ?",
		title, nullableText(description), nullableID(categoryID), clampQuantity(quantity), id,
	)
	if err != nil {
		logrus.WithError(err).Error("Error updating inventory item")
		return false, err
	}
	return rowsChanged(res)
}

// UpdateQuantity mutates only the quantity column, clamped to zero.
func (s *InventoryStore) UpdateQuantity(id int64, quantity int) (bool, error) {
	res, err := s.DB.Exec(
		"UPDATE inventory SET quantity = ? WHERE id = ?",
		clampQuantity(quantity), id,
	)
	if err != nil {
		logrus.WithError(err).Error("Error updating quantity")
		return false, err
	}
	return rowsChanged(res)
}

// DeleteItem removes an item, reporting true iff a row went away.
func (s *InventoryStore) DeleteItem(id int64) (bool, error) {
	res, err := s.DB.Exec("DELETE FROM inventory WHERE id = ?", id)
	if err != nil {
		logrus.WithError(err).Error("Error deleting inventory item")
		return false, err
	}
	return rowsChanged(res)
}

// ListAll returns every item joined with its category name, ordered by
// title. Items without (or with a deleted) category surface a NULL
// category name rather than being excluded.
func (s *InventoryStore) ListAll() ([]models.InventoryItem, error) {
	rows, err := s.DB.Query(listColumns + " ORDER BY i.title")
	if err != nil {
		logrus.WithError(err).Error("Error retrieving inventory items")
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListByCategory applies the same join with an equality filter on the
// category reference.
func (s *InventoryStore) ListByCategory(categoryID int64) ([]models.InventoryItem, error) {
	rows, err := s.DB.Query(listColumns+" WHERE i.category_id = ? ORDER BY i.title", categoryID)
	if err != nil {
		logrus.WithError(err).Error("Error retrieving inventory by category")
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// Count returns the number of inventory rows.
func (s *InventoryStore) Count() (int, error) {
	var count int
	if err := s.DB.QueryRow("SELECT COUNT(*) FROM inventory").Scan(&count); err != nil {
		logrus.WithError(err).Error("Error getting inventory count")
		return 0, err
	}
	return count, nil
}

func scanItems(rows *sql.Rows) ([]models.InventoryItem, error) {
	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.CategoryID,
			&item.CategoryName,
			&item.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func rowsChanged(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func clampQuantity(quantity int) int {
	if quantity < 0 {
		return 0
	}
	return quantity
}

// nullableID maps the "no category" sentinel (anything non-positive)
// to SQL NULL.
func nullableID(id int64) sql.NullInt64 {
	if id > 0 {
		return sql.NullInt64{Int64: id, Valid: true}
	}
	return sql.NullInt64{}
}

// nullableText trims and maps empty descriptions to SQL NULL.
func nullableText(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
