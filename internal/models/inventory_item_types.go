package models

import "database/sql"

// InventoryItem is the model for the 'inventory' table. CategoryName is
// not a column; it is populated by the read-path LEFT JOIN against
// categories and stays NULL for items without (or with a deleted)
// category.
type InventoryItem struct {
	ID           int64          `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Description  sql.NullString `json:"description" db:"description"`
	CategoryID   sql.NullInt64  `json:"categoryId" db:"category_id"`
	CategoryName sql.NullString `json:"categoryName"`
	Quantity     int            `json:"quantity" db:"quantity"`
}

// LegacyItem is the simplified three-field shape pre-normalization
// callers still consume. It ignores category and quantity entirely.
type LegacyItem struct {
	ID          int64          `json:"id" db:"id"`
	Title       string         `json:"title" db:"title"`
	Description sql.NullString `json:"description" db:"description"`
}
