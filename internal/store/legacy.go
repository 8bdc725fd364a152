package store

import "github.com/rmccall/shelftrack-golang/internal/models"

// Legacy three-field adapters over the normalized store. Callers that
// predate the categories table keep working unmodified; category and
// quantity are ignored.

// AddData inserts an item with no category and zero quantity.
func (s *InventoryStore) AddData(title, description string) error {
	_, err := s.AddItem(title, description, -1, 0)
	return err
}

// AllData returns every item in the simplified shape, in insertion
// order (no join, no title ordering).
func (s *InventoryStore) AllData() ([]models.LegacyItem, error) {
	rows, err := s.DB.Query("SELECT id, title, description FROM inventory")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.LegacyItem{}
	for rows.Next() {
		var item models.LegacyItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteData removes an item by id.
func (s *InventoryStore) DeleteData(id int64) error {
	_, err := s.DeleteItem(id)
	return err
}
