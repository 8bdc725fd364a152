// Package display holds the in-memory display layer: an ordered item
// sequence for positional rendering synchronized with an id-keyed map
// for O(1) point lookup. It mirrors the persistent store as of the
// last rebuild and is never persisted itself.
package display

import "github.com/rmccall/shelftrack-golang/internal/models"

// Index keeps the two containers coherent by allowing only wholesale
// rebuilds: there is no incremental insert path, so after any store
// mutation the owner rebuilds from a fresh full read.
type Index struct {
	items []models.InventoryItem
	byID  map[int64]models.InventoryItem
}

func NewIndex() *Index {
	return &Index{byID: make(map[int64]models.InventoryItem)}
}

// Rebuild clears and repopulates both containers from a full snapshot.
func (x *Index) Rebuild(source []models.InventoryItem) {
	x.items = x.items[:0]
	x.items = append(x.items, source...)

	clear(x.byID)
	for _, item := range x.items {
		x.byID[item.ID] = item
	}
}

// Lookup returns the record for id in O(1).
func (x *Index) Lookup(id int64) (models.InventoryItem, bool) {
	item, ok := x.byID[id]
	return item, ok
}

// Remove drops an id from the map only. It is an opportunistic local
// removal ahead of a persisted delete; the ordered sequence is not
// touched, so a Rebuild is still required afterwards.
func (x *Index) Remove(id int64) {
	delete(x.byID, id)
}

// Items returns the ordered sequence. Callers sort it in place via
// SortByTitle; the map is keyed by id and unaffected by reordering.
func (x *Index) Items() []models.InventoryItem {
	return x.items
}

func (x *Index) Len() int {
	return len(x.items)
}
