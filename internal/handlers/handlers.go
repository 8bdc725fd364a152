package handlers

import (
	"database/sql"

	"github.com/rmccall/shelftrack-golang/internal/display"
	"github.com/rmccall/shelftrack-golang/internal/store"
)

// Handlers struct holds all dependencies for our handlers. The display
// index belongs to this session and is rebuilt from a fresh full read
// after every mutating operation.
type Handlers struct {
	DB         *sql.DB
	Users      *store.UserStore
	Categories *store.CategoryStore
	Inventory  *store.InventoryStore
	Display    *display.Index
}

// New wires the stores and a fresh display index over one connection
// pool.
func New(db *sql.DB) *Handlers {
	return &Handlers{
		DB:         db,
		Users:      store.NewUserStore(db),
		Categories: store.NewCategoryStore(db),
		Inventory:  store.NewInventoryStore(db),
		Display:    display.NewIndex(),
	}
}

// refreshDisplay reloads the display index from the store. Called after
// every mutation so lookups and the ordered sequence stay a faithful
// mirror; a read failure leaves the previous snapshot in place.
func (h *Handlers) refreshDisplay() error {
	items, err := h.Inventory.ListAll()
	if err != nil {
		return err
	}
	h.Display.Rebuild(items)
	return nil
}
