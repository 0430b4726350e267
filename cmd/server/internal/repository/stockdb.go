package repository

import (
	"strings"

	"github.com/shubham-shewale/stock-trading/pkg/models"
)

// StockStore is the read-only view the service needs
type StockStore interface {
	List() []models.Stock
	FindByName(name string) (models.Stock, bool)
}

// Compile-time check to ensure StockDB implements StockStore
var _ StockStore = (*StockDB)(nil)

// StockDB is the immutable in-memory catalog. It is built once at startup
// and never written afterwards, so reads need no synchronization.
type StockDB struct {
	stocks []models.Stock
}

// NewStockDB seeds the catalog with the well-known demo rows.
func NewStockDB() *StockDB {
	return &StockDB{
		stocks: []models.Stock{
			{ID: 1, Name: "Tata", Price: 20, Timestamp: "1324"},
			{ID: 2, Name: "Lavish Motors", Price: 50, Timestamp: "5757"},
		},
	}
}

// List returns the full table in seed order. Callers must not mutate it.
func (db *StockDB) List() []models.Stock {
	return db.stocks
}

// FindByName returns the first stock whose name matches, case-insensitively.
func (db *StockDB) FindByName(name string) (models.Stock, bool) {
	for _, s := range db.stocks {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return models.Stock{}, false
}
