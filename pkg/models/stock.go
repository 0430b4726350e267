package models

// Stock is a single row of the in-memory stock catalog
type Stock struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`     // catalog price in whole units
	Timestamp string `json:"timestamp"` // opaque, stored verbatim
}
