package entity

import "time"

// Supplier representa un proveedor (agricultor o acopiador).
type Supplier struct {
	ID        int64
	Name      string
	Type      *string // farmer, aggregator
	Phone     *string
	Location  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
