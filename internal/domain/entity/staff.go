package entity

import "time"

// Staff representa un miembro del personal que registra movimientos, pedidos o entregas.
type Staff struct {
	ID        int64
	FullName  string
	Role      *string // chef, admin, logistics, procurement, stores
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
