package entity

import "time"

// Product representa un producto perecedero del catálogo.
// El stock no se guarda aquí: se deriva del libro de movimientos (ver domain/inventory).
type Product struct {
	ID                int64
	Name              string
	CategoryID        *int64
	UnitOfMeasure     *string // kg, crate, bunch, head
	PerishabilityDays *int32
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
