package entity

import "time"

// ProductCategory agrupa productos (verduras, frutas, lácteos...). El nombre es único.
type ProductCategory struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
