package entity

import "time"

// Customer representa un cliente (hotel, restaurante).
type Customer struct {
	ID            int64
	BusinessName  string
	CustomerType  *string
	ContactPerson *string
	Phone         *string
	Location      *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
