package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name     string  `json:"supplier_name" validate:"required,max=200"`
	Type     *string `json:"supplier_type" validate:"omitempty,max=500"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Location *string `json:"location" validate:"omitempty,max=200"`
	IsActive *bool   `json:"is_active"`
}

// UpdateSupplierRequest actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name     *string `json:"supplier_name" validate:"omitempty,max=200"`
	Type     *string `json:"supplier_type" validate:"omitempty,max=500"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Location *string `json:"location" validate:"omitempty,max=200"`
	IsActive *bool   `json:"is_active"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        int64      `json:"supplier_id"`
	Name      string     `json:"supplier_name"`
	Type      *string    `json:"supplier_type"`
	Phone     *string    `json:"phone"`
	Location  *string    `json:"location"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	BusinessName  string  `json:"business_name" validate:"required,max=200"`
	CustomerType  *string `json:"customer_type" validate:"omitempty,max=50"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	Location      *string `json:"location" validate:"omitempty,max=200"`
	IsActive      *bool   `json:"is_active"`
}

// UpdateCustomerRequest actualización parcial de un cliente.
type UpdateCustomerRequest struct {
	BusinessName  *string `json:"business_name" validate:"omitempty,max=200"`
	CustomerType  *string `json:"customer_type" validate:"omitempty,max=50"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=100"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	Location      *string `json:"location" validate:"omitempty,max=200"`
	IsActive      *bool   `json:"is_active"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID            int64      `json:"customer_id"`
	BusinessName  string     `json:"business_name"`
	CustomerType  *string    `json:"customer_type"`
	ContactPerson *string    `json:"contact_person"`
	Phone         *string    `json:"phone"`
	Location      *string    `json:"location"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// CreateStaffRequest entrada para dar de alta personal.
type CreateStaffRequest struct {
	FullName string  `json:"full_name" validate:"required,max=100"`
	Role     *string `json:"role" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	IsActive *bool   `json:"is_active"`
}

// UpdateStaffRequest actualización parcial de personal.
type UpdateStaffRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Role     *string `json:"role" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	IsActive *bool   `json:"is_active"`
}

// StaffResponse salida de un miembro del personal.
type StaffResponse struct {
	ID        int64      `json:"staff_id"`
	FullName  string     `json:"full_name"`
	Role      *string    `json:"role"`
	Phone     *string    `json:"phone"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
