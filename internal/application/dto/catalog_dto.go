package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"category_name" validate:"required,max=100"`
}

// UpdateCategoryRequest renombra una categoría.
type UpdateCategoryRequest struct {
	Name *string `json:"category_name" validate:"omitempty,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        int64     `json:"category_id"`
	Name      string    `json:"category_name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductRequest entrada para crear un producto. El stock no se informa aquí.
type CreateProductRequest struct {
	Name              string  `json:"product_name" validate:"required,max=200"`
	CategoryID        *int64  `json:"category_id"`
	UnitOfMeasure     *string `json:"unit_of_measure" validate:"omitempty,max=20"`
	PerishabilityDays *int32  `json:"perishability_days" validate:"omitempty,gte=0"`
	IsActive          *bool   `json:"is_active"`
}

// UpdateProductRequest actualización parcial: solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Name              *string `json:"product_name" validate:"omitempty,max=200"`
	CategoryID        *int64  `json:"category_id"`
	UnitOfMeasure     *string `json:"unit_of_measure" validate:"omitempty,max=20"`
	PerishabilityDays *int32  `json:"perishability_days" validate:"omitempty,gte=0"`
	IsActive          *bool   `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                int64      `json:"product_id"`
	Name              string     `json:"product_name"`
	CategoryID        *int64     `json:"category_id"`
	UnitOfMeasure     *string    `json:"unit_of_measure"`
	PerishabilityDays *int32     `json:"perishability_days"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
}
