package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=1,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateTypeRequest entrada para crear un tipo. El nombre no se valida (puede ser vacío).
type CreateTypeRequest struct {
	Name string `json:"name" form:"name"`
}

// TypeResponse salida de un tipo.
type TypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateProductRequest entrada para crear un producto. Perishable es false si se omite.
type CreateProductRequest struct {
	CategoryID int64  `json:"category_id" form:"category" validate:"required"`
	TypeID     int64  `json:"type_id" form:"type" validate:"required"`
	Name       string `json:"name" form:"name" validate:"required,min=1,max=100"`
	Perishable bool   `json:"perishable" form:"perishable"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	TypeID     int64  `json:"type_id"`
	Name       string `json:"name"`
	Perishable bool   `json:"perishable"`
}

// CategoryListResponse lista de categorías en orden de creación.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// TypeListResponse lista de tipos en orden de creación.
type TypeListResponse struct {
	Items []TypeResponse `json:"items"`
}

// ProductListResponse lista de productos en orden de creación.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
