package entity

// Category representa una categoría del catálogo. El nombre no es único; solo el ID lo es.
type Category struct {
	ID   int64
	Name string
}
