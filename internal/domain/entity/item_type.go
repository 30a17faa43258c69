package entity

// ItemType representa un tipo del catálogo. Es la llave que une un código de barras con el catálogo.
type ItemType struct {
	ID   int64
	Name string
}
