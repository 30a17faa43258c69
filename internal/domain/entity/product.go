package entity

// Product representa un producto del catálogo. CategoryID y TypeID deben existir al momento de escribir.
// Varios productos pueden compartir TypeID; en una clasificación responde el de menor ID.
type Product struct {
	ID         int64
	CategoryID int64
	TypeID     int64
	Name       string
	Perishable bool
}
