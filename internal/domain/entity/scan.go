package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scan registro histórico de una clasificación (payload del código, resultado y dimensiones).
type Scan struct {
	ID         string
	Payload    *string // nil si el código no fue reconocido
	TypeName   string
	Perishable bool
	Placement  string
	Length     decimal.Decimal
	Width      decimal.Decimal
	Height     decimal.Decimal
	CreatedAt  time.Time
}
