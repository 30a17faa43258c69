// Package placement decide la ubicación recomendada en bodega a partir de tres medidas.
package placement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clasificador-api/internal/domain"
)

// Bucket clase de ubicación recomendada.
type Bucket string

const (
	None   Bucket = "" // no calculada (código no reconocido)
	Shelf  Bucket = "shelf"
	Pallet Bucket = "pallet"
	Floor  Bucket = "floor"
)

// Límites inclusivos, en la misma unidad que las dimensiones.
var (
	ShelfLimit  = decimal.NewFromInt(50)
	PalletLimit = decimal.NewFromInt(100)
)

// Dimensions largo, ancho y alto en una única unidad definida por quien llama.
type Dimensions struct {
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
}

// NewDimensions construye Dimensions desde float64 (útil en tests y adaptadores).
func NewDimensions(length, width, height float64) Dimensions {
	return Dimensions{
		Length: decimal.NewFromFloat(length),
		Width:  decimal.NewFromFloat(width),
		Height: decimal.NewFromFloat(height),
	}
}

// ParseDimensions interpreta tres textos decimales (por ejemplo campos de formulario).
func ParseDimensions(length, width, height string) (Dimensions, error) {
	var d Dimensions
	var err error
	if d.Length, err = decimal.NewFromString(length); err != nil {
		return Dimensions{}, fmt.Errorf("%w: length %q", domain.ErrInvalidInput, length)
	}
	if d.Width, err = decimal.NewFromString(width); err != nil {
		return Dimensions{}, fmt.Errorf("%w: width %q", domain.ErrInvalidInput, width)
	}
	if d.Height, err = decimal.NewFromString(height); err != nil {
		return Dimensions{}, fmt.Errorf("%w: height %q", domain.ErrInvalidInput, height)
	}
	return d, nil
}

// Validate exige dimensiones estrictamente positivas. Classify no la invoca.
func (d Dimensions) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{{"length", d.Length}, {"width", d.Width}, {"height", d.Height}}
	for _, f := range fields {
		if !f.value.IsPositive() {
			return fmt.Errorf("%w: %s debe ser mayor que cero", domain.ErrInvalidInput, f.name)
		}
	}
	return nil
}

func (d Dimensions) allWithin(limit decimal.Decimal) bool {
	return d.Length.LessThanOrEqual(limit) &&
		d.Width.LessThanOrEqual(limit) &&
		d.Height.LessThanOrEqual(limit)
}

// Classify asigna la ubicación; la primera regla que cumple gana.
// Valores cero o negativos no se rechazan: caen en las mismas comparaciones.
func Classify(d Dimensions) Bucket {
	switch {
	case d.allWithin(ShelfLimit):
		return Shelf
	case d.allWithin(PalletLimit):
		return Pallet
	default:
		return Floor
	}
}
