package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClassifyRequest entrada para clasificar un payload ya decodificado.
// Payload nulo o vacío equivale a "código no reconocido". Las tres dimensiones son obligatorias.
type ClassifyRequest struct {
	Payload *string          `json:"payload"`
	Length  *decimal.Decimal `json:"length" validate:"required"`
	Width   *decimal.Decimal `json:"width" validate:"required"`
	Height  *decimal.Decimal `json:"height" validate:"required"`
}

// ClassificationResponse resultado de una clasificación. Placement vacío si el código no fue reconocido.
type ClassificationResponse struct {
	TypeName   string `json:"type_name"`
	Perishable bool   `json:"perishable"`
	Placement  string `json:"placement"`
	Recognized bool   `json:"recognized"`
	Matched    bool   `json:"matched"`
}

// ScanResponse salida de un registro del historial.
type ScanResponse struct {
	ID         string          `json:"id"`
	Payload    *string         `json:"payload"`
	TypeName   string          `json:"type_name"`
	Perishable bool            `json:"perishable"`
	Placement  string          `json:"placement"`
	Length     decimal.Decimal `json:"length"`
	Width      decimal.Decimal `json:"width"`
	Height     decimal.Decimal `json:"height"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ScanListResponse lista paginada del historial.
type ScanListResponse struct {
	Items []ScanResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
