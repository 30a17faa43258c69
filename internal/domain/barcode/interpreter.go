// Package barcode interpreta el texto ya decodificado de un código de barras como referencia al catálogo.
// La decodificación de la imagen es externa; aquí solo se extrae el segmento que identifica el tipo.
package barcode

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeReference segmento del payload usado tal cual como identificador de tipo.
type TypeReference string

// ID interpreta la referencia como identificador numérico de tipo.
func (r TypeReference) ID() (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(string(r)), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SegmentExtractor obtiene la referencia de tipo de un payload. ok=false si el payload no tiene el segmento.
type SegmentExtractor func(payload string) (ref TypeReference, ok bool)

// CharAt usa el carácter en la posición index (en runas) como referencia.
func CharAt(index int) SegmentExtractor {
	return func(payload string) (TypeReference, bool) {
		runes := []rune(payload)
		if index < 0 || index >= len(runes) {
			return "", false
		}
		return TypeReference(string(runes[index])), true
	}
}

// Delimited divide el payload por sep y usa el campo en la posición index.
func Delimited(sep string, index int) SegmentExtractor {
	return func(payload string) (TypeReference, bool) {
		if sep == "" {
			return "", false
		}
		parts := strings.Split(payload, sep)
		if index < 0 || index >= len(parts) || parts[index] == "" {
			return "", false
		}
		return TypeReference(parts[index]), true
	}
}

// Modos de extracción admitidos por configuración.
const (
	ModeChar      = "char"
	ModeDelimited = "delimited"
)

// NewExtractor construye el extractor según el modo configurado.
func NewExtractor(mode string, index int, sep string) (SegmentExtractor, error) {
	switch mode {
	case ModeChar, "":
		return CharAt(index), nil
	case ModeDelimited:
		if sep == "" {
			return nil, fmt.Errorf("barcode: separador vacío para modo %q", ModeDelimited)
		}
		return Delimited(sep, index), nil
	default:
		return nil, fmt.Errorf("barcode: modo de segmento desconocido %q", mode)
	}
}

// Interpreter convierte payloads en referencias de tipo.
type Interpreter struct {
	extract SegmentExtractor
}

// NewInterpreter construye el intérprete; sin extractor usa CharAt(1).
func NewInterpreter(extract SegmentExtractor) *Interpreter {
	if extract == nil {
		extract = CharAt(1)
	}
	return &Interpreter{extract: extract}
}

// Recognized indica si hay payload utilizable (no nil y no vacío).
func Recognized(payload *string) bool {
	return payload != nil && *payload != ""
}

// Interpret devuelve la referencia de tipo. ok=false si no hay payload o no tiene el segmento.
func (i *Interpreter) Interpret(payload *string) (TypeReference, bool) {
	if !Recognized(payload) {
		return "", false
	}
	return i.extract(*payload)
}
