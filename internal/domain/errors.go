package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrValidation falta un campo obligatorio en una escritura; no se escribe nada.
	ErrValidation = errors.New("validación fallida")
	// ErrReferential la escritura referencia una categoría o tipo inexistente; no quedan filas huérfanas.
	ErrReferential = errors.New("referencia inexistente")
)
