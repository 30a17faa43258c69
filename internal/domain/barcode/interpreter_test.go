package barcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clasificador-api/internal/domain/barcode"
)

func ptr(s string) *string { return &s }

func TestCharAt(t *testing.T) {
	ref, ok := barcode.CharAt(1)("4750123")
	require.True(t, ok)
	assert.Equal(t, barcode.TypeReference("7"), ref)

	ref, ok = barcode.CharAt(1)("Ж3Ф")
	require.True(t, ok, "cuenta runas, no bytes")
	assert.Equal(t, barcode.TypeReference("3"), ref)

	_, ok = barcode.CharAt(1)("4")
	assert.False(t, ok, "payload corto")
	_, ok = barcode.CharAt(-1)("45")
	assert.False(t, ok)
}

func TestDelimited(t *testing.T) {
	ext := barcode.Delimited("-", 1)
	ref, ok := ext("CAT01-42-0007")
	require.True(t, ok)
	assert.Equal(t, barcode.TypeReference("42"), ref)

	_, ok = ext("sin-")
	assert.False(t, ok, "segmento vacío")
	_, ok = ext("solo")
	assert.False(t, ok)
	_, ok = barcode.Delimited("", 0)("a-b")
	assert.False(t, ok)
}

func TestTypeReference_ID(t *testing.T) {
	id, ok := barcode.TypeReference("42").ID()
	require.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = barcode.TypeReference("A").ID()
	assert.False(t, ok)
}

func TestNewExtractor(t *testing.T) {
	ext, err := barcode.NewExtractor(barcode.ModeDelimited, 0, "|")
	require.NoError(t, err)
	ref, ok := ext("9|x")
	require.True(t, ok)
	assert.Equal(t, barcode.TypeReference("9"), ref)

	_, err = barcode.NewExtractor(barcode.ModeDelimited, 0, "")
	assert.Error(t, err)
	_, err = barcode.NewExtractor("regex", 0, "")
	assert.Error(t, err)

	ext, err = barcode.NewExtractor("", 1, "")
	require.NoError(t, err)
	ref, _ = ext("12")
	assert.Equal(t, barcode.TypeReference("2"), ref)
}

func TestInterpreter_Interpret(t *testing.T) {
	in := barcode.NewInterpreter(nil)

	_, ok := in.Interpret(nil)
	assert.False(t, ok, "sin payload no hay referencia")
	_, ok = in.Interpret(ptr(""))
	assert.False(t, ok, "payload vacío equivale a no reconocido")

	ref, ok := in.Interpret(ptr("13"))
	require.True(t, ok)
	assert.Equal(t, barcode.TypeReference("3"), ref, "por defecto el segundo carácter")
}
