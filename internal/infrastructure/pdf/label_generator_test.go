package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Clasificador-api/internal/application/classification"
	"github.com/jhoicas/Clasificador-api/internal/domain/placement"
)

func TestGenerateLabel_ConPayload(t *testing.T) {
	payload := "A4-XYZ"
	g := NewMarotoLabelGenerator("almacén")
	out, err := g.GenerateLabel(context.Background(), classification.LabelData{
		Result: classification.Result{
			TypeName: "Leche", Perishable: true, Placement: placement.Shelf,
			Payload: &payload, Recognized: true, Matched: true,
		},
		Dimensions:  placement.NewDimensions(10, 20, 30),
		GeneratedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateLabel_SinCodigo(t *testing.T) {
	g := NewMarotoLabelGenerator("")
	out, err := g.GenerateLabel(context.Background(), classification.LabelData{
		Result:      classification.Result{TypeName: classification.TypeNameUnrecognized},
		Dimensions:  placement.NewDimensions(1, 1, 1),
		GeneratedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPlacementLabel(t *testing.T) {
	assert.Equal(t, "ESTANTE", placementLabel(placement.Shelf))
	assert.Equal(t, "PALLET", placementLabel(placement.Pallet))
	assert.Equal(t, "PISO", placementLabel(placement.Floor))
	assert.Equal(t, "SIN UBICACIÓN", placementLabel(placement.None))
}
