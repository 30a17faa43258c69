package classification

import (
	"context"
	"time"

	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
	"github.com/jhoicas/Clasificador-api/internal/domain/placement"
)

// ProductFinder resuelve el producto que responde por un tipo (el primero por orden de inserción).
type ProductFinder interface {
	FindProductByType(ctx context.Context, typeID int64) (*entity.Product, error)
}

// ImageDecoder decodifica una imagen a su payload de texto.
// ok=false sin error cuando la imagen no contiene un código legible; error solo si la imagen es inválida.
type ImageDecoder interface {
	Decode(ctx context.Context, image []byte) (payload string, ok bool, err error)
}

// LabelData datos para imprimir la etiqueta de ubicación.
type LabelData struct {
	Result      Result
	Dimensions  placement.Dimensions
	GeneratedAt time.Time
}

// LabelGenerator genera la etiqueta de ubicación (PDF) de una clasificación.
type LabelGenerator interface {
	GenerateLabel(ctx context.Context, data LabelData) ([]byte, error)
}
