// Package barcode adapta gozxing como decodificador de imágenes de códigos de barras.
package barcode

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/jhoicas/Clasificador-api/internal/application/classification"
	"github.com/jhoicas/Clasificador-api/internal/domain"
)

var _ classification.ImageDecoder = (*ZXingDecoder)(nil)

// ZXingDecoder lee QR y códigos 1D (Code128, EAN, UPC, Code39...).
// Los lectores de gozxing guardan estado entre filas: cada Decode crea los suyos,
// así una instancia puede compartirse entre peticiones.
type ZXingDecoder struct{}

// NewZXingDecoder construye el decodificador.
func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{}
}

// newReaders lectores en orden de prueba. QR va primero: sin patrones de búsqueda falla rápido
// y evita lecturas falsas de los formatos 1D sin dígito de control.
func newReaders() []gozxing.Reader {
	return []gozxing.Reader{
		qrcode.NewQRCodeReader(),
		oned.NewCode128Reader(),
		oned.NewEAN13Reader(),
		oned.NewEAN8Reader(),
		oned.NewUPCAReader(),
		oned.NewUPCEReader(),
		oned.NewCode39Reader(),
		oned.NewCode93Reader(),
		oned.NewITFReader(),
		oned.NewCodaBarReader(),
	}
}

// Decode devuelve el texto del primer código legible.
// Imagen sin código: ("", false, nil). Bytes que no son una imagen: domain.ErrInvalidInput.
func (d *ZXingDecoder) Decode(ctx context.Context, data []byte) (string, bool, error) {
	if len(data) == 0 {
		return "", false, fmt.Errorf("%w: imagen vacía", domain.ErrInvalidInput)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", false, fmt.Errorf("%w: imagen: %v", domain.ErrInvalidInput, err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", false, fmt.Errorf("%w: bitmap: %v", domain.ErrInvalidInput, err)
	}
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	for _, r := range newReaders() {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		res, err := r.Decode(bmp, hints)
		if err != nil {
			// NotFound, checksum o formato: código ilegible para este lector.
			continue
		}
		if text := res.GetText(); text != "" {
			return text, true, nil
		}
	}
	return "", false, nil
}
