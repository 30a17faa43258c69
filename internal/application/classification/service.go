// Package classification orquesta la clasificación de un producto escaneado:
// payload -> referencia de tipo -> producto del catálogo -> ubicación por dimensiones.
package classification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Clasificador-api/internal/application/dto"
	"github.com/jhoicas/Clasificador-api/internal/domain/barcode"
	"github.com/jhoicas/Clasificador-api/internal/domain/entity"
	"github.com/jhoicas/Clasificador-api/internal/domain/placement"
	"github.com/jhoicas/Clasificador-api/internal/domain/repository"
	"github.com/jhoicas/Clasificador-api/pkg/logger"
)

// Nombres de tipo de los resultados terminales (no son errores).
const (
	TypeNameUnrecognized = "barcode not recognized"
	TypeNameUndetermined = "undetermined type"
)

// ErrNoDecoder la clasificación por imagen requiere un ImageDecoder.
var ErrNoDecoder = errors.New("clasificación: sin decodificador de imágenes")

// Result resultado de una clasificación.
// Placement queda vacío solo cuando el código no fue reconocido.
type Result struct {
	TypeName   string
	Perishable bool
	Placement  placement.Bucket
	Payload    *string
	Recognized bool // hubo payload
	Matched    bool // se encontró producto para el tipo
}

// Options dependencias opcionales del servicio.
type Options struct {
	Decoder          ImageDecoder
	Scans            repository.ScanRepository // nil: no se registra historial
	StrictDimensions bool                      // rechaza dimensiones <= 0
	Logger           *logger.Logger
}

// Service orquesta intérprete, catálogo y clasificador de ubicación.
type Service struct {
	finder      ProductFinder
	interpreter *barcode.Interpreter
	decoder     ImageDecoder
	scans       repository.ScanRepository
	strict      bool
	log         *logger.Logger
	now         func() time.Time
}

// NewService construye el servicio.
func NewService(finder ProductFinder, interpreter *barcode.Interpreter, opts Options) *Service {
	if interpreter == nil {
		interpreter = barcode.NewInterpreter(nil)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		finder:      finder,
		interpreter: interpreter,
		decoder:     opts.Decoder,
		scans:       opts.Scans,
		strict:      opts.StrictDimensions,
		log:         log,
		now:         time.Now,
	}
}

// Classify clasifica un payload ya decodificado (nil = no se encontró código en la imagen).
// Solo falla si el catálogo falla o, en modo estricto, si las dimensiones no son positivas.
func (s *Service) Classify(ctx context.Context, payload *string, dims placement.Dimensions) (*Result, error) {
	if s.strict {
		if err := dims.Validate(); err != nil {
			return nil, err
		}
	}

	if !barcode.Recognized(payload) {
		// Sin código no se calcula la ubicación.
		res := &Result{TypeName: TypeNameUnrecognized}
		s.record(ctx, res, dims)
		return res, nil
	}

	res := &Result{
		TypeName:   TypeNameUndetermined,
		Payload:    payload,
		Recognized: true,
	}
	product, err := s.resolve(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("clasificar: %w", err)
	}
	if product != nil {
		res.TypeName = product.Name
		res.Perishable = product.Perishable
		res.Matched = true
	}
	res.Placement = placement.Classify(dims)

	s.log.Debug().
		Str("payload", *payload).
		Str("type_name", res.TypeName).
		Bool("matched", res.Matched).
		Str("placement", string(res.Placement)).
		Msg("clasificación")

	s.record(ctx, res, dims)
	return res, nil
}

// resolve extrae la referencia de tipo y busca el producto; nil si no hay referencia utilizable o producto.
func (s *Service) resolve(ctx context.Context, payload *string) (*entity.Product, error) {
	ref, ok := s.interpreter.Interpret(payload)
	if !ok {
		return nil, nil
	}
	typeID, ok := ref.ID()
	if !ok {
		return nil, nil
	}
	return s.finder.FindProductByType(ctx, typeID)
}

// ClassifyImage decodifica la imagen y clasifica su payload. Imagen sin código -> "barcode not recognized".
func (s *Service) ClassifyImage(ctx context.Context, image []byte, dims placement.Dimensions) (*Result, error) {
	if s.decoder == nil {
		return nil, ErrNoDecoder
	}
	payload, ok, err := s.decoder.Decode(ctx, image)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.Classify(ctx, nil, dims)
	}
	return s.Classify(ctx, &payload, dims)
}

// record guarda la clasificación en el historial. Un fallo se registra en log y no afecta el resultado.
func (s *Service) record(ctx context.Context, res *Result, dims placement.Dimensions) {
	if s.scans == nil {
		return
	}
	scan := &entity.Scan{
		ID:         uuid.New().String(),
		Payload:    res.Payload,
		TypeName:   res.TypeName,
		Perishable: res.Perishable,
		Placement:  string(res.Placement),
		Length:     dims.Length,
		Width:      dims.Width,
		Height:     dims.Height,
		CreatedAt:  s.now(),
	}
	if err := s.scans.Create(ctx, scan); err != nil {
		s.log.Warn().Err(err).Str("scan_id", scan.ID).Msg("no se pudo registrar la clasificación")
	}
}

// ListScans lista el historial de clasificaciones (vacío si no hay repositorio de historial).
func (s *Service) ListScans(ctx context.Context, limit, offset int) (*dto.ScanListResponse, error) {
	out := &dto.ScanListResponse{
		Items: []dto.ScanResponse{},
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	if s.scans == nil {
		return out, nil
	}
	list, err := s.scans.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, sc := range list {
		out.Items = append(out.Items, dto.ScanResponse{
			ID:         sc.ID,
			Payload:    sc.Payload,
			TypeName:   sc.TypeName,
			Perishable: sc.Perishable,
			Placement:  sc.Placement,
			Length:     sc.Length,
			Width:      sc.Width,
			Height:     sc.Height,
			CreatedAt:  sc.CreatedAt,
		})
	}
	return out, nil
}

// ToResponse adapta el resultado a la salida HTTP.
func ToResponse(r *Result) dto.ClassificationResponse {
	return dto.ClassificationResponse{
		TypeName:   r.TypeName,
		Perishable: r.Perishable,
		Placement:  string(r.Placement),
		Recognized: r.Recognized,
		Matched:    r.Matched,
	}
}
