package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Clasificador-api/internal/application/classification"
	"github.com/jhoicas/Clasificador-api/internal/application/dto"
	"github.com/jhoicas/Clasificador-api/internal/domain"
	"github.com/jhoicas/Clasificador-api/internal/domain/placement"
)

// maxImageBytes tamaño máximo de la imagen subida en /scan.
const maxImageBytes = 8 << 20

// ClassificationHandler expone la clasificación por payload, por imagen y la etiqueta PDF.
type ClassificationHandler struct {
	svc   *classification.Service
	label *classification.LabelUseCase
}

// NewClassificationHandler construye el handler. label puede ser nil (ruta /label deshabilitada).
func NewClassificationHandler(svc *classification.Service, label *classification.LabelUseCase) *ClassificationHandler {
	return &ClassificationHandler{svc: svc, label: label}
}

// dimensionsOf exige las tres medidas; una ausente no se interpreta como cero.
func dimensionsOf(in dto.ClassifyRequest) (placement.Dimensions, error) {
	fields := []struct {
		name  string
		value *decimal.Decimal
	}{{"length", in.Length}, {"width", in.Width}, {"height", in.Height}}
	for _, f := range fields {
		if f.value == nil {
			return placement.Dimensions{}, fmt.Errorf("%w: %s es requerido", domain.ErrValidation, f.name)
		}
	}
	return placement.Dimensions{Length: *in.Length, Width: *in.Width, Height: *in.Height}, nil
}

// Classify godoc
// @Summary      Clasificar un payload decodificado
// @Description  payload nulo o vacío responde "barcode not recognized" sin ubicación.
// @Tags         classifications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClassifyRequest  true  "Payload y dimensiones"
// @Success      200   {object}  dto.ClassificationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/classifications [post]
func (h *ClassificationHandler) Classify(c *fiber.Ctx) error {
	var in dto.ClassifyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	dims, err := dimensionsOf(in)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.svc.Classify(c.UserContext(), in.Payload, dims)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(classification.ToResponse(res))
}

// Scan godoc
// @Summary      Clasificar desde una imagen
// @Tags         classifications
// @Accept       multipart/form-data
// @Produce      json
// @Param        barcode  formData  file    true  "Imagen con el código de barras"
// @Param        length   formData  string  true  "Largo"
// @Param        width    formData  string  true  "Ancho"
// @Param        height   formData  string  true  "Alto"
// @Success      200      {object}  dto.ClassificationResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/classifications/scan [post]
func (h *ClassificationHandler) Scan(c *fiber.Ctx) error {
	dims, err := placement.ParseDimensions(c.FormValue("length"), c.FormValue("width"), c.FormValue("height"))
	if err != nil {
		return writeError(c, err)
	}
	fh, err := c.FormFile("barcode")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode (imagen) es requerido"})
	}
	if fh.Size > maxImageBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "TOO_LARGE", Message: "imagen demasiado grande"})
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.svc.ClassifyImage(c.UserContext(), data, dims)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(classification.ToResponse(res))
}

// Label godoc
// @Summary      Etiqueta PDF de ubicación
// @Tags         classifications
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ClassifyRequest  true  "Payload y dimensiones"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/classifications/label [post]
func (h *ClassificationHandler) Label(c *fiber.Ctx) error {
	var in dto.ClassifyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	dims, err := dimensionsOf(in)
	if err != nil {
		return writeError(c, err)
	}
	pdf, filename, err := h.label.Render(c.UserContext(), in.Payload, dims)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdf)
}

// ListScans godoc
// @Summary      Historial de clasificaciones
// @Tags         classifications
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ScanListResponse
// @Router       /api/scans [get]
func (h *ClassificationHandler) ListScans(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit y offset deben ser enteros"})
	}
	page.DefaultPage()
	out, err := h.svc.ListScans(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
