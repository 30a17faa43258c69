package classification

import (
	"context"
	"fmt"

	"github.com/jhoicas/Clasificador-api/internal/domain/placement"
)

// LabelUseCase clasifica y genera la etiqueta PDF de ubicación.
type LabelUseCase struct {
	svc       *Service
	generator LabelGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(svc *Service, generator LabelGenerator) *LabelUseCase {
	return &LabelUseCase{svc: svc, generator: generator}
}

// Render devuelve (pdfBytes, filename, nil). La etiqueta se genera también para códigos no reconocidos.
func (uc *LabelUseCase) Render(ctx context.Context, payload *string, dims placement.Dimensions) ([]byte, string, error) {
	res, err := uc.svc.Classify(ctx, payload, dims)
	if err != nil {
		return nil, "", err
	}
	now := uc.svc.now()
	pdf, err := uc.generator.GenerateLabel(ctx, LabelData{
		Result:      *res,
		Dimensions:  dims,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, "", fmt.Errorf("etiqueta: %w", err)
	}
	filename := fmt.Sprintf("etiqueta-%s.pdf", now.Format("20060102-150405"))
	return pdf, filename, nil
}
