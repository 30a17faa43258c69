// Package pdf genera la etiqueta de ubicación de una clasificación.
//
// Layout de la página A6:
//
//	┌───────────────────────────────────┐
//	│  TIPO (grande)     │  UBICACIÓN    │
//	│  ───────────────────────────────  │
//	│  Perecedero / Dimensiones         │
//	│  Código de barras del payload     │
//	│  Fecha de generación              │
//	└───────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Clasificador-api/internal/application/classification"
	"github.com/jhoicas/Clasificador-api/internal/domain/placement"
)

var _ classification.LabelGenerator = (*MarotoLabelGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var placementLabels = map[placement.Bucket]string{
	placement.Shelf:  "ESTANTE",
	placement.Pallet: "PALLET",
	placement.Floor:  "PISO",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLabelGenerator implementa classification.LabelGenerator usando Maroto v2.
type MarotoLabelGenerator struct {
	author string
}

// NewMarotoLabelGenerator construye el generador. author se escribe en los metadatos del PDF.
func NewMarotoLabelGenerator(author string) *MarotoLabelGenerator {
	return &MarotoLabelGenerator{author: author}
}

// GenerateLabel genera la etiqueta y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateLabel(_ context.Context, data classification.LabelData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(6).WithRightMargin(6).
		WithTopMargin(6).WithBottomMargin(6).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta de ubicación", true).
		WithAuthor(nonEmpty(g.author, "clasificador"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailRows(data)...)
	if data.Result.Payload != nil && *data.Result.Payload != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(barcodeRow(*data.Result.Payload))
	}
	m.AddRows(line.NewRow(2))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del tipo (izq) y ubicación (der).
func headerRow(res classification.Result) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(res.TypeName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("UBICACIÓN", props.Text{
				Size: 7, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(placementLabel(res.Placement), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
		),
	)
}

func detailRows(data classification.LabelData) []core.Row {
	perishable := "No perecedero"
	perishableColor := colorGray
	if data.Result.Perishable {
		perishable = "PERECEDERO"
		perishableColor = colorAlert
	}
	dims := data.Dimensions
	return []core.Row{
		row.New(7).Add(
			col.New(12).Add(text.New(perishable, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: perishableColor, Top: 2,
			})),
		),
		row.New(7).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Dimensiones: %s x %s x %s",
				dims.Length.String(), dims.Width.String(), dims.Height.String(),
			), props.Text{Size: 8, Top: 2})),
		),
	}
}

func barcodeRow(payload string) core.Row {
	return row.New(18).Add(
		col.New(12).Add(code.NewBar(payload, props.Barcode{Percent: 90, Center: true})),
	)
}

func footerRow(data classification.LabelData) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New("Generada: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 6, Align: align.Right, Color: colorGray,
		})),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func placementLabel(b placement.Bucket) string {
	if l, ok := placementLabels[b]; ok {
		return l
	}
	return "SIN UBICACIÓN"
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
