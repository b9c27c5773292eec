// Package pdf implementa la generación del kardex en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Tipo | Cantidad | Observación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK ACTUAL: Producto | Cantidad | Precio                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/kardex-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa ledger.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF del kardex y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(
	_ context.Context,
	movements []*entity.Movement,
	products []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de movimientos", true).
		Build()

	m := maroto.New(cfg)

	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	m.AddRows(headerRow(len(movements)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(movementHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov, names))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(stockHeaderRow())
	for _, p := range products {
		m.AddRows(stockRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(total int) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("KARDEX DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d movimientos", total), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func movementHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(4).Add(text.New("Producto", header)),
		col.New(2).Add(text.New("Tipo", header)),
		col.New(1).Add(text.New("Cant.", header)),
		col.New(3).Add(text.New("Observación", header)),
	)
}

func movementRow(mov *entity.Movement, names map[int64]string) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	name, ok := names[mov.ProductID]
	if !ok {
		name = "#" + strconv.FormatInt(mov.ProductID, 10)
	}
	tipo := "Entrada"
	if mov.Type == entity.MovementTypeOutbound {
		tipo = "Salida"
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(mov.CreatedAt.Format("02/01/2006 15:04"), cell)),
		col.New(4).Add(text.New(name, cell)),
		col.New(2).Add(text.New(tipo, cell)),
		col.New(1).Add(text.New(strconv.FormatInt(mov.Quantity, 10), cell)),
		col.New(3).Add(text.New(mov.Observation, cell)),
	)
}

func stockHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(6).Add(text.New("Producto", header)),
		col.New(3).Add(text.New("Stock actual", header)),
		col.New(3).Add(text.New("Precio", header)),
	)
}

func stockRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(6).Add(text.New(p.Name, cell)),
		col.New(3).Add(text.New(strconv.FormatInt(p.Quantity, 10), cell)),
		col.New(3).Add(text.New("$ "+p.Price.StringFixed(2), cell)),
	)
}
