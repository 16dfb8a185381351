// Package pdf implementa la generación de la oferta comercial de un
// proyecto con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: Proyecto (izq)  │  Cliente + Fecha (der)       │
//	│  ─────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Cant | P.Unit | Moneda | Subtotal        │
//	│  ─────────────────────────────────────────────────────  │
//	│  TOTALES por moneda                                     │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoOfferGenerator implementa usecase.OfferGenerator usando Maroto v2.
type MarotoOfferGenerator struct{}

// NewMarotoOfferGenerator construye el generador.
func NewMarotoOfferGenerator() *MarotoOfferGenerator { return &MarotoOfferGenerator{} }

// GenerateProjectOffer genera el PDF de la oferta y devuelve sus bytes.
func (g *MarotoOfferGenerator) GenerateProjectOffer(_ context.Context, data usecase.OfferData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Oferta Comercial", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, l := range data.Lines {
		m.AddRows(lineRow(l))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(data.Lines) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar oferta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del proyecto (izq) y cliente + fecha (der).
func headerRow(data usecase.OfferData) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("OFERTA COMERCIAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(data.ProjectName, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New("Cliente: "+data.ClientName, props.Text{
				Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := header
	headerRight.Align = align.Right
	return row.New(7).Add(
		col.New(5).Add(text.New("Ítem", header)),
		col.New(2).Add(text.New("Cantidad", headerRight)),
		col.New(2).Add(text.New("P. Unitario", headerRight)),
		col.New(1).Add(text.New("Moneda", headerRight)),
		col.New(2).Add(text.New("Subtotal", headerRight)),
	)
}

func lineRow(l usecase.OfferLine) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := cell
	cellRight.Align = align.Right
	subtotal := l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
	return row.New(6).Add(
		col.New(5).Add(text.New(l.ItemName, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", l.Quantity), cellRight)),
		col.New(2).Add(text.New(l.Price.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(l.Currency, cellRight)),
		col.New(2).Add(text.New(subtotal.StringFixed(2), cellRight)),
	)
}

// totalsRows: un total por cada moneda presente en las líneas, en orden de
// aparición.
func totalsRows(lines []usecase.OfferLine) []core.Row {
	totals := map[string]decimal.Decimal{}
	var order []string
	for _, l := range lines {
		if _, ok := totals[l.Currency]; !ok {
			order = append(order, l.Currency)
		}
		totals[l.Currency] = totals[l.Currency].Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	var rows []core.Row
	for _, currency := range order {
		rows = append(rows, row.New(7).Add(
			col.New(10).Add(text.New("TOTAL "+currency, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			})),
			col.New(2).Add(text.New(totals[currency].StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			})),
		))
	}
	return rows
}
