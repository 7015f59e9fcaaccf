package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders the quote as a single A4 portrait page using
// maroto/v2 and returns the PDF bytes.
func GenerateQuotePDF(doc QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithTitle(doc.Title, true).
		WithCreationDate(doc.GeneratedAt).
		Build()

	m := maroto.New(cfg)

	addQuoteTitle(m, doc)
	addQuoteParties(m, doc)
	addQuoteDimensions(m, doc)
	addQuoteWeights(m, doc)
	addQuoteCosts(m, doc)
	addQuoteRateStructure(m, doc)
	addQuoteNotes(m, doc)

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return pdf.GetBytes(), nil
}

var (
	quoteMuted = &props.Color{Red: 100, Green: 100, Blue: 100}
	quoteLabel = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	quoteValue = props.Text{Size: 9, Align: align.Left}
	quoteRight = props.Text{Size: 9, Align: align.Right}
)

func addQuoteTitle(m core.Maroto, doc QuoteDocument) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(pdfText(doc.Title), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

// addQuoteParties prints the customer block on the left and destination,
// quote number and date on the right.
func addQuoteParties(m core.Maroto, doc QuoteDocument) {
	pairs := [][4]string{
		{"Company Name:", doc.Company.CompanyName, "Destination:", doc.Destination},
		{"Contact Person:", doc.Company.ContactPerson, "Quote No:", doc.QuoteNo},
		{"Contact No:", doc.Company.ContactNo, "Date:", doc.Date},
	}
	for _, p := range pairs {
		m.AddRows(
			row.New(7).Add(
				col.New(3).Add(text.New(p[0], quoteLabel)),
				col.New(4).Add(text.New(pdfText(p[1]), quoteValue)),
				col.New(2).Add(text.New(p[2], quoteLabel)),
				col.New(3).Add(text.New(pdfText(p[3]), quoteValue)),
			),
		)
	}
}

func addQuoteSection(m core.Maroto, title string) {
	m.AddRows(row.New(8))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(title, props.Text{Size: 11, Style: fontstyle.Bold})),
		),
	)
	m.AddRows(row.New(2).Add(col.New(12).Add(line.New(props.Line{Thickness: 0.4}))))
	m.AddRows(row.New(2))
}

func addQuoteDimensions(m core.Maroto, doc QuoteDocument) {
	addQuoteSection(m, "Dimensions")
	d := doc.Dimensions
	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New("Length: "+formatNumber(d.Length)+"cm", props.Text{Size: 9, Align: align.Left})),
			col.New(4).Add(text.New("Width: "+formatNumber(d.Width)+"cm", props.Text{Size: 9, Align: align.Center})),
			col.New(4).Add(text.New("Height: "+formatNumber(d.Height)+"cm", quoteRight)),
		),
	)
}

// addQuoteWeights lays the weight details out two per row.
func addQuoteWeights(m core.Maroto, doc QuoteDocument) {
	addQuoteSection(m, "Weight Details")
	for i := 0; i < len(doc.Weights); i += 2 {
		cols := []core.Col{
			col.New(4).Add(text.New(doc.Weights[i].Label+":", quoteValue)),
			col.New(2).Add(text.New(doc.Weights[i].Value, quoteRight)),
		}
		if i+1 < len(doc.Weights) {
			cols = append(cols,
				col.New(4).Add(text.New(doc.Weights[i+1].Label+":", quoteValue)),
				col.New(2).Add(text.New(doc.Weights[i+1].Value, quoteRight)),
			)
		}
		m.AddRows(row.New(7).Add(cols...))
	}
}

func addQuoteCosts(m core.Maroto, doc QuoteDocument) {
	addQuoteSection(m, "Cost Breakdown")
	for _, cl := range doc.CostLines {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(pdfText(cl.Label)+":", quoteValue)),
				col.New(3).Add(text.New(pdfText(doc.Money(cl.Amount)), quoteRight)),
			),
		)
	}

	m.AddRows(row.New(2).Add(col.New(12).Add(line.New(props.Line{Thickness: 0.4}))))
	totalStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}
	totalValue := totalStyle
	totalValue.Align = align.Right
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total Cost:", totalStyle)),
			col.New(3).Add(text.New(pdfText(doc.Money(doc.TotalCost)), totalValue)),
		),
	)
}

// addQuoteRateStructure lists the destination's weight bands and marks the
// one that was applied.
func addQuoteRateStructure(m core.Maroto, doc QuoteDocument) {
	if len(doc.RateStructure) == 0 {
		return
	}
	addQuoteSection(m, "Rate Structure ("+pdfText(doc.Destination)+")")

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}
	m.AddRows(
		row.New(7).Add(
			col.New(4).Add(text.New("Min Weight (kg)", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Max Weight (kg)", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Rate / kg", headerText)).WithStyle(&headerCell),
		),
	)

	for i, b := range doc.RateStructure {
		cellText := props.Text{Size: 8, Align: align.Center}
		var cellStyle *props.Cell
		if i == doc.AppliedBand {
			cellText.Style = fontstyle.Bold
			cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 235, Green: 235, Blue: 235}}
		}
		cols := []core.Col{
			col.New(4).Add(text.New(formatNumber(b.MinWeight), cellText)),
			col.New(4).Add(text.New(formatNumber(b.MaxWeight), cellText)),
			col.New(4).Add(text.New(pdfText(doc.Money(b.Rate)), cellText)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(6).Add(cols...))
	}
}

func addQuoteNotes(m core.Maroto, doc QuoteDocument) {
	m.AddRows(row.New(8))
	m.AddRows(row.New(2).Add(col.New(12).Add(line.New(props.Line{Thickness: 0.4}))))
	for _, n := range doc.Notes {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(pdfText(n), props.Text{Size: 8, Align: align.Left, Color: quoteMuted})),
			),
		)
	}
}

// pdfCharMap replaces characters the built-in PDF fonts cannot encode.
var pdfCharMap = strings.NewReplacer(
	"฿", "THB ",
	"₹", "INR ",
	"×", "x",
)

func pdfText(s string) string {
	return pdfCharMap.Replace(s)
}
