package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const quoteSheet = "Quote"

// GenerateQuoteExcel writes the quote into a single-sheet workbook and
// returns the file contents.
func GenerateQuoteExcel(doc QuoteDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if err := f.SetColWidth(quoteSheet, "A", "A", 42); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(quoteSheet, "B", "D", 18); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Border: []excelize.Border{{Type: "bottom", Color: "#000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 3, // #,##0
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: 3,
		Border: []excelize.Border{{Type: "top", Color: "#000000", Style: 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	row := 1
	cell := func(col string) string { return fmt.Sprintf("%s%d", col, row) }
	set := func(col string, v any) {
		if s, ok := v.(string); ok {
			v = sanitizeExcelCell(s)
		}
		f.SetCellValue(quoteSheet, cell(col), v)
	}

	if err := f.MergeCell(quoteSheet, "A1", "D1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	set("A", doc.Title)
	f.SetCellStyle(quoteSheet, "A1", "D1", titleStyle)
	row += 2

	header := [][4]string{
		{"Company Name", doc.Company.CompanyName, "Destination", doc.Destination},
		{"Contact Person", doc.Company.ContactPerson, "Quote No", doc.QuoteNo},
		{"Contact No", doc.Company.ContactNo, "Date", doc.Date},
	}
	for _, h := range header {
		set("A", h[0])
		set("B", h[1])
		set("C", h[2])
		set("D", h[3])
		f.SetCellStyle(quoteSheet, cell("A"), cell("A"), labelStyle)
		f.SetCellStyle(quoteSheet, cell("C"), cell("C"), labelStyle)
		row++
	}

	section := func(title string) {
		row++
		set("A", title)
		f.SetCellStyle(quoteSheet, cell("A"), cell("D"), sectionStyle)
		row++
	}

	section("Dimensions (cm)")
	set("A", "Length")
	set("B", doc.Dimensions.Length)
	row++
	set("A", "Width")
	set("B", doc.Dimensions.Width)
	row++
	set("A", "Height")
	set("B", doc.Dimensions.Height)
	row++

	section("Weight Details")
	for _, w := range doc.Weights {
		set("A", w.Label)
		set("B", w.Value)
		row++
	}

	section(fmt.Sprintf("Cost Breakdown (%s)", doc.CurrencySymbol))
	for _, cl := range doc.CostLines {
		set("A", cl.Label)
		set("B", cl.Amount)
		f.SetCellStyle(quoteSheet, cell("B"), cell("B"), moneyStyle)
		row++
	}
	set("A", "Total Cost")
	set("B", doc.TotalCost)
	f.SetCellStyle(quoteSheet, cell("A"), cell("A"), labelStyle)
	f.SetCellStyle(quoteSheet, cell("B"), cell("B"), totalStyle)
	row++

	if len(doc.RateStructure) > 0 {
		section("Rate Structure")
		set("A", "Min Weight (kg)")
		set("B", "Max Weight (kg)")
		set("C", "Rate / kg")
		f.SetCellStyle(quoteSheet, cell("A"), cell("C"), labelStyle)
		row++
		for _, b := range doc.RateStructure {
			set("A", b.MinWeight)
			set("B", b.MaxWeight)
			set("C", b.Rate)
			row++
		}
	}

	row++
	for _, n := range doc.Notes {
		set("A", n)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
