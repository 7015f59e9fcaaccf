package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"shippingquote/services"
)

func renderReport(t *testing.T, data CalculatorData, oob bool) string {
	t.Helper()
	var buf bytes.Buffer
	if err := ReportSlot(data, oob).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestQuoteReport_HighlightsAppliedBandOnly(t *testing.T) {
	table := services.DefaultRateTable()
	table.Destinations = []services.Destination{{Key: "jp", Name: "Japan", Bands: []services.RateBand{
		{MinWeight: 1, MaxWeight: 45, Rate: 300},
		{MinWeight: 46, MaxWeight: 100, Rate: 300},
		{MinWeight: 101, MaxWeight: 500, Rate: 250},
	}}}
	s := services.NewSession(table)
	s.SetLength(60)
	s.SetWidth(50)
	s.SetHeight(20)
	s.SetPalletCount(5)
	req := s.Snapshot()
	result, err := services.CalculateQuote(req, table)
	if err != nil {
		t.Fatalf("CalculateQuote() error = %v", err)
	}
	doc := services.BuildQuoteDocument(req, result, table, services.CompanyInfo{}, "Q1", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))

	body := renderReport(t, CalculatorData{Table: table, ShowReport: true, Report: &doc}, false)
	if n := strings.Count(body, `<tr class="font-bold">`); n != 1 {
		t.Fatalf("expected exactly one highlighted band, got %d", n)
	}
	if !strings.Contains(body, `<tr class="font-bold"><td>46 – 100</td>`) {
		t.Error("expected the 46-100 band to be highlighted")
	}
}

func TestReportSlot_OutOfBand(t *testing.T) {
	data := testData(t)
	data.ShowReport = true

	if body := renderReport(t, data, false); strings.Contains(body, "hx-swap-oob") {
		t.Error("in-page slot should not be out-of-band")
	}

	body := renderReport(t, data, true)
	if !strings.Contains(body, `id="quote-report" class="mt-6" hx-swap-oob="outerHTML"`) {
		t.Errorf("expected out-of-band slot, got %s", body)
	}
	if strings.Contains(body, "Cost Breakdown") {
		t.Error("empty slot should not render a report")
	}
}
