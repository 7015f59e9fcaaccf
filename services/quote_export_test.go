package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestQuoteFilename(t *testing.T) {
	tests := []struct {
		name   string
		at     time.Time
		format ExportFormat
		expect string
	}{
		{"pdf", time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), FormatPDF, "shipping-quote-2024-03-05T14-30-00.000Z.pdf"},
		{"excel with millis", time.Date(2024, 3, 5, 14, 30, 0, 123_000_000, time.UTC), FormatExcel, "shipping-quote-2024-03-05T14-30-00.123Z.xlsx"},
		{"converted to utc", time.Date(2024, 3, 5, 21, 30, 0, 0, time.FixedZone("ICT", 7*3600)), FormatPDF, "shipping-quote-2024-03-05T14-30-00.000Z.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuoteFilename(tt.at, tt.format)
			if got != tt.expect {
				t.Errorf("QuoteFilename() = %q, want %q", got, tt.expect)
			}
			if strings.ContainsAny(got, `:/\ `) {
				t.Errorf("filename %q contains unsafe characters", got)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename(`a b/c\d:e`); got != "a-b-c-d-e" {
		t.Errorf("sanitizeFilename() = %q", got)
	}
}

func TestExportFormat_ContentType(t *testing.T) {
	if FormatPDF.ContentType() != "application/pdf" {
		t.Errorf("unexpected pdf content type %q", FormatPDF.ContentType())
	}
	if !strings.Contains(FormatExcel.ContentType(), "spreadsheetml") {
		t.Errorf("unexpected excel content type %q", FormatExcel.ContentType())
	}
}

func TestExportQuote_UnsupportedFormat(t *testing.T) {
	doc := buildTestDocument(t, defaultRequest())

	_, _, err := ExportQuote(doc, ExportFormat("docx"))
	var exportErr *ExportError
	if !errors.As(err, &exportErr) {
		t.Fatalf("expected ExportError, got %v", err)
	}
	if exportErr.Format != "docx" {
		t.Errorf("ExportError.Format = %q", exportErr.Format)
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ShipmentRequest)
	}{
		{"default", func(*ShipmentRequest) {}},
		{"delivery and charges", func(r *ShipmentRequest) {
			r.Delivery.Required = true
			r.Delivery.Vehicle = VehicleFourWheel
			r.AdditionalCharges = []AdditionalCharge{{"Fuel surcharge", 1200}, {"Discount", -300}}
		}},
		{"zero everything", func(r *ShipmentRequest) {
			r.Dimensions = Dimensions{}
			r.PalletCount = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := defaultRequest()
			tt.modify(&req)
			doc := buildTestDocument(t, req)

			data, filename, err := ExportQuote(doc, FormatPDF)
			if err != nil {
				t.Fatalf("ExportQuote() error = %v", err)
			}
			if len(data) < 5 || string(data[:5]) != "%PDF-" {
				t.Fatal("result does not start with PDF header")
			}
			if !strings.HasSuffix(filename, ".pdf") {
				t.Errorf("unexpected filename %q", filename)
			}
		})
	}
}

func TestPDFText_ReplacesNonLatinSymbols(t *testing.T) {
	if got := pdfText("฿3,500 × 2"); got != "THB 3,500 x 2" {
		t.Errorf("pdfText() = %q", got)
	}
}

func TestGenerateQuoteExcel_Content(t *testing.T) {
	req := defaultRequest()
	req.AdditionalCharges = []AdditionalCharge{{"=HYPERLINK(\"x\")", 100}}
	doc := buildTestDocument(t, req)

	data, err := GenerateQuoteExcel(doc)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("failed to open generated workbook: %v", err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex("Quote"); idx < 0 {
		t.Fatal("expected a Quote sheet")
	}

	title, _ := f.GetCellValue("Quote", "A1")
	if title != DefaultQuoteTitle {
		t.Errorf("A1 = %q, want title", title)
	}

	headers := map[string]string{
		"B3": "Acme Ltd",
		"D3": "Switzerland",
		"D4": "ABC123XYZ",
		"D5": "05 Mar 2024",
	}
	for cell, want := range headers {
		got, _ := f.GetCellValue("Quote", cell)
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	rows, err := f.GetRows("Quote")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	var foundTotal, foundInjected bool
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "Total Cost" {
			foundTotal = true
			if row[1] != "227,399" {
				t.Errorf("Total Cost cell = %q, want 227,399", row[1])
			}
		}
		if len(row) > 0 && strings.HasPrefix(row[0], "'=HYPERLINK") {
			foundInjected = true
		}
	}
	if !foundTotal {
		t.Error("Total Cost row not found")
	}
	if !foundInjected {
		t.Error("formula-like charge name was not neutralised")
	}
}
