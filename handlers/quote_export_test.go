package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"shippingquote/services"
	"shippingquote/testhelpers"
)

func TestHandleQuoteExport_PDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteExport(app, testQuoteOptions(), services.FormatPDF)

	form := defaultForm()
	form.Set("quote_no", "ABC123XYZ")
	form.Set("generated_at", "2024-03-05T14:30:00.123Z")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, postForm("/quote/export/pdf", form), rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="shipping-quote-2024-03-05T14-30-00.123Z.pdf"`) {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response is not a PDF")
	}
}

func TestHandleQuoteExport_ExcelMatchesScreen(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteExport(app, testQuoteOptions(), services.FormatExcel)

	form := defaultForm()
	form.Set("company_name", "Acme Ltd")
	form.Set("quote_no", "ABC123XYZ")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, postForm("/quote/export/excel", form), rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.HasSuffix(cd, `.xlsx"`) {
		t.Errorf("expected .xlsx filename, got %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Quote")
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	var joined strings.Builder
	for _, row := range rows {
		joined.WriteString(strings.Join(row, "|"))
		joined.WriteString("\n")
	}
	testhelpers.AssertHTMLContains(t, joined.String(), "Acme Ltd", "ABC123XYZ", "05 Mar 2024", "Switzerland")
}

func TestHandleQuoteExport_CalculationErrorToast(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteExport(app, testQuoteOptions(), services.FormatPDF)

	form := defaultForm()
	form.Set("destination", "atlantis")
	req := postForm("/quote/export/pdf", form)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	_ = handler(newTestRequestEvent(app, req, rec))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap none so the on-screen quote stays")
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Error("no file should be sent on failure")
	}
}

func TestHandleQuoteExport_FormPostFailureKeepsPage(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	opts := testQuoteOptions()
	opts.Policy = services.ChargesRejectNegative
	handler := HandleQuoteExport(app, opts, services.FormatPDF)

	form := defaultForm()
	form.Set("company_name", "Acme Ltd")
	form.Set("show_report", "true")
	form.Set("quote_no", "ABC123XYZ")
	form.Add("charge_name", "Discount")
	form.Add("charge_amount", "-500")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, postForm("/quote/export/pdf", form), rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Error("no file should be sent on failure")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an HTML page, got %q", ct)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"<!doctype html>",
		`id="calculator"`,
		`value="Acme Ltd"`,
		`value="Discount"`,
		"negative additional charge",
		"Hide Report",
	)

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash_toast" {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("expected flash_toast cookie for the full page load")
	}
	if !strings.Contains(flash.Value, "Cannot+export") {
		t.Errorf("unexpected flash cookie value %q", flash.Value)
	}
}

func TestReportIdentity(t *testing.T) {
	opts := testQuoteOptions().withDefaults()

	t.Run("reuses on-screen values", func(t *testing.T) {
		req := postForm("/", map[string][]string{
			"quote_no":     {"ZZZ"},
			"generated_at": {"2023-12-31T23:59:59Z"},
		})
		_ = req.ParseForm()
		no, at := reportIdentity(req, opts)
		if no != "ZZZ" {
			t.Errorf("expected ZZZ, got %q", no)
		}
		if at.Year() != 2023 {
			t.Errorf("expected 2023 timestamp, got %v", at)
		}
	})

	t.Run("fresh when missing or invalid", func(t *testing.T) {
		req := postForm("/", map[string][]string{"generated_at": {"yesterday"}})
		_ = req.ParseForm()
		no, at := reportIdentity(req, opts)
		if no != "Q000001" {
			t.Errorf("expected fresh sequential id, got %q", no)
		}
		if at.Year() != 2024 {
			t.Errorf("expected injected clock, got %v", at)
		}
	})
}
