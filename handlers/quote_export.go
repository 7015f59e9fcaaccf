package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"shippingquote/services"
	"shippingquote/templates"
)

// reportIdentity returns the quote number and timestamp shown on screen, or
// fresh ones when the form does not carry them.
func reportIdentity(r *http.Request, opts QuoteOptions) (string, time.Time) {
	quoteNo := strings.TrimSpace(r.Form.Get("quote_no"))
	if quoteNo == "" {
		quoteNo = opts.IDs.NextQuoteID()
	}

	generatedAt := opts.Now()
	if raw := strings.TrimSpace(r.Form.Get("generated_at")); raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			generatedAt = t
		} else {
			log.Printf("quote_export: ignoring invalid generated_at %q: %v", raw, err)
		}
	}
	return quoteNo, generatedAt
}

// exportFailed reports a failed export without losing the quote on screen.
// htmx callers get an error toast and no swap. A plain form post gets the
// calculator rebuilt from the submitted form, with the toast in the flash
// cookie.
func exportFailed(e *core.RequestEvent, s *services.Session, opts QuoteOptions, status int, message string) error {
	if isHTMX(e.Request) {
		return ErrorToast(e, status, message)
	}
	SetToast(e, "error", message)
	data := buildCalculatorData(s, opts, e.Request)
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	e.Response.WriteHeader(status)
	return templates.CalculatorPage(data).Render(e.Request.Context(), e.Response)
}

// HandleQuoteExport returns a handler that renders the posted quote as a
// downloadable file in the given format.
func HandleQuoteExport(app *pocketbase.PocketBase, opts QuoteOptions, format services.ExportFormat) func(*core.RequestEvent) error {
	opts = opts.withDefaults()
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		s := parseQuoteForm(e.Request, rateTable(app, e.Request))
		req := s.Snapshot()
		table := s.Table()

		result, err := services.NewCalculator(table, opts.Policy).Quote(req)
		if err != nil {
			log.Printf("quote_export: %v", err)
			return exportFailed(e, s, opts, http.StatusUnprocessableEntity, "Cannot export: "+err.Error())
		}

		quoteNo, generatedAt := reportIdentity(e.Request, opts)
		doc := services.BuildQuoteDocument(req, result, table, s.Company(), quoteNo, generatedAt)
		doc.Title = opts.Title

		data, filename, err := services.ExportQuote(doc, format)
		if err != nil {
			log.Printf("quote_export: failed to generate: %v", err)
			var exportErr *services.ExportError
			if errors.As(err, &exportErr) && exportErr.Format == services.FormatExcel {
				return exportFailed(e, s, opts, http.StatusInternalServerError, "Failed to generate Excel file")
			}
			return exportFailed(e, s, opts, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", format.ContentType())
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(data)
		return nil
	}
}
