package services

import (
	"fmt"
	"strings"
	"time"
)

// ExportFormat names a downloadable quote format.
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "xlsx"
)

// ContentType returns the MIME type for the format.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/pdf"
	}
}

// ExportError reports a failed export. The quote it was built from is
// unaffected.
type ExportError struct {
	Format ExportFormat
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// ExportQuote renders doc in the given format and returns the file bytes and
// a timestamped filename.
func ExportQuote(doc QuoteDocument, format ExportFormat) ([]byte, string, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPDF:
		data, err = GenerateQuotePDF(doc)
	case FormatExcel:
		data, err = GenerateQuoteExcel(doc)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, "", &ExportError{Format: format, Err: err}
	}
	return data, QuoteFilename(doc.GeneratedAt, format), nil
}

// QuoteFilename builds "shipping-quote-<ISO-8601 UTC>.<ext>" with characters
// unsafe for filenames replaced.
func QuoteFilename(generatedAt time.Time, format ExportFormat) string {
	stamp := generatedAt.UTC().Format("2006-01-02T15:04:05.000Z")
	return sanitizeFilename(fmt.Sprintf("shipping-quote-%s.%s", stamp, format))
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
