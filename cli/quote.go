// Package cli holds the command-line entry points registered on the
// pocketbase root command.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cobra"

	"shippingquote/collections"
	"shippingquote/config"
	"shippingquote/services"
)

type quoteFlags struct {
	length      float64
	width       float64
	height      float64
	pallets     int
	weight      float64
	destination string
	vehicle     string
	charges     []string
	company     string
	pdfPath     string
	xlsxPath    string
}

// NewQuoteCommand returns the "quote" command, which prices one shipment
// against the stored rate table and optionally writes the exports.
func NewQuoteCommand(app *pocketbase.PocketBase, cfg config.Config) *cobra.Command {
	f := &quoteFlags{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Calculate a shipping quote from the command line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collections.Setup(app)
			if err := collections.Seed(app); err != nil {
				return fmt.Errorf("seed rate table: %w", err)
			}

			table, err := services.LoadRateTable(app)
			if err != nil {
				return fmt.Errorf("load rate table: %w", err)
			}

			s, err := f.session(table)
			if err != nil {
				return err
			}

			req := s.Snapshot()
			result, err := services.NewCalculator(table, cfg.ChargePolicy).Quote(req)
			if err != nil {
				return err
			}

			ids := services.NewQuoteIDSource(cfg.QuoteIDMode)
			doc := services.BuildQuoteDocument(req, result, table, s.Company(), ids.NextQuoteID(), time.Now())
			doc.Title = cfg.QuoteTitle

			printQuote(cmd.OutOrStdout(), doc)

			if f.pdfPath != "" {
				if err := writeExport(doc, services.FormatPDF, f.pdfPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", f.pdfPath)
			}
			if f.xlsxPath != "" {
				if err := writeExport(doc, services.FormatExcel, f.xlsxPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Excel written to %s\n", f.xlsxPath)
			}
			return nil
		},
	}

	defaults := services.NewSession(services.DefaultRateTable()).Snapshot()
	flags := cmd.Flags()
	flags.Float64Var(&f.length, "length", defaults.Dimensions.Length, "pallet length in cm")
	flags.Float64Var(&f.width, "width", defaults.Dimensions.Width, "pallet width in cm")
	flags.Float64Var(&f.height, "height", defaults.Dimensions.Height, "pallet height in cm")
	flags.IntVar(&f.pallets, "pallets", defaults.PalletCount, "number of pallets")
	flags.Float64Var(&f.weight, "weight", 0, "actual weight per pallet in kg")
	flags.StringVar(&f.destination, "destination", "", "destination key (defaults to the first configured)")
	flags.StringVar(&f.vehicle, "vehicle", "", "delivery vehicle class; enables delivery")
	flags.StringArrayVar(&f.charges, "charge", nil, `additional charge as "Name=Amount" (repeatable)`)
	flags.StringVar(&f.company, "company", "", "company name printed on the quote")
	flags.StringVar(&f.pdfPath, "pdf", "", "write the quote as PDF to this path")
	flags.StringVar(&f.xlsxPath, "xlsx", "", "write the quote as Excel to this path")

	return cmd
}

// session replays the flags onto a calculator session.
func (f *quoteFlags) session(table services.RateTable) (*services.Session, error) {
	s := services.NewSession(table)
	s.SetCompanyName(f.company)
	s.SetLength(f.length)
	s.SetWidth(f.width)
	s.SetHeight(f.height)
	s.SetPalletCount(f.pallets)
	s.SetActualWeight(f.weight)
	if f.destination != "" {
		s.SetDestination(f.destination)
	}

	if f.vehicle != "" {
		class := services.VehicleClass(f.vehicle)
		if !table.ValidVehicle(class) {
			return nil, fmt.Errorf("unknown vehicle %q", f.vehicle)
		}
		s.SetDeliveryRequired(true)
		s.SetVehicle(class)
	}

	for _, raw := range f.charges {
		name, amount, err := parseChargeFlag(raw)
		if err != nil {
			return nil, err
		}
		i := s.AddCharge()
		s.SetChargeName(i, name)
		s.SetChargeAmount(i, amount)
	}
	return s, nil
}

// parseChargeFlag splits "Name=Amount". The amount goes through the same
// lenient coercion as the web form.
func parseChargeFlag(raw string) (string, float64, error) {
	name, amount, ok := strings.Cut(raw, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid --charge %q: expected Name=Amount", raw)
	}
	return strings.TrimSpace(name), services.ParseNumber(amount), nil
}

func printQuote(w io.Writer, doc services.QuoteDocument) {
	fmt.Fprintf(w, "%s\n", doc.Title)
	fmt.Fprintf(w, "Quote No: %s   Date: %s   Destination: %s\n\n", doc.QuoteNo, doc.Date, doc.Destination)
	for _, wl := range doc.Weights {
		fmt.Fprintf(w, "  %-28s %s\n", wl.Label+":", wl.Value)
	}
	fmt.Fprintln(w)
	for _, cl := range doc.CostLines {
		fmt.Fprintf(w, "  %-44s %14s\n", cl.Label, doc.Money(cl.Amount))
	}
	fmt.Fprintf(w, "  %-44s %14s\n", "Total Cost", doc.Money(doc.TotalCost))
	for _, n := range doc.Notes {
		fmt.Fprintf(w, "\n%s", n)
	}
	fmt.Fprintln(w)
}

func writeExport(doc services.QuoteDocument, format services.ExportFormat, path string) error {
	data, _, err := services.ExportQuote(doc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
