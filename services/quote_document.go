package services

import (
	"fmt"
	"time"
)

// DefaultQuoteTitle is the heading printed on every quote.
const DefaultQuoteTitle = "Export Shipping Cost Quote"

// CostLine is one row of the cost breakdown.
type CostLine struct {
	Label  string
	Amount float64
}

// DetailLine is a label/value pair in the weight details grid.
type DetailLine struct {
	Label string
	Value string
}

// QuoteDocument holds everything the printable quote shows. It is built once
// per render and never changes afterwards.
type QuoteDocument struct {
	Title          string
	QuoteNo        string
	GeneratedAt    time.Time
	Date           string
	ValidUntil     string
	Company        CompanyInfo
	Destination    string
	Dimensions     Dimensions
	PalletCount    int
	Weights        []DetailLine
	CostLines      []CostLine
	TotalCost      float64
	RateStructure  []RateBand
	AppliedRate    float64
	AppliedBand    int
	CurrencySymbol string
	Notes          []string

	Request ShipmentRequest
	Result  QuoteResult
}

// Money formats amount with the document's currency symbol.
func (d QuoteDocument) Money(amount float64) string {
	return FormatMoney(d.CurrencySymbol, amount)
}

// BuildQuoteDocument assembles the printable quote from an engine result.
func BuildQuoteDocument(req ShipmentRequest, result QuoteResult, table RateTable, company CompanyInfo, quoteNo string, generatedAt time.Time) QuoteDocument {
	destName := req.Destination
	var bands []RateBand
	if dest, ok := table.Destination(req.Destination); ok {
		destName = dest.Name
		bands = append(bands, dest.Bands...)
	}

	validity := table.ValidityDays
	if validity <= 0 {
		validity = 30
	}

	doc := QuoteDocument{
		Title:          DefaultQuoteTitle,
		QuoteNo:        quoteNo,
		GeneratedAt:    generatedAt,
		Date:           generatedAt.Format("02 Jan 2006"),
		ValidUntil:     generatedAt.AddDate(0, 0, validity).Format("02 Jan 2006"),
		Company:        company,
		Destination:    destName,
		Dimensions:     req.Dimensions,
		PalletCount:    req.PalletCount,
		TotalCost:      result.TotalCost,
		RateStructure:  bands,
		AppliedRate:    result.AppliedRate,
		AppliedBand:    AppliedBandIndex(bands, result.ChargeableWeight),
		CurrencySymbol: table.CurrencySymbol,
		Request:        req.Clone(),
		Result:         result,
	}

	doc.Weights = []DetailLine{
		{"Volume Weight per Pallet", formatWeight(result.VolumetricWeightPerPallet)},
		{"Total Volume Weight", formatWeight(result.TotalVolumetricWeight)},
		{"Actual Weight per Pallet", formatWeight(req.ActualWeight)},
		{"Total Actual Weight", formatWeight(result.TotalActualWeight)},
		{"Chargeable Weight", formatWeight(result.ChargeableWeight)},
		{"Number of Pallets", fmt.Sprintf("%d", req.PalletCount)},
	}

	doc.CostLines = append(doc.CostLines, CostLine{
		Label: fmt.Sprintf("Freight Cost (%s/kg × %skg)",
			formatNumber(result.AppliedRate), formatNumber(result.ChargeableWeight)),
		Amount: result.FreightCost,
	})
	if req.Delivery.Required && req.Delivery.Vehicle != VehicleNone {
		doc.CostLines = append(doc.CostLines, CostLine{
			Label:  fmt.Sprintf("Delivery Charge (%s)", table.VehicleLabel(req.Delivery.Vehicle)),
			Amount: result.DeliveryCost,
		})
	}
	clearanceLabel := table.ClearanceLabel
	if clearanceLabel == "" {
		clearanceLabel = "Clearance Charge"
	}
	doc.CostLines = append(doc.CostLines, CostLine{Label: clearanceLabel, Amount: result.ClearanceCost})
	for _, c := range req.AdditionalCharges {
		label := c.Name
		if label == "" {
			label = "Additional Charge"
		}
		doc.CostLines = append(doc.CostLines, CostLine{Label: label, Amount: c.Amount})
	}

	doc.Notes = []string{
		fmt.Sprintf("Rate validity: %d days from quote date (until %s)", validity, doc.ValidUntil),
		"Note: All prices are exclusive of VAT",
	}

	return doc
}
