// Package templates holds the templ components for the quote calculator.
package templates

import (
	"fmt"
	"strconv"

	"shippingquote/services"
)

// CalculatorData is everything the calculator form and its live summary need.
type CalculatorData struct {
	Title      string
	Company    services.CompanyInfo
	Request    services.ShipmentRequest
	Table      services.RateTable
	Result     services.QuoteResult
	Error      string
	ShowReport bool
	Report     *services.QuoteDocument
}

func (d CalculatorData) money(v float64) string {
	return services.FormatMoney(d.Table.CurrencySymbol, v)
}

func (d CalculatorData) vehicleOption(v services.VehicleOption) string {
	return fmt.Sprintf("%s (%s)", v.Label, d.money(v.Charge))
}

func removeChargeURL(i int) string {
	return fmt.Sprintf("/quote/form?action=remove_charge&index=%d", i)
}

func bandRange(b services.RateBand) string {
	return formatInput(b.MinWeight) + " – " + formatInput(b.MaxWeight)
}

func bandRowClass(doc services.QuoteDocument, i int) string {
	if i == doc.AppliedBand {
		return "font-bold"
	}
	return ""
}

// formatInput prints a number the way the user would type it back.
func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
