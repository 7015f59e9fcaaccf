// Package services holds the freight cost engine, the quote document builder
// and the PDF/Excel exporters.
package services

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownDestination is returned when a request names a destination
	// that is not in the rate table.
	ErrUnknownDestination = errors.New("unknown destination")

	// ErrNegativeCharge is returned by a Calculator using ChargesRejectNegative
	// when an additional charge has a negative amount.
	ErrNegativeCharge = errors.New("negative additional charge")
)

// VolumetricWeightPerPallet returns ceil(l*w*h / 6000) in kilograms. A
// pallet with any side <= 0 has no volume.
func VolumetricWeightPerPallet(d Dimensions) float64 {
	if d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
		return 0
	}
	return math.Ceil((d.Length * d.Width * d.Height) / VolumetricDivisor)
}

// TotalVolumetricWeight is the per-pallet volumetric weight times the pallet count.
func TotalVolumetricWeight(req ShipmentRequest) float64 {
	return VolumetricWeightPerPallet(req.Dimensions) * float64(max(req.PalletCount, 0))
}

// TotalActualWeight is the actual weight per pallet times the pallet count.
// Negative weights and counts count as 0.
func TotalActualWeight(req ShipmentRequest) float64 {
	return max(req.ActualWeight, 0) * float64(max(req.PalletCount, 0))
}

// ChargeableWeight is the larger of the total volumetric and total actual
// weight. Both totals are clamped at 0, so the result is never negative.
func ChargeableWeight(req ShipmentRequest) float64 {
	return math.Max(TotalVolumetricWeight(req), TotalActualWeight(req))
}

// AppliedBandIndex scans bands in order and returns the index of the first
// band with MinWeight <= weight <= MaxWeight. When no band matches the last
// band applies. It returns -1 when there are no bands.
func AppliedBandIndex(bands []RateBand, weight float64) int {
	for i, b := range bands {
		if weight >= b.MinWeight && weight <= b.MaxWeight {
			return i
		}
	}
	return len(bands) - 1
}

// ApplicableRate returns the per-kg rate of the band that prices weight. A
// destination without bands has rate 0.
func ApplicableRate(dest Destination, weight float64) float64 {
	i := AppliedBandIndex(dest.Bands, weight)
	if i < 0 {
		return 0
	}
	return dest.Bands[i].Rate
}

// DeliveryCost returns the flat vehicle charge when delivery is required and a
// vehicle is selected, and 0 otherwise.
func DeliveryCost(d DeliveryCharge) float64 {
	if !d.Required || d.Vehicle == VehicleNone {
		return 0
	}
	return d.Rates[d.Vehicle]
}

// AdditionalTotal sums all additional charge amounts, discounts included.
func AdditionalTotal(charges []AdditionalCharge) float64 {
	var sum float64
	for _, c := range charges {
		sum += c.Amount
	}
	return sum
}

// CalculateQuote computes the full cost breakdown for req against table.
func CalculateQuote(req ShipmentRequest, table RateTable) (QuoteResult, error) {
	dest, ok := table.Destination(req.Destination)
	if !ok {
		return QuoteResult{}, fmt.Errorf("%w: %q", ErrUnknownDestination, req.Destination)
	}

	chargeable := ChargeableWeight(req)
	rate := ApplicableRate(dest, chargeable)

	result := QuoteResult{
		VolumetricWeightPerPallet: VolumetricWeightPerPallet(req.Dimensions),
		TotalVolumetricWeight:     TotalVolumetricWeight(req),
		TotalActualWeight:         TotalActualWeight(req),
		ChargeableWeight:          chargeable,
		AppliedRate:               rate,
		FreightCost:               chargeable * rate,
		DeliveryCost:              DeliveryCost(req.Delivery),
		ClearanceCost:             req.Clearance,
		AdditionalTotal:           AdditionalTotal(req.AdditionalCharges),
	}
	result.TotalCost = result.FreightCost + result.DeliveryCost + result.ClearanceCost + result.AdditionalTotal
	return result, nil
}

// ChargePolicy controls how strictly additional charges are validated.
type ChargePolicy int

const (
	// ChargesPermissive accepts any amount; negatives act as discounts.
	ChargesPermissive ChargePolicy = iota
	// ChargesRejectNegative refuses requests with negative amounts.
	ChargesRejectNegative
)

// ParseChargePolicy maps a config value to a ChargePolicy. Unknown values are
// permissive.
func ParseChargePolicy(s string) ChargePolicy {
	switch s {
	case "reject_negative", "strict":
		return ChargesRejectNegative
	default:
		return ChargesPermissive
	}
}

func (p ChargePolicy) String() string {
	if p == ChargesRejectNegative {
		return "reject_negative"
	}
	return "permissive"
}

// Calculator binds a rate table and a charge policy.
type Calculator struct {
	Table  RateTable
	Policy ChargePolicy
}

// NewCalculator creates a Calculator for table using policy.
func NewCalculator(table RateTable, policy ChargePolicy) *Calculator {
	return &Calculator{Table: table, Policy: policy}
}

// Quote validates req against the policy and computes its QuoteResult.
func (c *Calculator) Quote(req ShipmentRequest) (QuoteResult, error) {
	if c.Policy == ChargesRejectNegative {
		for i, ch := range req.AdditionalCharges {
			if ch.Amount < 0 {
				return QuoteResult{}, fmt.Errorf("%w: #%d %q (%v)", ErrNegativeCharge, i+1, ch.Name, ch.Amount)
			}
		}
	}
	return CalculateQuote(req, c.Table)
}
