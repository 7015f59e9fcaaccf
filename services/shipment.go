package services

// VolumetricDivisor is the number of cubic centimetres billed as one kilogram.
const VolumetricDivisor = 6000

// Dimensions of a single pallet in centimetres.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RateBand maps an inclusive weight range (kg) to a per-kilogram rate.
type RateBand struct {
	MinWeight float64 `json:"minWeight"`
	MaxWeight float64 `json:"maxWeight"`
	Rate      float64 `json:"rate"`
}

// Destination is a named shipping destination with its ordered rate bands.
// Bands are expected in ascending order; the last band's MaxWeight is the
// effective "and above" ceiling.
type Destination struct {
	Key   string     `json:"key"`
	Name  string     `json:"name"`
	Bands []RateBand `json:"rates"`
}

// VehicleClass identifies the truck used for local delivery. The zero value
// means no vehicle has been selected.
type VehicleClass string

const (
	VehicleNone      VehicleClass = ""
	VehicleFourWheel VehicleClass = "4wheel"
	VehicleSixWheel  VehicleClass = "6wheel"
)

// DeliveryCharge holds the delivery toggle, the selected vehicle and the flat
// charge per vehicle class.
type DeliveryCharge struct {
	Required bool                     `json:"required"`
	Vehicle  VehicleClass             `json:"vehicle"`
	Rates    map[VehicleClass]float64 `json:"rates"`
}

// AdditionalCharge is a free-form surcharge. Amount may be zero or negative.
type AdditionalCharge struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// ShipmentRequest is the complete input to the cost engine.
type ShipmentRequest struct {
	Dimensions        Dimensions         `json:"dimensions"`
	PalletCount       int                `json:"palletCount"`
	ActualWeight      float64            `json:"actualWeight"`
	Destination       string             `json:"destination"`
	Delivery          DeliveryCharge     `json:"delivery"`
	Clearance         float64            `json:"clearance"`
	AdditionalCharges []AdditionalCharge `json:"additionalCharges"`
}

// QuoteResult is the derived cost breakdown for one ShipmentRequest.
type QuoteResult struct {
	VolumetricWeightPerPallet float64 `json:"volumeWeight"`
	TotalVolumetricWeight     float64 `json:"totalVolumeWeight"`
	TotalActualWeight         float64 `json:"totalActualWeight"`
	ChargeableWeight          float64 `json:"chargeableWeight"`
	AppliedRate               float64 `json:"appliedRate"`
	FreightCost               float64 `json:"freightCost"`
	DeliveryCost              float64 `json:"deliveryCost"`
	ClearanceCost             float64 `json:"clearanceCost"`
	AdditionalTotal           float64 `json:"additionalTotal"`
	TotalCost                 float64 `json:"totalCost"`
}

// CompanyInfo is the free-text customer block printed on a quote.
type CompanyInfo struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	ContactNo     string `json:"contactNo"`
}

// Clone returns a deep copy so later edits never leak into r.
func (r ShipmentRequest) Clone() ShipmentRequest {
	c := r
	if r.Delivery.Rates != nil {
		c.Delivery.Rates = make(map[VehicleClass]float64, len(r.Delivery.Rates))
		for k, v := range r.Delivery.Rates {
			c.Delivery.Rates[k] = v
		}
	}
	if r.AdditionalCharges != nil {
		c.AdditionalCharges = make([]AdditionalCharge, len(r.AdditionalCharges))
		copy(c.AdditionalCharges, r.AdditionalCharges)
	}
	return c
}
