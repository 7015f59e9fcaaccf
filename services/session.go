package services

// Session is the editable state behind one calculator form. Each setter
// changes exactly one field; Snapshot hands the engine an independent copy.
type Session struct {
	table      RateTable
	company    CompanyInfo
	request    ShipmentRequest
	showReport bool
}

// NewSession starts a session with the calculator defaults: one
// 135x110x110 cm pallet size, 3 pallets, no actual weight, the first
// destination, delivery off and the table's clearance fee.
func NewSession(table RateTable) *Session {
	return &Session{
		table: table,
		request: ShipmentRequest{
			Dimensions:  Dimensions{Length: 135, Width: 110, Height: 110},
			PalletCount: 3,
			Destination: table.DefaultDestinationKey(),
			Delivery: DeliveryCharge{
				Rates: table.DeliveryRates(),
			},
			Clearance: table.Clearance,
		},
	}
}

func (s *Session) SetCompanyName(v string) { s.company.CompanyName = v }
func (s *Session) SetContactPerson(v string) { s.company.ContactPerson = v }
func (s *Session) SetContactNo(v string) { s.company.ContactNo = v }

// Dimension and weight setters treat negative input as 0.
func (s *Session) SetLength(v float64) { s.request.Dimensions.Length = max(v, 0) }
func (s *Session) SetWidth(v float64) { s.request.Dimensions.Width = max(v, 0) }
func (s *Session) SetHeight(v float64) { s.request.Dimensions.Height = max(v, 0) }

// SetPalletCount sets the pallet count; negative counts become 0.
func (s *Session) SetPalletCount(n int) {
	if n < 0 {
		n = 0
	}
	s.request.PalletCount = n
}

func (s *Session) SetActualWeight(v float64) { s.request.ActualWeight = max(v, 0) }

// SetDestination selects a destination. Unknown keys are kept so the engine
// can report them.
func (s *Session) SetDestination(key string) { s.request.Destination = key }

// SetDeliveryRequired toggles delivery and always clears the vehicle choice.
func (s *Session) SetDeliveryRequired(required bool) {
	s.request.Delivery.Required = required
	s.request.Delivery.Vehicle = VehicleNone
}

// SetVehicle selects a delivery vehicle. Classes not in the rate table reset
// the selection.
func (s *Session) SetVehicle(class VehicleClass) {
	if !s.table.ValidVehicle(class) {
		class = VehicleNone
	}
	s.request.Delivery.Vehicle = class
}

// AddCharge appends an empty additional charge and returns its index.
func (s *Session) AddCharge() int {
	s.request.AdditionalCharges = append(s.request.AdditionalCharges, AdditionalCharge{})
	return len(s.request.AdditionalCharges) - 1
}

// SetChargeName renames charge i. Out-of-range indexes are ignored.
func (s *Session) SetChargeName(i int, name string) {
	if i < 0 || i >= len(s.request.AdditionalCharges) {
		return
	}
	s.request.AdditionalCharges[i].Name = name
}

// SetChargeAmount sets the amount of charge i. Out-of-range indexes are ignored.
func (s *Session) SetChargeAmount(i int, amount float64) {
	if i < 0 || i >= len(s.request.AdditionalCharges) {
		return
	}
	s.request.AdditionalCharges[i].Amount = amount
}

// RemoveCharge deletes charge i, keeping the order of the rest.
func (s *Session) RemoveCharge(i int) {
	if i < 0 || i >= len(s.request.AdditionalCharges) {
		return
	}
	charges := make([]AdditionalCharge, 0, len(s.request.AdditionalCharges)-1)
	charges = append(charges, s.request.AdditionalCharges[:i]...)
	charges = append(charges, s.request.AdditionalCharges[i+1:]...)
	s.request.AdditionalCharges = charges
}

func (s *Session) SetShowReport(show bool) { s.showReport = show }

func (s *Session) ShowReport() bool { return s.showReport }
func (s *Session) Company() CompanyInfo { return s.company }
func (s *Session) Table() RateTable { return s.table }
func (s *Session) ChargeCount() int { return len(s.request.AdditionalCharges) }

// Snapshot returns a deep copy of the current request.
func (s *Session) Snapshot() ShipmentRequest {
	return s.request.Clone()
}
