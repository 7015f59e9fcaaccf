package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// VehicleOption describes one selectable delivery vehicle.
type VehicleOption struct {
	Class  VehicleClass `json:"key"`
	Label  string       `json:"label"`
	Charge float64      `json:"charge"`
}

// RateTable is the static pricing configuration: destinations in display
// order, the delivery vehicles and the clearance fee.
type RateTable struct {
	Destinations   []Destination   `json:"destinations"`
	Vehicles       []VehicleOption `json:"vehicles"`
	Clearance      float64         `json:"clearance"`
	ClearanceLabel string          `json:"clearanceLabel"`
	CurrencySymbol string          `json:"currencySymbol"`
	ValidityDays   int             `json:"validityDays"`
}

// Destination looks up a destination by key.
func (t RateTable) Destination(key string) (Destination, bool) {
	for _, d := range t.Destinations {
		if d.Key == key {
			return d, true
		}
	}
	return Destination{}, false
}

// DefaultDestinationKey returns the key of the first configured destination.
func (t RateTable) DefaultDestinationKey() string {
	if len(t.Destinations) == 0 {
		return ""
	}
	return t.Destinations[0].Key
}

// DeliveryRates returns the flat charge per vehicle class.
func (t RateTable) DeliveryRates() map[VehicleClass]float64 {
	rates := make(map[VehicleClass]float64, len(t.Vehicles))
	for _, v := range t.Vehicles {
		rates[v.Class] = v.Charge
	}
	return rates
}

// VehicleLabel returns the display label for a vehicle class, or the raw key.
func (t RateTable) VehicleLabel(class VehicleClass) string {
	for _, v := range t.Vehicles {
		if v.Class == class {
			return v.Label
		}
	}
	return string(class)
}

// ValidVehicle reports whether class is one of the configured vehicles.
func (t RateTable) ValidVehicle(class VehicleClass) bool {
	for _, v := range t.Vehicles {
		if v.Class == class {
			return true
		}
	}
	return false
}

// DefaultRateTable returns the built-in pricing used when no configuration
// has been stored yet.
func DefaultRateTable() RateTable {
	return RateTable{
		Destinations: []Destination{
			{
				Key:  "swiss",
				Name: "Switzerland",
				Bands: []RateBand{
					{MinWeight: 1, MaxWeight: 45, Rate: 411},
					{MinWeight: 46, MaxWeight: 100, Rate: 301},
					{MinWeight: 101, MaxWeight: 99999, Rate: 271},
				},
			},
		},
		Vehicles: []VehicleOption{
			{Class: VehicleFourWheel, Label: "4 Wheels", Charge: 3500},
			{Class: VehicleSixWheel, Label: "6 Wheels", Charge: 6500},
		},
		Clearance:      5350,
		ClearanceLabel: "Clearance Charge (Include 7% VAT)",
		CurrencySymbol: "฿",
		ValidityDays:   30,
	}
}

// LoadRateTable reads the rate configuration from the destinations,
// rate_bands, vehicle_classes and quote_settings collections. Missing parts
// fall back to DefaultRateTable.
func LoadRateTable(app *pocketbase.PocketBase) (RateTable, error) {
	table := DefaultRateTable()

	destCol, err := app.FindCollectionByNameOrId("destinations")
	if err != nil {
		return table, fmt.Errorf("destinations collection not found: %w", err)
	}
	bandsCol, err := app.FindCollectionByNameOrId("rate_bands")
	if err != nil {
		return table, fmt.Errorf("rate_bands collection not found: %w", err)
	}

	destRecords, err := app.FindRecordsByFilter(destCol, "key != ''", "sort_order", 0, 0)
	if err != nil {
		return table, fmt.Errorf("query destinations: %w", err)
	}

	if len(destRecords) > 0 {
		var destinations []Destination
		for _, rec := range destRecords {
			bandRecords, err := app.FindRecordsByFilter(
				bandsCol,
				"destination = {:destId}",
				"sort_order,min_weight", 0, 0,
				map[string]any{"destId": rec.Id},
			)
			if err != nil {
				return table, fmt.Errorf("query rate bands for %s: %w", rec.GetString("key"), err)
			}

			bands := make([]RateBand, 0, len(bandRecords))
			for _, b := range bandRecords {
				bands = append(bands, RateBand{
					MinWeight: b.GetFloat("min_weight"),
					MaxWeight: b.GetFloat("max_weight"),
					Rate:      b.GetFloat("rate"),
				})
			}
			if len(bands) == 0 {
				log.Printf("rate_table: destination %q has no rate bands", rec.GetString("key"))
			}

			destinations = append(destinations, Destination{
				Key:   rec.GetString("key"),
				Name:  rec.GetString("name"),
				Bands: bands,
			})
		}
		table.Destinations = destinations
	}

	if vehiclesCol, err := app.FindCollectionByNameOrId("vehicle_classes"); err == nil {
		records, err := app.FindRecordsByFilter(vehiclesCol, "key != ''", "sort_order", 0, 0)
		if err != nil {
			return table, fmt.Errorf("query vehicle classes: %w", err)
		}
		if len(records) > 0 {
			vehicles := make([]VehicleOption, 0, len(records))
			for _, rec := range records {
				vehicles = append(vehicles, VehicleOption{
					Class:  VehicleClass(rec.GetString("key")),
					Label:  rec.GetString("label"),
					Charge: rec.GetFloat("charge"),
				})
			}
			table.Vehicles = vehicles
		}
	}

	if settingsCol, err := app.FindCollectionByNameOrId("quote_settings"); err == nil {
		records, err := app.FindRecordsByFilter(settingsCol, "id != ''", "", 1, 0)
		if err != nil {
			return table, fmt.Errorf("query quote settings: %w", err)
		}
		if len(records) > 0 {
			s := records[0]
			table.Clearance = s.GetFloat("clearance_charge")
			if label := s.GetString("clearance_label"); label != "" {
				table.ClearanceLabel = label
			}
			if sym := s.GetString("currency_symbol"); sym != "" {
				table.CurrencySymbol = sym
			}
			if days := s.GetInt("validity_days"); days > 0 {
				table.ValidityDays = days
			}
		}
	}

	return table, nil
}
