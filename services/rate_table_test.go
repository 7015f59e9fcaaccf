package services

import (
	"testing"

	"shippingquote/testhelpers"
)

func TestDefaultRateTable(t *testing.T) {
	table := DefaultRateTable()

	if table.DefaultDestinationKey() != "swiss" {
		t.Errorf("DefaultDestinationKey() = %q", table.DefaultDestinationKey())
	}
	if table.VehicleLabel(VehicleFourWheel) != "4 Wheels" {
		t.Errorf("VehicleLabel(4wheel) = %q", table.VehicleLabel(VehicleFourWheel))
	}
	if table.VehicleLabel("boat") != "boat" {
		t.Error("unknown vehicle label should echo the key")
	}
	if table.ValidVehicle(VehicleNone) {
		t.Error("the empty class is not a selectable vehicle")
	}
	if _, ok := table.Destination("nowhere"); ok {
		t.Error("unexpected destination found")
	}
}

func TestRateTable_EmptyDestinations(t *testing.T) {
	if got := (RateTable{}).DefaultDestinationKey(); got != "" {
		t.Errorf("expected empty key, got %q", got)
	}
}

func TestLoadRateTable_Seeded(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	table, err := LoadRateTable(app)
	if err != nil {
		t.Fatalf("LoadRateTable() error = %v", err)
	}

	want := DefaultRateTable()
	swiss, ok := table.Destination("swiss")
	if !ok {
		t.Fatal("swiss destination missing")
	}
	wantSwiss, _ := want.Destination("swiss")
	if len(swiss.Bands) != len(wantSwiss.Bands) {
		t.Fatalf("expected %d bands, got %d", len(wantSwiss.Bands), len(swiss.Bands))
	}
	for i := range swiss.Bands {
		if swiss.Bands[i] != wantSwiss.Bands[i] {
			t.Errorf("band %d = %+v, want %+v", i, swiss.Bands[i], wantSwiss.Bands[i])
		}
	}
	if table.Clearance != want.Clearance || table.ClearanceLabel != want.ClearanceLabel {
		t.Errorf("clearance = %v %q", table.Clearance, table.ClearanceLabel)
	}
	if len(table.Vehicles) != 2 || table.Vehicles[1].Charge != 6500 {
		t.Errorf("unexpected vehicles %+v", table.Vehicles)
	}
	if table.ValidityDays != 30 || table.CurrencySymbol != "฿" {
		t.Errorf("unexpected settings %d %q", table.ValidityDays, table.CurrencySymbol)
	}
}

func TestLoadRateTable_EmptyFallsBackToDefaults(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)

	table, err := LoadRateTable(app)
	if err != nil {
		t.Fatalf("LoadRateTable() error = %v", err)
	}
	if _, ok := table.Destination("swiss"); !ok {
		t.Error("expected default destination")
	}
	if table.Clearance != 5350 {
		t.Errorf("expected default clearance, got %v", table.Clearance)
	}
}

func TestLoadRateTable_AddedDestination(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	dest := testhelpers.CreateTestDestination(t, app, "de", "Germany", 2)
	testhelpers.CreateTestRateBand(t, app, dest.Id, 2, 101, 99999, 250)
	testhelpers.CreateTestRateBand(t, app, dest.Id, 1, 1, 100, 320)
	testhelpers.CreateTestDestination(t, app, "empty", "Nowhere", 3)

	table, err := LoadRateTable(app)
	if err != nil {
		t.Fatalf("LoadRateTable() error = %v", err)
	}
	if len(table.Destinations) != 3 {
		t.Fatalf("expected 3 destinations, got %d", len(table.Destinations))
	}
	if table.Destinations[1].Key != "de" {
		t.Errorf("destinations not in sort order: %+v", table.Destinations)
	}

	de, _ := table.Destination("de")
	if len(de.Bands) != 2 || de.Bands[0].Rate != 320 {
		t.Errorf("bands not in sort order: %+v", de.Bands)
	}

	req := NewSession(table).Snapshot()
	req.Destination = "de"
	result, err := CalculateQuote(req, table)
	if err != nil {
		t.Fatalf("CalculateQuote() error = %v", err)
	}
	if result.AppliedRate != 250 {
		t.Errorf("AppliedRate = %v, want 250", result.AppliedRate)
	}

	req.Destination = "empty"
	result, err = CalculateQuote(req, table)
	if err != nil {
		t.Fatalf("CalculateQuote() error = %v", err)
	}
	if result.AppliedRate != 0 || result.FreightCost != 0 {
		t.Errorf("destination without bands should have no freight, got %+v", result)
	}
}
