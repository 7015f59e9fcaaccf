package collections_test

import (
	"testing"

	"shippingquote/collections"
	"shippingquote/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	destCol, _ := app.FindCollectionByNameOrId("destinations")
	dests, err := app.FindAllRecords(destCol)
	if err != nil {
		t.Fatalf("query destinations error: %v", err)
	}
	if len(dests) != 1 {
		t.Fatalf("expected 1 destination, got %d", len(dests))
	}
	if dests[0].GetString("key") != "swiss" || dests[0].GetString("name") != "Switzerland" {
		t.Errorf("unexpected destination %q/%q", dests[0].GetString("key"), dests[0].GetString("name"))
	}

	bands, err := app.FindRecordsByFilter("rate_bands", "destination = {:id}", "sort_order", 0, 0, map[string]any{"id": dests[0].Id})
	if err != nil {
		t.Fatalf("query rate bands error: %v", err)
	}
	wantBands := [][3]float64{{1, 45, 411}, {46, 100, 301}, {101, 99999, 271}}
	if len(bands) != len(wantBands) {
		t.Fatalf("expected %d bands, got %d", len(wantBands), len(bands))
	}
	for i, want := range wantBands {
		got := [3]float64{bands[i].GetFloat("min_weight"), bands[i].GetFloat("max_weight"), bands[i].GetFloat("rate")}
		if got != want {
			t.Errorf("band %d = %v, want %v", i, got, want)
		}
	}

	vehicles, _ := app.FindRecordsByFilter("vehicle_classes", "key != ''", "sort_order", 0, 0)
	if len(vehicles) != 2 {
		t.Fatalf("expected 2 vehicle classes, got %d", len(vehicles))
	}
	if vehicles[0].GetFloat("charge") != 3500 || vehicles[1].GetFloat("charge") != 6500 {
		t.Errorf("unexpected vehicle charges %v / %v", vehicles[0].GetFloat("charge"), vehicles[1].GetFloat("charge"))
	}

	settings, err := app.FindFirstRecordByFilter("quote_settings", "id != ''")
	if err != nil {
		t.Fatalf("quote settings not seeded: %v", err)
	}
	if settings.GetFloat("clearance_charge") != 5350 {
		t.Errorf("clearance_charge = %v, want 5350", settings.GetFloat("clearance_charge"))
	}
	if settings.GetInt("validity_days") != 30 {
		t.Errorf("validity_days = %d, want 30", settings.GetInt("validity_days"))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)

	for i := 0; i < 2; i++ {
		if err := collections.Seed(app); err != nil {
			t.Fatalf("Seed() run %d error: %v", i+1, err)
		}
	}

	counts := map[string]int{
		"destinations":    1,
		"rate_bands":      3,
		"vehicle_classes": 2,
		"quote_settings":  1,
	}
	for name, want := range counts {
		col, _ := app.FindCollectionByNameOrId(name)
		records, _ := app.FindAllRecords(col)
		if len(records) != want {
			t.Errorf("%s: expected %d records after two seeds, got %d", name, want, len(records))
		}
	}
}

func TestSeed_SkipsWhenDataExists(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)
	testhelpers.CreateTestDestination(t, app, "jp", "Japan", 1)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	destCol, _ := app.FindCollectionByNameOrId("destinations")
	dests, _ := app.FindAllRecords(destCol)
	if len(dests) != 1 || dests[0].GetString("key") != "jp" {
		t.Errorf("seed should not touch an edited rate table, got %d destinations", len(dests))
	}

	// Other collections are still filled independently
	vehicleCol, _ := app.FindCollectionByNameOrId("vehicle_classes")
	vehicles, _ := app.FindAllRecords(vehicleCol)
	if len(vehicles) != 2 {
		t.Errorf("expected vehicle classes to be seeded, got %d", len(vehicles))
	}
}
