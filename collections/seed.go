package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type bandDef struct {
	minWeight float64
	maxWeight float64
	rate      float64
}

type destinationDef struct {
	key   string
	name  string
	bands []bandDef
}

type vehicleDef struct {
	key    string
	label  string
	charge float64
}

// ── Seed data ────────────────────────────────────────────────────────────

var seedDestinations = []destinationDef{
	{
		key:  "swiss",
		name: "Switzerland",
		bands: []bandDef{
			{minWeight: 1, maxWeight: 45, rate: 411},
			{minWeight: 46, maxWeight: 100, rate: 301},
			{minWeight: 101, maxWeight: 99999, rate: 271},
		},
	},
}

var seedVehicles = []vehicleDef{
	{key: "4wheel", label: "4 Wheels", charge: 3500},
	{key: "6wheel", label: "6 Wheels", charge: 6500},
}

const (
	seedClearanceCharge = 5350
	seedClearanceLabel  = "Clearance Charge (Include 7% VAT)"
	seedCurrencySymbol  = "฿"
	seedValidityDays    = 30
)

// Seed fills the rate configuration collections on first start. Each
// collection is only seeded while it is empty, so edits made in the admin UI
// survive restarts.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedRateTable(app); err != nil {
		return err
	}
	if err := seedVehicleClasses(app); err != nil {
		return err
	}
	return seedQuoteSettings(app)
}

func seedRateTable(app *pocketbase.PocketBase) error {
	destCol, err := app.FindCollectionByNameOrId("destinations")
	if err != nil {
		return fmt.Errorf("seed: could not find destinations collection: %w", err)
	}
	bandsCol, err := app.FindCollectionByNameOrId("rate_bands")
	if err != nil {
		return fmt.Errorf("seed: could not find rate_bands collection: %w", err)
	}

	existing, err := app.FindAllRecords(destCol)
	if err != nil {
		return fmt.Errorf("seed: could not query destinations: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: destinations collection is empty, inserting rate table")

	for i, d := range seedDestinations {
		dest := core.NewRecord(destCol)
		dest.Set("key", d.key)
		dest.Set("name", d.name)
		dest.Set("sort_order", i+1)
		if err := app.Save(dest); err != nil {
			return fmt.Errorf("seed: could not save destination %q: %w", d.key, err)
		}

		for j, b := range d.bands {
			band := core.NewRecord(bandsCol)
			band.Set("destination", dest.Id)
			band.Set("sort_order", j+1)
			band.Set("min_weight", b.minWeight)
			band.Set("max_weight", b.maxWeight)
			band.Set("rate", b.rate)
			if err := app.Save(band); err != nil {
				return fmt.Errorf("seed: could not save rate band %d for %q: %w", j+1, d.key, err)
			}
		}
	}

	return nil
}

func seedVehicleClasses(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("vehicle_classes")
	if err != nil {
		return fmt.Errorf("seed: could not find vehicle_classes collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query vehicle_classes: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i, v := range seedVehicles {
		rec := core.NewRecord(col)
		rec.Set("key", v.key)
		rec.Set("label", v.label)
		rec.Set("charge", v.charge)
		rec.Set("sort_order", i+1)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save vehicle class %q: %w", v.key, err)
		}
	}
	return nil
}

func seedQuoteSettings(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("quote_settings")
	if err != nil {
		return fmt.Errorf("seed: could not find quote_settings collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query quote_settings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	rec := core.NewRecord(col)
	rec.Set("clearance_charge", seedClearanceCharge)
	rec.Set("clearance_label", seedClearanceLabel)
	rec.Set("currency_symbol", seedCurrencySymbol)
	rec.Set("validity_days", seedValidityDays)
	if err := app.Save(rec); err != nil {
		return fmt.Errorf("seed: could not save quote settings: %w", err)
	}
	return nil
}
