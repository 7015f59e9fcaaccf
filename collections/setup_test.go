package collections_test

import (
	"testing"

	"shippingquote/collections"
	"shippingquote/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"destinations",
	"rate_bands",
	"vehicle_classes",
	"quote_settings",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t) // Setup() already called once

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_Fields(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)

	tests := []struct {
		collection string
		fields     []string
	}{
		{"destinations", []string{"key", "name", "sort_order"}},
		{"rate_bands", []string{"destination", "sort_order", "min_weight", "max_weight", "rate"}},
		{"vehicle_classes", []string{"key", "label", "charge", "sort_order"}},
		{"quote_settings", []string{"clearance_charge", "clearance_label", "currency_symbol", "validity_days"}},
	}

	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			col, err := app.FindCollectionByNameOrId(tt.collection)
			if err != nil {
				t.Fatalf("collection not found: %v", err)
			}
			for _, f := range tt.fields {
				if col.Fields.GetByName(f) == nil {
					t.Errorf("%s: missing field %q", tt.collection, f)
				}
			}
		})
	}
}

func TestSetup_RateBandsRelation(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)
	col, _ := app.FindCollectionByNameOrId("rate_bands")
	destinations, _ := app.FindCollectionByNameOrId("destinations")

	rf, ok := col.Fields.GetByName("destination").(*core.RelationField)
	if !ok {
		t.Fatal("rate_bands.destination is not a RelationField")
	}
	if rf.CollectionId != destinations.Id {
		t.Errorf("rate_bands.destination points at %q, want %q", rf.CollectionId, destinations.Id)
	}
	if rf.MaxSelect != 1 {
		t.Errorf("expected MaxSelect=1, got %d", rf.MaxSelect)
	}
	if !rf.CascadeDelete {
		t.Error("expected CascadeDelete=true")
	}
}

func TestSetup_CascadeDeleteBands(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)

	dest := testhelpers.CreateTestDestination(t, app, "jp", "Japan", 1)
	band := testhelpers.CreateTestRateBand(t, app, dest.Id, 1, 1, 500, 180)

	if err := app.Delete(dest); err != nil {
		t.Fatalf("failed to delete destination: %v", err)
	}
	if _, err := app.FindRecordById("rate_bands", band.Id); err == nil {
		t.Error("rate band should have been cascade-deleted with its destination")
	}
}

func TestSetup_UniqueDestinationKey(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)
	testhelpers.CreateTestDestination(t, app, "jp", "Japan", 1)

	col, _ := app.FindCollectionByNameOrId("destinations")
	dup := core.NewRecord(col)
	dup.Set("key", "jp")
	dup.Set("name", "Japan again")
	if err := app.Save(dup); err == nil {
		t.Error("expected duplicate destination key to be rejected")
	}
}
