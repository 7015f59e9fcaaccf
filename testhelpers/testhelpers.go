// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"shippingquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app, runs collections.Setup to create all tables and
// seeds the default rate table.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := NewEmptyTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed test app: %v", err)
	}
	return app
}

// NewEmptyTestApp is NewTestApp without the seed data.
func NewEmptyTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestDestination creates a destination record and returns it.
func CreateTestDestination(t *testing.T, app *pocketbase.PocketBase, key, name string, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("destinations")
	if err != nil {
		t.Fatalf("failed to find destinations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("key", key)
	record.Set("name", name)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test destination: %v", err)
	}

	return record
}

// CreateTestRateBand creates a weight band for a destination.
func CreateTestRateBand(t *testing.T, app *pocketbase.PocketBase, destinationID string, sortOrder int, minWeight, maxWeight, rate float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("rate_bands")
	if err != nil {
		t.Fatalf("failed to find rate_bands collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("destination", destinationID)
	record.Set("sort_order", sortOrder)
	record.Set("min_weight", minWeight)
	record.Set("max_weight", maxWeight)
	record.Set("rate", rate)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test rate band: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
