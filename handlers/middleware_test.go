package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shippingquote/services"
	"shippingquote/testhelpers"
)

func TestGetRateTable_FromContext(t *testing.T) {
	expected := services.DefaultRateTable()
	expected.Clearance = 1234
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), RateTableKey, expected))

	got, ok := GetRateTable(req)
	if !ok {
		t.Fatal("expected rate table in context")
	}
	if got.Clearance != 1234 {
		t.Errorf("expected clearance 1234, got %v", got.Clearance)
	}
}

func TestGetRateTable_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := GetRateTable(req); ok {
		t.Error("expected no rate table in a bare request")
	}
}

func TestRateTableMiddleware_LoadsSeededTable(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	// Next is a no-op on a bare event, so only the stored table is checked
	if err := RateTableMiddleware(app)(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}

	table, ok := GetRateTable(e.Request)
	if !ok {
		t.Fatal("middleware did not store a rate table")
	}
	dest, ok := table.Destination("swiss")
	if !ok {
		t.Fatal("expected seeded swiss destination")
	}
	if len(dest.Bands) != 3 {
		t.Errorf("expected 3 bands, got %d", len(dest.Bands))
	}
	if table.Clearance != 5350 {
		t.Errorf("expected clearance 5350, got %v", table.Clearance)
	}
}

func TestRateTableMiddleware_PicksUpEdits(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	settings, err := app.FindFirstRecordByFilter("quote_settings", "id != ''")
	if err != nil {
		t.Fatalf("quote_settings not seeded: %v", err)
	}
	settings.Set("clearance_charge", 6000)
	if err := app.Save(settings); err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}

	e := newTestRequestEvent(app, httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_ = RateTableMiddleware(app)(e)

	table, _ := GetRateTable(e.Request)
	if table.Clearance != 6000 {
		t.Errorf("expected edited clearance 6000, got %v", table.Clearance)
	}
}

func TestRateTable_FallsBackWithoutMiddleware(t *testing.T) {
	app := testhelpers.NewEmptyTestApp(t)

	table := rateTable(app, httptest.NewRequest(http.MethodGet, "/", nil))
	if _, ok := table.Destination("swiss"); !ok {
		t.Error("expected built-in defaults for an empty database")
	}
}
