package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func parseToast(t *testing.T, header string) (map[string]json.RawMessage, map[string]string) {
	t.Helper()

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(header), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}
	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return parsed, toast
}

func TestSetToast_Types(t *testing.T) {
	tests := []struct {
		name      string
		toastType string
		message   string
	}{
		{"success", "success", "Quote downloaded"},
		{"error", "error", "Failed to generate PDF file"},
		{"quotes", "info", `Destination "swiss" updated`},
		{"html", "info", `<script>alert("x")</script>`},
		{"unicode", "info", "Total ฿227,299"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := &core.RequestEvent{}
			e.Response = rec

			SetToast(e, tt.toastType, tt.message)

			trigger := rec.Header().Get("HX-Trigger")
			if trigger == "" {
				t.Fatal("expected HX-Trigger header to be set")
			}
			_, toast := parseToast(t, trigger)
			if toast["type"] != tt.toastType {
				t.Errorf("expected type %q, got %q", tt.toastType, toast["type"])
			}
			if toast["message"] != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, toast["message"])
			}
		})
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec
	rec.Header().Set("HX-Trigger", `{"quoteUpdated":{"id":"Q000001"}}`)

	SetToast(e, "success", "Merged toast")

	parsed, toast := parseToast(t, rec.Header().Get("HX-Trigger"))
	if _, ok := parsed["quoteUpdated"]; !ok {
		t.Error("expected quoteUpdated key to be preserved after merge")
	}
	if toast["message"] != "Merged toast" {
		t.Errorf("expected message %q, got %q", "Merged toast", toast["message"])
	}
}

func TestSetToast_OverwritesInvalidExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec
	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Overwritten")

	parsed, toast := parseToast(t, rec.Header().Get("HX-Trigger"))
	if len(parsed) != 1 {
		t.Errorf("expected only showToast after overwrite, got %d keys", len(parsed))
	}
	if toast["message"] != "Overwritten" {
		t.Errorf("expected message %q, got %q", "Overwritten", toast["message"])
	}
}

func TestErrorToast(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	if err := ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	if got := rec.Header().Get("HX-Reswap"); got != "none" {
		t.Errorf("expected HX-Reswap none, got %q", got)
	}
	_, toast := parseToast(t, rec.Header().Get("HX-Trigger"))
	if toast["type"] != "error" {
		t.Errorf("expected error toast, got %q", toast["type"])
	}
	if rec.Body.String() != "Failed to generate Excel file" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestIsHTMX(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/quote/form", nil)
	if isHTMX(req) {
		t.Error("plain request reported as htmx")
	}
	req.Header.Set("HX-Request", "true")
	if !isHTMX(req) {
		t.Error("htmx request not detected")
	}
}

func TestSetToast_FlashCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "error", "Cannot export: unknown destination")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "flash_toast" {
		t.Fatalf("expected one flash_toast cookie, got %v", cookies)
	}
	raw, err := url.QueryUnescape(cookies[0].Value)
	if err != nil {
		t.Fatalf("cookie value is not query-escaped: %v", err)
	}
	var toast map[string]string
	if err := json.Unmarshal([]byte(raw), &toast); err != nil {
		t.Fatalf("cookie value is not JSON: %v", err)
	}
	if toast["type"] != "error" || toast["message"] != "Cannot export: unknown destination" {
		t.Errorf("unexpected toast %v", toast)
	}
	if cookies[0].MaxAge <= 0 || cookies[0].Path != "/" {
		t.Errorf("expected a short-lived site-wide cookie, got %+v", cookies[0])
	}
}
