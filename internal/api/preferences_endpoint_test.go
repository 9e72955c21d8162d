package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type preferenceViewData struct {
	Theme             string `json:"theme"`
	SidebarCollapsed  bool   `json:"sidebar_collapsed"`
	ActiveTab         string `json:"active_tab"`
	RoutineVisibility string `json:"routine_visibility"`
}

func TestPreferencesEndpointDefaultsAndPartialUpdate(t *testing.T) {
	app, _, _ := newTestApp(t)
	user := registerTestUser(t, app, "prefs@example.com")

	initial := performJSONRequest(t, app, http.MethodGet, "/api/settings/preferences", nil, user.AuthCookie)
	if initial.StatusCode != http.StatusOK {
		t.Fatalf("get preferences returned %d", initial.StatusCode)
	}
	defaults := preferenceViewData{}
	decodeEnvelope(t, initial, &defaults)
	if defaults.Theme != "light" || defaults.ActiveTab != "journey" || defaults.RoutineVisibility != "all-days" {
		t.Fatalf("unexpected defaults: %+v", defaults)
	}

	update := performJSONRequest(t, app, http.MethodPut, "/api/settings/preferences", fiber.Map{
		"theme":      "dark",
		"active_tab": "calendar",
	}, user.AuthCookie)
	if update.StatusCode != http.StatusOK {
		t.Fatalf("update preferences returned %d", update.StatusCode)
	}
	updated := preferenceViewData{}
	decodeEnvelope(t, update, &updated)
	if updated.Theme != "dark" || updated.ActiveTab != "calendar" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.SidebarCollapsed || updated.RoutineVisibility != "all-days" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	// A later partial update keeps earlier changes.
	second := performJSONRequest(t, app, http.MethodPut, "/api/settings/preferences", fiber.Map{
		"sidebar_collapsed":  true,
		"routine_visibility": "frequency-filtered",
	}, user.AuthCookie)
	if second.StatusCode != http.StatusOK {
		t.Fatalf("second update returned %d", second.StatusCode)
	}
	second.Body.Close()

	reloaded := performJSONRequest(t, app, http.MethodGet, "/api/settings/preferences", nil, user.AuthCookie)
	final := preferenceViewData{}
	decodeEnvelope(t, reloaded, &final)
	if final.Theme != "dark" || !final.SidebarCollapsed || final.RoutineVisibility != "frequency-filtered" {
		t.Fatalf("preferences not persisted across updates: %+v", final)
	}
}

func TestPreferencesEndpointRejectsInvalidValues(t *testing.T) {
	app, _, _ := newTestApp(t)
	user := registerTestUser(t, app, "badprefs@example.com")

	for _, payload := range []fiber.Map{
		{"theme": "sepia"},
		{"active_tab": "dashboard"},
		{"routine_visibility": "sometimes"},
	} {
		response := performJSONRequest(t, app, http.MethodPut, "/api/settings/preferences", payload, user.AuthCookie)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", payload, response.StatusCode)
		}
		response.Body.Close()
	}

	// A rejected update must not clobber stored values.
	reloaded := performJSONRequest(t, app, http.MethodGet, "/api/settings/preferences", nil, user.AuthCookie)
	stored := preferenceViewData{}
	decodeEnvelope(t, reloaded, &stored)
	if stored.Theme != "light" {
		t.Fatalf("invalid update leaked into storage: %+v", stored)
	}
}
