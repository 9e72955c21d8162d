package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestImportLegacyEndpointResolvesLooseRecords(t *testing.T) {
	app, _, _ := newTestApp(t)
	user := registerTestUser(t, app, "import@example.com")

	response := performJSONRequest(t, app, http.MethodPost, "/api/import/legacy", fiber.Map{
		"goals": []fiber.Map{
			{"goal_title": "Grow out", "start_date": "2025-06-01", "target_date": "2025-06-30", "percent": "140"},
			{"notes": "no title or dates here"},
		},
		"routines": []fiber.Map{
			{"routine_title": "Evening oil", "time": "8:00 PM", "frequency": "WEEKLY"},
		},
	}, user.AuthCookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("import returned %d", response.StatusCode)
	}

	var report struct {
		GoalsImported    int `json:"goals_imported"`
		RoutinesImported int `json:"routines_imported"`
		Outcomes         []struct {
			Kind             string `json:"kind"`
			Title            string `json:"title"`
			Status           string `json:"status"`
			CalendarEligible bool   `json:"calendar_eligible"`
		} `json:"outcomes"`
	}
	decodeEnvelope(t, response, &report)

	if report.GoalsImported != 2 || report.RoutinesImported != 1 {
		t.Fatalf("unexpected import counts: %+v", report)
	}
	if len(report.Outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(report.Outcomes))
	}
	if report.Outcomes[0].Title != "Grow out" || !report.Outcomes[0].CalendarEligible {
		t.Fatalf("unexpected first outcome: %+v", report.Outcomes[0])
	}
	if report.Outcomes[1].Title != "Untitled Goal" || report.Outcomes[1].CalendarEligible {
		t.Fatalf("unexpected placeholder outcome: %+v", report.Outcomes[1])
	}

	// Imported records flow into the regular views.
	overview := performJSONRequest(t, app, http.MethodGet, "/api/goals/overview", nil, user.AuthCookie)
	var items []struct {
		Title       string `json:"title"`
		Progress    int    `json:"progress"`
		HasSchedule bool   `json:"has_schedule"`
	}
	decodeEnvelope(t, overview, &items)
	if len(items) != 2 {
		t.Fatalf("expected imported goals in overview, got %d", len(items))
	}
	if items[0].Progress != 100 {
		t.Fatalf("expected imported progress clamped to 100, got %d", items[0].Progress)
	}
	if items[1].HasSchedule {
		t.Fatalf("dateless goal must have no schedule: %+v", items[1])
	}

	routines := performJSONRequest(t, app, http.MethodGet, "/api/routines", nil, user.AuthCookie)
	var routineViews []struct {
		Name      string `json:"name"`
		Frequency string `json:"frequency"`
		Hour      int    `json:"hour"`
	}
	decodeEnvelope(t, routines, &routineViews)
	if len(routineViews) != 1 {
		t.Fatalf("expected one imported routine, got %d", len(routineViews))
	}
	if routineViews[0].Frequency != "weekly" || routineViews[0].Hour != 20 {
		t.Fatalf("unexpected imported routine: %+v", routineViews[0])
	}
}

func TestImportLegacyEndpointRejectsEmptyPayload(t *testing.T) {
	app, _, _ := newTestApp(t)
	user := registerTestUser(t, app, "emptyimport@example.com")

	response := performJSONRequest(t, app, http.MethodPost, "/api/import/legacy", fiber.Map{
		"goals":    []fiber.Map{},
		"routines": []fiber.Map{},
	}, user.AuthCookie)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty import, got %d", response.StatusCode)
	}
	response.Body.Close()
}
