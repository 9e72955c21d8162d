package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type goalViewData struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Milestones  []struct {
		Position int    `json:"position"`
		Title    string `json:"title"`
		Achieved bool   `json:"achieved"`
	} `json:"milestones"`
}

func createGoalForTest(t *testing.T, app *fiber.App, authCookie string, payload fiber.Map) goalViewData {
	t.Helper()

	response := performJSONRequest(t, app, http.MethodPost, "/api/goals", payload, authCookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create goal returned %d", response.StatusCode)
	}
	goal := goalViewData{}
	decodeEnvelope(t, response, &goal)
	return goal
}

func TestCreateGoalWithMilestones(t *testing.T) {
	app, _, _ := newTestApp(t)
	user := registerTestUser(t, app, "goals@example.com")

	goal := createGoalForTest(t, app, user.AuthCookie, fiber.Map{
		"title":      "Layered cut recovery",
		"start_date": "2025-06-01",
		"end_date":   "2025-08-31",
		"progress":   150,
		"milestones": []fiber.Map{
			{"title": "First trim"},
			{"title": "   "},
			{"title": "Second trim", "achieved": true},
		},
	})

	if goal.ID == 0 {
		t.Fatalf("created goal missing id")
	}
	if goal.Progress != 100 {
		t.Fatalf("expected progress clamped to 100, got %d", goal.Progress)
	}
	if goal.StartDate != "2025-06-01" || goal.EndDate != "2025-08-31" {
		t.Fatalf("unexpected goal dates: %+v", goal)
	}
	if len(goal.Milestones) != 2 {
		t.Fatalf("expected blank milestone dropped, got %d", len(goal.Milestones))
	}
	if goal.Milestones[0].Position != 0 || goal.Milestones[1].Position != 1 {
		t.Fatalf("unexpected milestone positions: %#v", goal.Milestones)
	}
	if !goal.Milestones[1].Achieved {
		t.Fatalf("achieved flag lost on create")
	}
}

func TestCreateGoalRejectsInvertedDateRange(t *testing.T) {
	app, _, _ := newTestApp(t)
	user := registerTestUser(t, app, "goalrange@example.com")

	response := performJSONRequest(t, app, http.MethodPost, "/api/goals", fiber.Map{
		"title":      "Backwards",
		"start_date": "2025-06-10",
		"end_date":   "2025-06-05",
	}, user.AuthCookie)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", response.StatusCode)
	}
	response.Body.Close()
}

func TestToggleGoalMilestoneEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)
	user := registerTestUser(t, app, "toggle@example.com")

	goal := createGoalForTest(t, app, user.AuthCookie, fiber.Map{
		"title": "Milestoned",
		"milestones": []fiber.Map{
			{"title": "First"},
			{"title": "Second"},
		},
	})

	toggle := performJSONRequest(t, app, http.MethodPost,
		"/api/goals/"+uintToString(goal.ID)+"/milestones/1/toggle", nil, user.AuthCookie)
	if toggle.StatusCode != http.StatusOK {
		t.Fatalf("toggle returned %d", toggle.StatusCode)
	}
	toggled := goalViewData{}
	decodeEnvelope(t, toggle, &toggled)
	if !toggled.Milestones[1].Achieved {
		t.Fatalf("milestone at position 1 not toggled: %#v", toggled.Milestones)
	}
	if toggled.Milestones[0].Achieved {
		t.Fatalf("milestone at position 0 must stay untouched")
	}

	missing := performJSONRequest(t, app, http.MethodPost,
		"/api/goals/"+uintToString(goal.ID)+"/milestones/9/toggle", nil, user.AuthCookie)
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown position, got %d", missing.StatusCode)
	}
	missing.Body.Close()
}

func TestSetGoalProgressEndpointClamps(t *testing.T) {
	app, _, _ := newTestApp(t)
	user := registerTestUser(t, app, "progress@example.com")

	goal := createGoalForTest(t, app, user.AuthCookie, fiber.Map{"title": "Progressing"})

	response := performJSONRequest(t, app, http.MethodPost,
		"/api/goals/"+uintToString(goal.ID)+"/progress", fiber.Map{"progress": 170}, user.AuthCookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("set progress returned %d", response.StatusCode)
	}
	updated := goalViewData{}
	decodeEnvelope(t, response, &updated)
	if updated.Progress != 100 {
		t.Fatalf("expected clamped progress 100, got %d", updated.Progress)
	}
}

func TestGoalsAreScopedPerUser(t *testing.T) {
	app, _, _ := newTestApp(t)
	owner := registerTestUser(t, app, "owner@example.com")
	other := registerTestUser(t, app, "other@example.com")

	goal := createGoalForTest(t, app, owner.AuthCookie, fiber.Map{"title": "Private"})

	response := performJSONRequest(t, app, http.MethodGet,
		"/api/goals/"+uintToString(goal.ID), nil, other.AuthCookie)
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's goal, got %d", response.StatusCode)
	}
	response.Body.Close()
}
