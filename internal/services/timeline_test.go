package services

import (
	"strings"
	"testing"
	"time"

	"github.com/strandapp/strand/internal/models"
)

func TestBuildTimelineGroupsNewestFirst(t *testing.T) {
	t.Parallel()

	entries := []models.Entry{
		{ID: 1, Title: "Oldest", RecordedAt: time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "Morning", RecordedAt: time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)},
		{ID: 3, Title: "Evening", RecordedAt: time.Date(2025, time.June, 15, 21, 30, 0, 0, time.UTC)},
		{ID: 4, Title: "Newest day", RecordedAt: time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)},
	}

	days := BuildTimeline(entries, time.UTC)

	if len(days) != 3 {
		t.Fatalf("expected 3 day groups, got %d", len(days))
	}
	if days[0].DateString != "2025-06-18" || days[1].DateString != "2025-06-15" || days[2].DateString != "2025-06-10" {
		t.Fatalf("unexpected day order: %s, %s, %s", days[0].DateString, days[1].DateString, days[2].DateString)
	}

	june15 := days[1]
	if len(june15.Entries) != 2 {
		t.Fatalf("expected 2 entries on 2025-06-15, got %d", len(june15.Entries))
	}
	if june15.Entries[0].Title != "Evening" || june15.Entries[1].Title != "Morning" {
		t.Fatalf("entries within a day not newest-first: %q, %q", june15.Entries[0].Title, june15.Entries[1].Title)
	}
	if june15.Entries[0].Time != "21:30" {
		t.Fatalf("unexpected entry time %q", june15.Entries[0].Time)
	}
}

func TestBuildTimelineRendersMarkdownBody(t *testing.T) {
	t.Parallel()

	entries := []models.Entry{
		{
			ID:         1,
			Title:      "Notes",
			Body:       "Tried the **new mask** today",
			RecordedAt: time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC),
		},
	}

	days := BuildTimeline(entries, time.UTC)

	if len(days) != 1 || len(days[0].Entries) != 1 {
		t.Fatalf("unexpected grouping: %#v", days)
	}
	if !strings.Contains(days[0].Entries[0].BodyHTML, "<strong>new mask</strong>") {
		t.Fatalf("body not rendered to HTML: %q", days[0].Entries[0].BodyHTML)
	}
}

func TestBuildGoalOverviewIncludesUnscheduledGoals(t *testing.T) {
	t.Parallel()

	goals := []models.Goal{
		{
			ID:        1,
			Title:     "Scheduled",
			Progress:  60,
			StartDate: datePtr(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
			EndDate:   datePtr(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)),
			Milestones: []models.Milestone{
				{Position: 0, Title: "First trim", Achieved: true},
				{Position: 1, Title: "Second trim", Achieved: false},
			},
		},
		{ID: 2, Title: "No schedule", Progress: 10},
	}

	items := BuildGoalOverview(goals)

	if len(items) != 2 {
		t.Fatalf("expected both goals in the overview, got %d", len(items))
	}

	scheduled := items[0]
	if !scheduled.HasSchedule || scheduled.StartDate != "2025-06-01" || scheduled.EndDate != "2025-06-30" {
		t.Fatalf("unexpected scheduled item: %+v", scheduled)
	}
	if scheduled.MilestonesDone != 1 || scheduled.MilestonesTotal != 2 {
		t.Fatalf("unexpected milestone counts: %+v", scheduled)
	}

	unscheduled := items[1]
	if unscheduled.HasSchedule || unscheduled.StartDate != "" {
		t.Fatalf("unscheduled goal misreported: %+v", unscheduled)
	}
}

func TestBuildSliderProjectsEntries(t *testing.T) {
	t.Parallel()

	entries := []models.Entry{
		{
			ID:            5,
			Title:         "Wash day",
			RecordedAt:    time.Date(2025, time.June, 15, 9, 30, 0, 0, time.UTC),
			HealthRating:  8,
			Mood:          "Great",
			AttachmentRef: "abc-123",
		},
	}

	items := BuildSlider(entries, time.UTC)

	if len(items) != 1 {
		t.Fatalf("expected one slider item, got %d", len(items))
	}
	item := items[0]
	if item.DateString != "2025-06-15" || item.Time != "09:30" {
		t.Fatalf("unexpected slider timestamps: %+v", item)
	}
	if item.HealthRating != 8 || item.Mood != "Great" || item.AttachmentRef != "abc-123" {
		t.Fatalf("unexpected slider payload: %+v", item)
	}
}
