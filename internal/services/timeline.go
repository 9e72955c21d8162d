package services

import (
	"sort"
	"time"

	"github.com/strandapp/strand/internal/models"
)

type TimelineEntry struct {
	ID            uint
	Time          string
	Title         string
	BodyHTML      string
	HealthRating  int
	Mood          string
	Products      []string
	AttachmentRef string
}

type TimelineDay struct {
	Date       time.Time
	DateString string
	Entries    []TimelineEntry
}

type GoalListItem struct {
	ID              uint
	Title           string
	Description     string
	Progress        int
	StartDate       string
	EndDate         string
	HasSchedule     bool
	MilestonesDone  int
	MilestonesTotal int
}

type SliderItem struct {
	ID            uint
	Title         string
	DateString    string
	Time          string
	HealthRating  int
	Mood          string
	AttachmentRef string
}

// BuildTimeline groups entries newest-first by calendar day. Bodies are
// rendered to HTML; a body that fails to render degrades to empty rather
// than failing the whole view.
func BuildTimeline(entries []models.Entry, location *time.Location) []TimelineDay {
	buckets := make(map[string][]TimelineEntry)
	dates := make(map[string]time.Time)

	for _, entry := range entries {
		day := DateAtLocation(entry.RecordedAt, location)
		key := day.Format("2006-01-02")
		dates[key] = day

		bodyHTML, err := RenderEntryBody(entry.Body)
		if err != nil {
			bodyHTML = ""
		}

		localized := entry.RecordedAt.In(locationOrUTC(location))
		buckets[key] = append(buckets[key], TimelineEntry{
			ID:            entry.ID,
			Time:          localized.Format("15:04"),
			Title:         entry.Title,
			BodyHTML:      bodyHTML,
			HealthRating:  entry.HealthRating,
			Mood:          entry.Mood,
			Products:      entry.Products,
			AttachmentRef: entry.AttachmentRef,
		})
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	days := make([]TimelineDay, 0, len(keys))
	for _, key := range keys {
		entriesForDay := buckets[key]
		sort.SliceStable(entriesForDay, func(left, right int) bool {
			return entriesForDay[left].Time > entriesForDay[right].Time
		})
		days = append(days, TimelineDay{
			Date:       dates[key],
			DateString: key,
			Entries:    entriesForDay,
		})
	}
	return days
}

// BuildGoalOverview is the list view: every goal appears, including ones
// with no parseable schedule that the calendar excludes.
func BuildGoalOverview(goals []models.Goal) []GoalListItem {
	items := make([]GoalListItem, 0, len(goals))
	for _, goal := range goals {
		item := GoalListItem{
			ID:          goal.ID,
			Title:       goal.Title,
			Description: goal.Description,
			Progress:    goal.Progress,
			HasSchedule: goal.StartDate != nil,
		}
		if goal.StartDate != nil {
			item.StartDate = goal.StartDate.Format("2006-01-02")
		}
		if goal.EndDate != nil {
			item.EndDate = goal.EndDate.Format("2006-01-02")
		}
		for _, milestone := range goal.Milestones {
			item.MilestonesTotal++
			if milestone.Achieved {
				item.MilestonesDone++
			}
		}
		items = append(items, item)
	}
	return items
}

// BuildSlider projects the most recent entries for the horizontal slider.
func BuildSlider(entries []models.Entry, location *time.Location) []SliderItem {
	items := make([]SliderItem, 0, len(entries))
	for _, entry := range entries {
		localized := entry.RecordedAt.In(locationOrUTC(location))
		items = append(items, SliderItem{
			ID:            entry.ID,
			Title:         entry.Title,
			DateString:    DateAtLocation(entry.RecordedAt, location).Format("2006-01-02"),
			Time:          localized.Format("15:04"),
			HealthRating:  entry.HealthRating,
			Mood:          entry.Mood,
			AttachmentRef: entry.AttachmentRef,
		})
	}
	return items
}
