package services

import (
	"fmt"
	"math"
	"time"

	"github.com/strandapp/strand/internal/models"
)

// HourPixelHeight is the height of one hour row in the day/week grid; entry
// vertical offsets are hour*HourPixelHeight plus one pixel per minute.
const HourPixelHeight = 60

const WeekDays = 7

type EntryRef struct {
	ID            uint
	Title         string
	Time          string
	Hour          int
	Minute        int
	PixelOffset   int
	HealthRating  int
	Mood          string
	AttachmentRef string
}

type GoalSpan struct {
	ID       uint
	Title    string
	Progress int
}

type RoutineItem struct {
	ID        uint
	Name      string
	Hour      int
	TimeOfDay string
	Frequency string
}

type CalendarDay struct {
	Date       time.Time
	DateString string
	Day        int
	IsToday    bool
	Entries    []EntryRef
	Goals      []GoalSpan
	Routines   []RoutineItem
}

type MonthGrid struct {
	MonthStart     time.Time
	LeadingBlanks  int
	TrailingBlanks int
	Days           []CalendarDay
}

// GoalBar is a goal span positioned inside one 7-day week row. StartColumn
// and Width are clamped so a span that overhangs the window still renders
// inside columns [0,6].
type GoalBar struct {
	GoalSpan
	StartColumn int
	Width       int
}

type WeekWindow struct {
	WeekStart time.Time
	Days      []CalendarDay
	GoalBars  []GoalBar
}

// BuildMonthGrid buckets entries, goals and routines into one CalendarDay per
// day of the month. The grid is Monday-first: a month starting on Sunday gets
// six leading blanks, one starting on Monday gets none.
func BuildMonthGrid(monthStart time.Time, entries []models.Entry, goals []models.Goal, routines []models.Routine, visibility string, now time.Time, location *time.Location) MonthGrid {
	monthStart = DateAtLocation(time.Date(monthStart.Year(), monthStart.Month(), 1, 0, 0, 0, 0, locationOrUTC(location)), location)
	monthEnd := monthStart.AddDate(0, 1, -1)

	leadingBlanks := mondayFirstColumn(monthStart)
	daysInMonth := monthEnd.Day()
	trailingBlanks := (WeekDays - (leadingBlanks+daysInMonth)%WeekDays) % WeekDays

	entriesByDate := bucketEntriesByDate(entries, location)
	todayKey := DateAtLocation(now, location).Format("2006-01-02")

	days := make([]CalendarDay, 0, daysInMonth)
	for day := monthStart; !day.After(monthEnd); day = day.AddDate(0, 0, 1) {
		days = append(days, buildCalendarDay(day, todayKey, entriesByDate, goals, routines, visibility, location))
	}

	return MonthGrid{
		MonthStart:     monthStart,
		LeadingBlanks:  leadingBlanks,
		TrailingBlanks: trailingBlanks,
		Days:           days,
	}
}

// BuildWeekWindow buckets the same collections into a 7-day window starting
// at weekStart, and lays goal spans out as clamped horizontal bars.
func BuildWeekWindow(weekStart time.Time, entries []models.Entry, goals []models.Goal, routines []models.Routine, visibility string, now time.Time, location *time.Location) WeekWindow {
	weekStart = DateAtLocation(weekStart, location)

	entriesByDate := bucketEntriesByDate(entries, location)
	todayKey := DateAtLocation(now, location).Format("2006-01-02")

	days := make([]CalendarDay, 0, WeekDays)
	for offset := 0; offset < WeekDays; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		days = append(days, buildCalendarDay(day, todayKey, entriesByDate, goals, routines, visibility, location))
	}

	return WeekWindow{
		WeekStart: weekStart,
		Days:      days,
		GoalBars:  buildGoalBars(weekStart, goals, location),
	}
}

func buildCalendarDay(day time.Time, todayKey string, entriesByDate map[string][]EntryRef, goals []models.Goal, routines []models.Routine, visibility string, location *time.Location) CalendarDay {
	key := day.Format("2006-01-02")
	return CalendarDay{
		Date:       day,
		DateString: key,
		Day:        day.Day(),
		IsToday:    key == todayKey,
		Entries:    entriesByDate[key],
		Goals:      goalsForDay(day, goals, location),
		Routines:   routinesForDay(day, routines, visibility, location),
	}
}

func bucketEntriesByDate(entries []models.Entry, location *time.Location) map[string][]EntryRef {
	buckets := make(map[string][]EntryRef)
	for _, entry := range entries {
		localized := entry.RecordedAt.In(locationOrUTC(location))
		key := DateAtLocation(entry.RecordedAt, location).Format("2006-01-02")
		hour := localized.Hour()
		minute := localized.Minute()
		buckets[key] = append(buckets[key], EntryRef{
			ID:            entry.ID,
			Title:         entry.Title,
			Time:          fmt.Sprintf("%02d:%02d", hour, minute),
			Hour:          hour,
			Minute:        minute,
			PixelOffset:   hour*HourPixelHeight + minute,
			HealthRating:  entry.HealthRating,
			Mood:          entry.Mood,
			AttachmentRef: entry.AttachmentRef,
		})
	}
	return buckets
}

// goalsForDay applies the inclusive [start,end] membership test. A goal with
// no end date spans exactly its start day; a goal with no start date never
// appears on the calendar (it still shows in list and timeline views).
func goalsForDay(day time.Time, goals []models.Goal, location *time.Location) []GoalSpan {
	spans := make([]GoalSpan, 0)
	for _, goal := range goals {
		start, end, ok := goalInterval(goal, location)
		if !ok {
			continue
		}
		if day.Before(start) || day.After(end) {
			continue
		}
		spans = append(spans, GoalSpan{ID: goal.ID, Title: goal.Title, Progress: goal.Progress})
	}
	return spans
}

func goalInterval(goal models.Goal, location *time.Location) (time.Time, time.Time, bool) {
	if goal.StartDate == nil {
		return time.Time{}, time.Time{}, false
	}
	start := DateAtLocation(*goal.StartDate, location)
	end := start
	if goal.EndDate != nil {
		end = DateAtLocation(*goal.EndDate, location)
	}
	if end.Before(start) {
		end = start
	}
	return start, end, true
}

func buildGoalBars(weekStart time.Time, goals []models.Goal, location *time.Location) []GoalBar {
	weekEnd := weekStart.AddDate(0, 0, WeekDays-1)

	bars := make([]GoalBar, 0)
	for _, goal := range goals {
		start, end, ok := goalInterval(goal, location)
		if !ok {
			continue
		}
		if end.Before(weekStart) || start.After(weekEnd) {
			continue
		}

		startColumn := clampColumn(daysBetween(weekStart, start))
		endColumn := clampColumn(daysBetween(weekStart, end))
		bars = append(bars, GoalBar{
			GoalSpan:    GoalSpan{ID: goal.ID, Title: goal.Title, Progress: goal.Progress},
			StartColumn: startColumn,
			Width:       endColumn - startColumn + 1,
		})
	}
	return bars
}

// routinesForDay attaches routines per the visibility mode. The historical
// behavior attaches every routine to every day; frequency filtering is the
// opt-in alternative (see Preference.RoutineVisibility).
func routinesForDay(day time.Time, routines []models.Routine, visibility string, location *time.Location) []RoutineItem {
	items := make([]RoutineItem, 0, len(routines))
	for _, routine := range routines {
		if visibility == models.RoutineVisibilityFrequencyFiltered && !routineAppliesOn(routine, day, location) {
			continue
		}
		items = append(items, RoutineItem{
			ID:        routine.ID,
			Name:      routine.Name,
			Hour:      ParseHour(routine.TimeOfDay),
			TimeOfDay: routine.TimeOfDay,
			Frequency: routine.Frequency,
		})
	}
	return items
}

func routineAppliesOn(routine models.Routine, day time.Time, location *time.Location) bool {
	anchor := DateAtLocation(routine.AnchorDate, location)
	switch routine.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		return day.Weekday() == anchor.Weekday()
	case models.FrequencyBiweekly:
		if day.Weekday() != anchor.Weekday() {
			return false
		}
		weeks := daysBetween(anchor, day) / WeekDays
		return ((weeks%2)+2)%2 == 0
	case models.FrequencyMonthly:
		return day.Day() == anchor.Day()
	default:
		// as-needed routines have no schedule to project onto the grid.
		return false
	}
}

func mondayFirstColumn(day time.Time) int {
	return (int(day.Weekday()) + 6) % WeekDays
}

// daysBetween rounds so that DST-shortened or -lengthened days still count
// as whole days.
func daysBetween(from time.Time, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

func clampColumn(column int) int {
	if column < 0 {
		return 0
	}
	if column > WeekDays-1 {
		return WeekDays - 1
	}
	return column
}

func locationOrUTC(location *time.Location) *time.Location {
	if location == nil {
		return time.UTC
	}
	return location
}
