package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/models"
	"github.com/strandapp/strand/internal/services"
)

func (handler *Handler) CalendarMonth(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	monthStart, err := parseMonthParam(c.Query("month", time.Now().In(handler.location).Format("2006-01")), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	entries, goals, routines, visibility, errMessage := handler.fetchCalendarCollections(user, monthStart, monthStart.AddDate(0, 1, 0))
	if errMessage != "" {
		return apiError(c, fiber.StatusInternalServerError, errMessage)
	}

	grid := services.BuildMonthGrid(monthStart, entries, goals, routines, visibility, time.Now(), handler.location)

	return apiData(c, fiber.Map{
		"month":           grid.MonthStart.Format("2006-01"),
		"prev_month":      grid.MonthStart.AddDate(0, -1, 0).Format("2006-01"),
		"next_month":      grid.MonthStart.AddDate(0, 1, 0).Format("2006-01"),
		"leading_blanks":  grid.LeadingBlanks,
		"trailing_blanks": grid.TrailingBlanks,
		"days":            calendarDayViews(grid.Days),
	})
}

func (handler *Handler) CalendarWeek(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	weekStart, err := parseDayParam(c.Query("start"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid week start")
	}

	entries, goals, routines, visibility, errMessage := handler.fetchCalendarCollections(user, weekStart, weekStart.AddDate(0, 0, services.WeekDays))
	if errMessage != "" {
		return apiError(c, fiber.StatusInternalServerError, errMessage)
	}

	window := services.BuildWeekWindow(weekStart, entries, goals, routines, visibility, time.Now(), handler.location)

	bars := make([]fiber.Map, 0, len(window.GoalBars))
	for _, bar := range window.GoalBars {
		bars = append(bars, fiber.Map{
			"id":           bar.ID,
			"title":        bar.Title,
			"progress":     bar.Progress,
			"start_column": bar.StartColumn,
			"width":        bar.Width,
		})
	}

	return apiData(c, fiber.Map{
		"week_start": window.WeekStart.Format("2006-01-02"),
		"days":       calendarDayViews(window.Days),
		"goal_bars":  bars,
	})
}

// fetchCalendarCollections loads the three raw collections for a window.
// Entries are range-filtered in the store; goals and routines are loaded
// whole because interval membership and frequency projection need them all.
func (handler *Handler) fetchCalendarCollections(user *models.User, from time.Time, to time.Time) ([]models.Entry, []models.Goal, []models.Routine, string, string) {
	entries, err := handler.entryService.FetchForOptionalRange(user.ID, &from, &to, handler.location)
	if err != nil {
		return nil, nil, nil, "", "failed to fetch entries"
	}
	goals, err := handler.goalService.FetchAllForUser(user.ID)
	if err != nil {
		return nil, nil, nil, "", "failed to fetch goals"
	}
	routines, err := handler.routineService.FetchAllForUser(user.ID)
	if err != nil {
		return nil, nil, nil, "", "failed to fetch routines"
	}
	preference, err := handler.preferenceService.FetchForUser(user.ID)
	if err != nil {
		return nil, nil, nil, "", "failed to fetch preferences"
	}
	return entries, goals, routines, preference.RoutineVisibility, ""
}

func calendarDayViews(days []services.CalendarDay) []fiber.Map {
	views := make([]fiber.Map, 0, len(days))
	for _, day := range days {
		entries := make([]fiber.Map, 0, len(day.Entries))
		for _, entry := range day.Entries {
			entries = append(entries, fiber.Map{
				"id":             entry.ID,
				"title":          entry.Title,
				"time":           entry.Time,
				"hour":           entry.Hour,
				"minute":         entry.Minute,
				"pixel_offset":   entry.PixelOffset,
				"health_rating":  entry.HealthRating,
				"mood":           entry.Mood,
				"attachment_ref": entry.AttachmentRef,
			})
		}

		goals := make([]fiber.Map, 0, len(day.Goals))
		for _, goal := range day.Goals {
			goals = append(goals, fiber.Map{
				"id":       goal.ID,
				"title":    goal.Title,
				"progress": goal.Progress,
			})
		}

		routines := make([]fiber.Map, 0, len(day.Routines))
		for _, routine := range day.Routines {
			routines = append(routines, fiber.Map{
				"id":          routine.ID,
				"name":        routine.Name,
				"hour":        routine.Hour,
				"time_of_day": routine.TimeOfDay,
				"frequency":   routine.Frequency,
			})
		}

		views = append(views, fiber.Map{
			"date":     day.DateString,
			"day":      day.Day,
			"is_today": day.IsToday,
			"entries":  entries,
			"goals":    goals,
			"routines": routines,
		})
	}
	return views
}
