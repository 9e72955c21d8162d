package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/services"
)

func (handler *Handler) Timeline(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.entryService.FetchAllForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	days := services.BuildTimeline(entries, handler.location)
	views := make([]fiber.Map, 0, len(days))
	for _, day := range days {
		dayEntries := make([]fiber.Map, 0, len(day.Entries))
		for _, entry := range day.Entries {
			dayEntries = append(dayEntries, fiber.Map{
				"id":             entry.ID,
				"time":           entry.Time,
				"title":          entry.Title,
				"body_html":      entry.BodyHTML,
				"health_rating":  entry.HealthRating,
				"mood":           entry.Mood,
				"products":       entry.Products,
				"attachment_ref": entry.AttachmentRef,
			})
		}
		views = append(views, fiber.Map{
			"date":    day.DateString,
			"entries": dayEntries,
		})
	}
	return apiData(c, views)
}

func (handler *Handler) GoalsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goals, err := handler.goalService.FetchAllForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goals")
	}

	items := services.BuildGoalOverview(goals)
	views := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		views = append(views, fiber.Map{
			"id":               item.ID,
			"title":            item.Title,
			"description":      item.Description,
			"progress":         item.Progress,
			"start_date":       item.StartDate,
			"end_date":         item.EndDate,
			"has_schedule":     item.HasSchedule,
			"milestones_done":  item.MilestonesDone,
			"milestones_total": item.MilestonesTotal,
		})
	}
	return apiData(c, views)
}

func (handler *Handler) Slider(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := c.QueryInt("limit", 10)
	entries, err := handler.entryService.FetchRecent(user.ID, limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	items := services.BuildSlider(entries, handler.location)
	views := make([]fiber.Map, 0, len(items))
	for _, item := range items {
		views = append(views, fiber.Map{
			"id":             item.ID,
			"title":          item.Title,
			"date":           item.DateString,
			"time":           item.Time,
			"health_rating":  item.HealthRating,
			"mood":           item.Mood,
			"attachment_ref": item.AttachmentRef,
		})
	}
	return apiData(c, views)
}
