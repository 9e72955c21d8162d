package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/models"
	"github.com/strandapp/strand/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goals, err := handler.goalService.FetchAllForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goals")
	}

	views := make([]fiber.Map, 0, len(goals))
	for _, goal := range goals {
		views = append(views, goalView(goal))
	}
	return apiData(c, views)
}

func (handler *Handler) GetGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}

	goal, err := handler.goalService.FetchByID(user.ID, goalID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "goal not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goal")
	}
	return apiData(c, goalView(goal))
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, errMessage := handler.parseGoalInput(c)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	goal, err := handler.goalService.CreateGoal(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}
	return apiCreated(c, goalView(goal))
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}

	input, errMessage := handler.parseGoalInput(c)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	goal, err := handler.goalService.UpdateGoal(user.ID, goalID, input)
	if errors.Is(err, services.ErrGoalLoadFailed) {
		return apiError(c, fiber.StatusNotFound, "goal not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}
	return apiData(c, goalView(goal))
}

func (handler *Handler) SetGoalProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}

	payload := progressPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	goal, err := handler.goalService.SetProgress(user.ID, goalID, payload.Progress)
	if errors.Is(err, services.ErrGoalLoadFailed) {
		return apiError(c, fiber.StatusNotFound, "goal not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goal")
	}
	return apiData(c, goalView(goal))
}

func (handler *Handler) ToggleGoalMilestone(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}
	position, err := c.ParamsInt("pos")
	if err != nil || position < 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid milestone position")
	}

	goal, err := handler.goalService.ToggleMilestone(user.ID, goalID, position)
	switch {
	case errors.Is(err, services.ErrGoalLoadFailed):
		return apiError(c, fiber.StatusNotFound, "goal not found")
	case errors.Is(err, services.ErrMilestoneNotFound):
		return apiError(c, fiber.StatusNotFound, "milestone not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save milestone")
	}
	return apiData(c, goalView(goal))
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goalID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid goal id")
	}

	err = handler.goalService.DeleteGoal(user.ID, goalID)
	if errors.Is(err, services.ErrGoalLoadFailed) {
		return apiError(c, fiber.StatusNotFound, "goal not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete goal")
	}
	return apiData(c, fiber.Map{"deleted": true})
}

func (handler *Handler) parseGoalInput(c *fiber.Ctx) (services.GoalInput, string) {
	payload := goalPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.GoalInput{}, "invalid payload"
	}

	input := services.GoalInput{
		Title:       payload.Title,
		Description: payload.Description,
		Progress:    payload.Progress,
	}

	startDate, err := parseOptionalDayParam(payload.StartDate, handler.location)
	if err != nil {
		return services.GoalInput{}, "invalid start_date"
	}
	endDate, err := parseOptionalDayParam(payload.EndDate, handler.location)
	if err != nil {
		return services.GoalInput{}, "invalid end_date"
	}
	input.StartDate = startDate
	input.EndDate = endDate

	for _, milestone := range payload.Milestones {
		input.Milestones = append(input.Milestones, services.MilestoneInput{
			Title:    milestone.Title,
			Achieved: milestone.Achieved,
		})
	}

	normalized, err := services.NormalizeGoalInput(input, handler.location)
	if err != nil {
		return services.GoalInput{}, err.Error()
	}
	return normalized, ""
}

func goalView(goal models.Goal) fiber.Map {
	milestones := make([]fiber.Map, 0, len(goal.Milestones))
	for _, milestone := range goal.Milestones {
		milestones = append(milestones, fiber.Map{
			"position": milestone.Position,
			"title":    milestone.Title,
			"achieved": milestone.Achieved,
		})
	}

	view := fiber.Map{
		"id":          goal.ID,
		"title":       goal.Title,
		"description": goal.Description,
		"progress":    goal.Progress,
		"milestones":  milestones,
	}
	if goal.StartDate != nil {
		view["start_date"] = goal.StartDate.Format("2006-01-02")
	}
	if goal.EndDate != nil {
		view["end_date"] = goal.EndDate.Format("2006-01-02")
	}
	return view
}
