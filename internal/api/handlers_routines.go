package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/models"
	"github.com/strandapp/strand/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ListRoutines(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	routines, err := handler.routineService.FetchAllForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch routines")
	}

	views := make([]fiber.Map, 0, len(routines))
	for _, routine := range routines {
		views = append(views, routineView(routine))
	}
	return apiData(c, views)
}

func (handler *Handler) CreateRoutine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, errMessage := handler.parseRoutineInput(c)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	routine, err := handler.routineService.CreateRoutine(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save routine")
	}
	return apiCreated(c, routineView(routine))
}

func (handler *Handler) UpdateRoutine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	routineID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid routine id")
	}

	input, errMessage := handler.parseRoutineInput(c)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	routine, err := handler.routineService.UpdateRoutine(user.ID, routineID, input)
	if errors.Is(err, services.ErrRoutineLoadFailed) {
		return apiError(c, fiber.StatusNotFound, "routine not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save routine")
	}
	return apiData(c, routineView(routine))
}

func (handler *Handler) DeleteRoutine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	routineID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid routine id")
	}

	err = handler.routineService.DeleteRoutine(user.ID, routineID)
	if errors.Is(err, services.ErrRoutineLoadFailed) {
		return apiError(c, fiber.StatusNotFound, "routine not found")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete routine")
	}
	return apiData(c, fiber.Map{"deleted": true})
}

func (handler *Handler) parseRoutineInput(c *fiber.Ctx) (services.RoutineInput, string) {
	payload := routinePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.RoutineInput{}, "invalid payload"
	}

	anchorDate, err := parseOptionalDayParam(payload.AnchorDate, handler.location)
	if err != nil {
		return services.RoutineInput{}, "invalid anchor_date"
	}

	input, err := services.NormalizeRoutineInput(services.RoutineInput{
		Name:        payload.Name,
		Frequency:   payload.Frequency,
		TimeOfDay:   payload.TimeOfDay,
		Products:    payload.Products,
		Description: payload.Description,
		AnchorDate:  anchorDate,
	}, time.Now(), handler.location)
	if err != nil {
		return services.RoutineInput{}, err.Error()
	}
	return input, ""
}

func routineView(routine models.Routine) fiber.Map {
	return fiber.Map{
		"id":          routine.ID,
		"name":        routine.Name,
		"frequency":   routine.Frequency,
		"time_of_day": routine.TimeOfDay,
		"hour":        services.ParseHour(routine.TimeOfDay),
		"products":    routine.Products,
		"description": routine.Description,
		"anchor_date": routine.AnchorDate.Format("2006-01-02"),
	}
}
