package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/models"
	"github.com/strandapp/strand/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ListEntries(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, err := parseOptionalDayParam(c.Query("from"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := parseOptionalDayParam(c.Query("to"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}
	if from != nil && to != nil && to.Before(*from) {
		return apiError(c, fiber.StatusBadRequest, "invalid range")
	}

	entries, err := handler.entryService.FetchForOptionalRange(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	views := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		views = append(views, entryView(entry))
	}
	return apiData(c, views)
}

func (handler *Handler) GetEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	entry, err := handler.entryService.FetchByID(user.ID, entryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entry")
	}

	view := entryView(entry)
	bodyHTML, renderErr := services.RenderEntryBody(entry.Body)
	if renderErr == nil {
		view["body_html"] = bodyHTML
	}
	return apiData(c, view)
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, errMessage := handler.parseEntryInput(c)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	entry, err := handler.entryService.CreateEntry(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}
	return apiCreated(c, entryView(entry))
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	input, errMessage := handler.parseEntryInput(c)
	if errMessage != "" {
		return apiError(c, fiber.StatusBadRequest, errMessage)
	}

	entry, err := handler.entryService.UpdateEntry(user.ID, entryID, input)
	if errors.Is(err, services.ErrEntryLoadFailed) {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}
	return apiData(c, entryView(entry))
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entryID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid entry id")
	}

	err = handler.entryService.DeleteEntry(user.ID, entryID)
	if errors.Is(err, services.ErrEntryLoadFailed) {
		return apiError(c, fiber.StatusNotFound, "entry not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return apiData(c, fiber.Map{"deleted": true})
}

func (handler *Handler) parseEntryInput(c *fiber.Ctx) (services.EntryInput, string) {
	payload := entryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.EntryInput{}, "invalid payload"
	}

	recordedAt, err := parseTimestampParam(payload.RecordedAt, handler.location)
	if err != nil {
		return services.EntryInput{}, "invalid recorded_at"
	}

	input, err := services.NormalizeEntryInput(services.EntryInput{
		Title:          payload.Title,
		Body:           payload.Body,
		RecordedAt:     recordedAt,
		HealthRating:   payload.HealthRating,
		Mood:           payload.Mood,
		Products:       payload.Products,
		WithAttachment: payload.WithAttachment,
	})
	if err != nil {
		return services.EntryInput{}, err.Error()
	}
	return input, ""
}

func entryView(entry models.Entry) fiber.Map {
	return fiber.Map{
		"id":             entry.ID,
		"title":          entry.Title,
		"body":           entry.Body,
		"recorded_at":    entry.RecordedAt,
		"attachment_ref": entry.AttachmentRef,
		"health_rating":  entry.HealthRating,
		"mood":           entry.Mood,
		"products":       entry.Products,
	}
}
