package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/services"
)

// ImportLegacy accepts loose goal/routine records written by earlier
// versions of the journal and persists them through the legacy resolver.
func (handler *Handler) ImportLegacy(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := legacyImportPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if len(payload.Goals) == 0 && len(payload.Routines) == 0 {
		return apiError(c, fiber.StatusBadRequest, "nothing to import")
	}

	report, err := handler.importService.ImportLegacy(user.ID, services.LegacyImportInput{
		Goals:    payload.Goals,
		Routines: payload.Routines,
	}, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "import failed")
	}

	outcomes := make([]fiber.Map, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		outcomes = append(outcomes, fiber.Map{
			"kind":              outcome.Kind,
			"index":             outcome.Index,
			"title":             outcome.Title,
			"status":            outcome.Status,
			"calendar_eligible": outcome.CalendarEligible,
		})
	}

	return apiData(c, fiber.Map{
		"goals_imported":    report.GoalsImported,
		"routines_imported": report.RoutinesImported,
		"outcomes":          outcomes,
	})
}
