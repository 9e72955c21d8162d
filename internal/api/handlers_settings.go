package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/models"
	"github.com/strandapp/strand/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	current := strings.TrimSpace(input.CurrentPassword)
	next := strings.TrimSpace(input.NewPassword)
	confirm := strings.TrimSpace(input.ConfirmPassword)
	if next == "" || next != confirm {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}
	if err := services.ValidatePasswordStrength(next); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return apiError(c, fiber.StatusForbidden, "current password is incorrect")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "change password failed")
	}
	if err := handler.authService.UpdatePassword(user.ID, string(passwordHash), false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "change password failed")
	}

	return apiData(c, fiber.Map{"changed": true})
}

func (handler *Handler) RegenerateRecoveryCode(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	code, err := handler.authService.GenerateRecoveryCode(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "regenerate recovery code failed")
	}
	return apiData(c, fiber.Map{"recovery_code": code})
}

func (handler *Handler) GetPreferences(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	preference, err := handler.preferenceService.FetchForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load preferences failed")
	}
	return apiData(c, preferenceView(preference))
}

func (handler *Handler) UpdatePreferences(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := preferencePayload{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	preference, err := handler.preferenceService.Update(user.ID, services.PreferenceChange{
		Theme:             input.Theme,
		SidebarCollapsed:  input.SidebarCollapsed,
		ActiveTab:         input.ActiveTab,
		RoutineVisibility: input.RoutineVisibility,
	})
	switch err {
	case nil:
	case services.ErrInvalidTheme, services.ErrInvalidActiveTab, services.ErrInvalidRoutineVisibility:
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "save preferences failed")
	}

	return apiData(c, preferenceView(preference))
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(input.Password))) != nil {
		return apiError(c, fiber.StatusForbidden, "password is incorrect")
	}

	if err := handler.repositories.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "delete account failed")
	}

	handler.clearAuthCookie(c)
	return apiData(c, fiber.Map{"deleted": true})
}

func preferenceView(preference models.Preference) fiber.Map {
	return fiber.Map{
		"theme":              preference.Theme,
		"sidebar_collapsed":  preference.SidebarCollapsed,
		"active_tab":         preference.ActiveTab,
		"routine_visibility": preference.RoutineVisibility,
	}
}
