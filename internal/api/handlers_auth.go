package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/strandapp/strand/internal/models"
	"github.com/strandapp/strand/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid credentials")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	}

	exists, err := handler.authService.RegistrationEmailExists(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already registered")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	recoveryCode, err := handler.authService.GenerateRecoveryCode(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	return apiCreated(c, fiber.Map{
		"user_id":       user.ID,
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	return apiData(c, fiber.Map{
		"user_id":              user.ID,
		"must_change_password": user.MustChangePassword,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return apiData(c, fiber.Map{"logged_out": true})
}

// Recover signs the user in with a one-time recovery code and forces a
// password change. The matched code is consumed by rotating its hash.
func (handler *Handler) Recover(c *fiber.Ctx) error {
	input := recoverInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	code := strings.ToUpper(strings.TrimSpace(input.RecoveryCode))
	if err := services.ValidateRecoveryCodeFormat(code); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	user, err := handler.authService.FindUserByRecoveryCode(code)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
	}

	if err := handler.authService.UpdatePassword(user.ID, user.PasswordHash, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "recovery failed")
	}
	newCode, err := handler.authService.GenerateRecoveryCode(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "recovery failed")
	}

	if err := handler.setAuthCookie(c, user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "recovery failed")
	}

	return apiData(c, fiber.Map{
		"user_id":              user.ID,
		"must_change_password": true,
		"recovery_code":        newCode,
	})
}
