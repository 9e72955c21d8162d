package api

import "github.com/gofiber/fiber/v2"

// Every /api response uses the {"success": bool, "data": ...} envelope the
// journal's clients were built against.
func apiData(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func apiCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"data":    fiber.Map{"error": message},
	})
}
