package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tally/internal/services"
)

func (handler *Handler) ToggleTheme(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	theme, err := handler.settingsService.ToggleTheme(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle theme")
	}

	return c.JSON(fiber.Map{"theme": theme})
}

// DeleteAccount cascades the account and everything it owns after a
// password confirmation.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.setFlashCookie(c, FlashPayload{HabitError: "Invalid input"})
		return c.Redirect("/habits", fiber.StatusSeeOther)
	}

	if err := handler.settingsService.DeleteAccount(user.ID, input.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			handler.setFlashCookie(c, FlashPayload{HabitError: "Incorrect password"})
			return c.Redirect("/habits", fiber.StatusSeeOther)
		}
		handler.setFlashCookie(c, FlashPayload{HabitError: "Failed to delete account"})
		return c.Redirect("/habits", fiber.StatusSeeOther)
	}

	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/signup", fiber.StatusSeeOther)
}
