package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tally/internal/services"
)

// ToggleCheckIn flips the done state for (habit, day). A malformed date is
// a clean 400 rather than a panic, and acting on a foreign habit changes
// nothing.
func (handler *Handler) ToggleCheckIn(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := toggleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.HabitID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	day, err := time.ParseInLocation("2006-01-02", input.Day, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	checked, err := handler.checkInService.Toggle(user.ID, input.HabitID, day, handler.location)
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, "habit not found")
	case errors.Is(err, services.ErrNotHabitOwner):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle check-in")
	}

	return c.JSON(fiber.Map{"status": "ok", "checked": checked})
}
