package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tally/internal/services"
)

func (handler *Handler) ShowHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	habits, err := handler.habitService.List(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load habits")
	}

	return handler.render(c, "habits", fiber.Map{
		"Title":  "Tally | Habits",
		"Habits": habits,
	})
}

// CreateHabit treats a duplicate name as recoverable: the conflict becomes
// a flash message and the habits page renders unchanged otherwise.
func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	input := habitInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.setFlashCookie(c, FlashPayload{HabitError: "Invalid input"})
		return c.Redirect("/habits", fiber.StatusSeeOther)
	}

	_, err := handler.habitService.Create(user.ID, input.Name, input.Color, time.Now().In(handler.location))
	switch {
	case errors.Is(err, services.ErrHabitNameRequired):
		handler.setFlashCookie(c, FlashPayload{HabitError: "Habit name is required"})
	case errors.Is(err, services.ErrHabitExists):
		handler.setFlashCookie(c, FlashPayload{HabitError: "Habit already exists"})
	case err != nil:
		handler.setFlashCookie(c, FlashPayload{HabitError: "Failed to add habit"})
	default:
		handler.setFlashCookie(c, FlashPayload{HabitSuccess: "Habit added!"})
	}

	return c.Redirect("/habits", fiber.StatusSeeOther)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	habitID, err := parseHabitID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid habit id")
	}

	switch err := handler.habitService.Delete(user.ID, habitID); {
	case errors.Is(err, services.ErrHabitNotFound):
		return c.Status(fiber.StatusNotFound).SendString("habit not found")
	case errors.Is(err, services.ErrNotHabitOwner):
		return c.Status(fiber.StatusForbidden).SendString("forbidden")
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).SendString("failed to delete habit")
	}

	return c.Redirect("/habits", fiber.StatusSeeOther)
}

func parseHabitID(raw string) (uint, error) {
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
