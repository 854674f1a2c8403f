package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tally/internal/models"
	"github.com/terraincognita07/tally/internal/services"
)

type analyticsCalendar struct {
	Habit models.Habit
	Weeks [][]services.CalendarCell
}

// ShowAnalytics renders the current-month calendar for every habit.
func (handler *Handler) ShowAnalytics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	now := time.Now().In(handler.location)
	today := services.DateAtLocation(now, handler.location)

	habits, err := handler.habitService.List(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load habits")
	}

	calendars := make([]analyticsCalendar, 0, len(habits))
	for _, habit := range habits {
		weeks, err := handler.checkInService.MonthGridForUser(user.ID, habit.ID, today.Year(), today.Month(), now, handler.location)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("failed to build calendars")
		}
		calendars = append(calendars, analyticsCalendar{Habit: habit, Weeks: weeks})
	}

	return handler.render(c, "analytics", fiber.Map{
		"Title":     "Tally | Analytics",
		"Calendars": calendars,
		"Month":     today.Format("January 2006"),
	})
}

// AnalyticsJSON answers the weekly chart payload: seven weekday labels
// (oldest first) and the matching per-day check-in counts.
func (handler *Handler) AnalyticsJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	labels := services.WeekdayLabels(services.WeekEndingAt(now, handler.location))
	counts, err := handler.checkInService.WeeklyCounts(user.ID, now, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load analytics")
	}

	return c.JSON(fiber.Map{"labels": labels, "counts": counts})
}
