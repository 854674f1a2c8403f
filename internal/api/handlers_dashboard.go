package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/tally/internal/models"
	"github.com/terraincognita07/tally/internal/services"
)

type dashboardDay struct {
	Date       time.Time
	DateString string
	Label      string
	IsToday    bool
}

type dashboardRow struct {
	Habit  models.Habit
	Streak int
	Cells  []dashboardCell
}

type dashboardCell struct {
	DateString string
	Checked    bool
}

// ShowDashboard renders the last seven days for every habit, with checked
// state per cell and the current streak per habit.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	now := time.Now().In(handler.location)
	days := services.WeekEndingAt(now, handler.location)
	windowStart := days[0]
	windowEnd := days[len(days)-1].AddDate(0, 0, 1)

	habits, err := handler.habitService.List(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load habits")
	}

	checked, err := handler.checkInService.CheckedMap(user.ID, windowStart, windowEnd, handler.location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load check-ins")
	}

	todayKey := services.DateAtLocation(now, handler.location).Format("2006-01-02")
	dayViews := make([]dashboardDay, 0, len(days))
	for _, day := range days {
		key := day.Format("2006-01-02")
		dayViews = append(dayViews, dashboardDay{
			Date:       day,
			DateString: key,
			Label:      day.Format("Mon"),
			IsToday:    key == todayKey,
		})
	}

	rows := make([]dashboardRow, 0, len(habits))
	for _, habit := range habits {
		streak, err := handler.checkInService.StreakForHabit(habit.ID, now, handler.location)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("failed to compute streaks")
		}

		cells := make([]dashboardCell, 0, len(days))
		for _, day := range dayViews {
			cells = append(cells, dashboardCell{
				DateString: day.DateString,
				Checked:    checked[habit.ID][day.DateString],
			})
		}
		rows = append(rows, dashboardRow{Habit: habit, Streak: streak, Cells: cells})
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title": "Tally | Dashboard",
		"Days":  dayViews,
		"Rows":  rows,
	})
}
