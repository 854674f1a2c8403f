package services

import (
	"time"

	"github.com/terraincognita07/tally/internal/models"
)

type CheckInStore interface {
	HasCheckInOnDay(habitID uint, dayStart time.Time, dayEnd time.Time) (bool, error)
	FindByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.CheckIn, bool, error)
	Create(entry *models.CheckIn) error
	DeleteByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) error
	ListByHabitRange(habitID uint, fromStart time.Time, toEnd time.Time) ([]models.CheckIn, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CheckIn, error)
	CountForUserOnDay(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error)
}

type HabitReader interface {
	FindByID(habitID uint) (models.Habit, bool, error)
}

type CheckInService struct {
	checkIns CheckInStore
	habits   HabitReader
}

func NewCheckInService(checkIns CheckInStore, habits HabitReader) *CheckInService {
	return &CheckInService{checkIns: checkIns, habits: habits}
}

func (service *CheckInService) requireOwned(userID uint, habitID uint) (models.Habit, error) {
	habit, found, err := service.habits.FindByID(habitID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	if habit.UserID != userID {
		return models.Habit{}, ErrNotHabitOwner
	}
	return habit, nil
}

// Toggle flips the checked state for (habit, day): insert if absent, delete
// if present. Returns the resulting state. The (habit, date) unique index
// resolves concurrent toggles for the same day.
func (service *CheckInService) Toggle(userID uint, habitID uint, day time.Time, location *time.Location) (bool, error) {
	habit, err := service.requireOwned(userID, habitID)
	if err != nil {
		return false, err
	}

	dayStart, dayEnd := DayRange(day, location)
	_, exists, err := service.checkIns.FindByHabitAndDayRange(habit.ID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	if exists {
		if err := service.checkIns.DeleteByHabitAndDayRange(habit.ID, dayStart, dayEnd); err != nil {
			return false, err
		}
		return false, nil
	}

	entry := models.CheckIn{HabitID: habit.ID, Date: dayStart}
	if err := service.checkIns.Create(&entry); err != nil {
		return false, err
	}
	return true, nil
}

// StreakForHabit walks backward one day at a time from asOf, counting
// consecutive checked days. Each step is a single point lookup, so the cost
// is proportional to the streak length rather than the habit's history.
func (service *CheckInService) StreakForHabit(habitID uint, asOf time.Time, location *time.Location) (int, error) {
	streak := 0
	day := DateAtLocation(asOf, location)
	for {
		dayStart, dayEnd := DayRange(day, location)
		checked, err := service.checkIns.HasCheckInOnDay(habitID, dayStart, dayEnd)
		if err != nil {
			return 0, err
		}
		if !checked {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// StreakForUser is the ownership-checked variant used by account-scoped
// callers: unknown habit ids fail with ErrHabitNotFound, foreign habits
// with ErrNotHabitOwner.
func (service *CheckInService) StreakForUser(userID uint, habitID uint, asOf time.Time, location *time.Location) (int, error) {
	habit, err := service.requireOwned(userID, habitID)
	if err != nil {
		return 0, err
	}
	return service.StreakForHabit(habit.ID, asOf, location)
}

// MonthGridForUser builds the week-major calendar grid for one habit and
// month, with checked state per cell.
func (service *CheckInService) MonthGridForUser(userID uint, habitID uint, year int, month time.Month, now time.Time, location *time.Location) ([][]CalendarCell, error) {
	habit, err := service.requireOwned(userID, habitID)
	if err != nil {
		return nil, err
	}
	return service.monthGrid(habit.ID, year, month, now, location)
}

func (service *CheckInService) monthGrid(habitID uint, year int, month time.Month, now time.Time, location *time.Location) ([][]CalendarCell, error) {
	gridStart, gridEndExclusive := MonthGridBounds(year, month, location)
	entries, err := service.checkIns.ListByHabitRange(habitID, gridStart, gridEndExclusive)
	if err != nil {
		return nil, err
	}

	checked := make(map[string]bool, len(entries))
	for _, entry := range entries {
		checked[DateAtLocation(entry.Date, location).Format("2006-01-02")] = true
	}

	return BuildMonthGrid(year, month, checked, now, location), nil
}

// CheckedMap returns the account-wide checked state for [fromStart, toEnd),
// keyed by habit id and "2006-01-02" date string. Feeds the dashboard's
// 7-day grid in one query.
func (service *CheckInService) CheckedMap(userID uint, fromStart time.Time, toEnd time.Time, location *time.Location) (map[uint]map[string]bool, error) {
	entries, err := service.checkIns.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, err
	}

	checked := make(map[uint]map[string]bool)
	for _, entry := range entries {
		key := DateAtLocation(entry.Date, location).Format("2006-01-02")
		if checked[entry.HabitID] == nil {
			checked[entry.HabitID] = make(map[string]bool)
		}
		checked[entry.HabitID][key] = true
	}
	return checked, nil
}

// WeeklyCounts returns, for the seven days ending at asOf, the number of
// check-ins across all of the account's habits on each day, oldest first.
func (service *CheckInService) WeeklyCounts(userID uint, asOf time.Time, location *time.Location) ([]int, error) {
	days := WeekEndingAt(asOf, location)
	counts := make([]int, 0, len(days))
	for _, day := range days {
		dayStart, dayEnd := DayRange(day, location)
		count, err := service.checkIns.CountForUserOnDay(userID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		counts = append(counts, int(count))
	}
	return counts, nil
}
