package services

import (
	"time"

	"github.com/terraincognita07/tally/internal/models"
)

type fakeHabitStore struct {
	habits map[uint]models.Habit
	nextID uint
}

func newFakeHabitStore() *fakeHabitStore {
	return &fakeHabitStore{habits: make(map[uint]models.Habit), nextID: 1}
}

func (store *fakeHabitStore) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	for id := uint(1); id < store.nextID; id++ {
		if habit, ok := store.habits[id]; ok && habit.UserID == userID {
			habits = append(habits, habit)
		}
	}
	return habits, nil
}

func (store *fakeHabitStore) FindByID(habitID uint) (models.Habit, bool, error) {
	habit, ok := store.habits[habitID]
	return habit, ok, nil
}

func (store *fakeHabitStore) ExistsByUserAndName(userID uint, name string) (bool, error) {
	for _, habit := range store.habits {
		if habit.UserID == userID && habit.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (store *fakeHabitStore) Create(habit *models.Habit) error {
	habit.ID = store.nextID
	store.nextID++
	store.habits[habit.ID] = *habit
	return nil
}

func (store *fakeHabitStore) DeleteWithCheckIns(habitID uint) error {
	delete(store.habits, habitID)
	return nil
}

type fakeCheckInStore struct {
	// checked days per habit, keyed by "2006-01-02"
	days   map[uint]map[string]bool
	owners map[uint]uint // habitID -> userID, for the user-scoped queries
	nextID uint
}

func newFakeCheckInStore() *fakeCheckInStore {
	return &fakeCheckInStore{
		days:   make(map[uint]map[string]bool),
		owners: make(map[uint]uint),
		nextID: 1,
	}
}

func (store *fakeCheckInStore) check(habitID uint, date string) {
	if store.days[habitID] == nil {
		store.days[habitID] = make(map[string]bool)
	}
	store.days[habitID][date] = true
}

func (store *fakeCheckInStore) HasCheckInOnDay(habitID uint, dayStart time.Time, _ time.Time) (bool, error) {
	return store.days[habitID][dayStart.Format("2006-01-02")], nil
}

func (store *fakeCheckInStore) FindByHabitAndDayRange(habitID uint, dayStart time.Time, _ time.Time) (models.CheckIn, bool, error) {
	if !store.days[habitID][dayStart.Format("2006-01-02")] {
		return models.CheckIn{}, false, nil
	}
	return models.CheckIn{HabitID: habitID, Date: dayStart}, true, nil
}

func (store *fakeCheckInStore) Create(entry *models.CheckIn) error {
	entry.ID = store.nextID
	store.nextID++
	store.check(entry.HabitID, entry.Date.Format("2006-01-02"))
	return nil
}

func (store *fakeCheckInStore) DeleteByHabitAndDayRange(habitID uint, dayStart time.Time, _ time.Time) error {
	delete(store.days[habitID], dayStart.Format("2006-01-02"))
	return nil
}

func (store *fakeCheckInStore) ListByHabitRange(habitID uint, fromStart time.Time, toEnd time.Time) ([]models.CheckIn, error) {
	entries := make([]models.CheckIn, 0)
	for day := fromStart; day.Before(toEnd); day = day.AddDate(0, 0, 1) {
		if store.days[habitID][day.Format("2006-01-02")] {
			entries = append(entries, models.CheckIn{HabitID: habitID, Date: day})
		}
	}
	return entries, nil
}

func (store *fakeCheckInStore) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CheckIn, error) {
	entries := make([]models.CheckIn, 0)
	for habitID, owner := range store.owners {
		if owner != userID {
			continue
		}
		habitEntries, _ := store.ListByHabitRange(habitID, fromStart, toEnd)
		entries = append(entries, habitEntries...)
	}
	return entries, nil
}

func (store *fakeCheckInStore) CountForUserOnDay(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	entries, _ := store.ListByUserRange(userID, dayStart, dayEnd)
	return int64(len(entries)), nil
}
